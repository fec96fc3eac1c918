package viewstate

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphaelgruber/pokedex/internal/client"
	"github.com/raphaelgruber/pokedex/internal/evolution"
)

// Message converts a pipeline error into the single message shown to users.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var (
		transport *client.TransportError
		remote    *client.RemoteError
	)

	switch {
	case errors.Is(err, evolution.ErrResolutionFailed):
		return "Could not load the evolution line"
	case errors.Is(err, evolution.ErrMalformedReference):
		return "Evolution data is malformed"
	case errors.Is(err, client.ErrNotFound):
		return "Pokémon not found"
	case errors.Is(err, client.ErrInvalidArgument):
		return "Invalid request"
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.As(err, &transport):
		if transport.Timeout() {
			return "The request timed out"
		}
		return "Network unavailable"
	case errors.As(err, &remote):
		return fmt.Sprintf("PokeAPI error (status %d)", remote.Status)
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out"
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}
