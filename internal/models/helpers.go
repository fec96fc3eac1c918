package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	spriteBase      = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/home/"
	shinySpriteBase = spriteBase + "shiny/"
)

// ErrMalformedURL indicates a resource URL whose last path segment is not a number.
var ErrMalformedURL = errors.New("malformed resource url")

// IDFromURL extracts the numeric id from a PokeAPI resource URL such as
// "https://pokeapi.co/api/v2/pokemon/25/". A trailing slash is optional and
// the id must be positive.
func IDFromURL(url string) (int, error) {
	trimmed := strings.TrimRight(url, "/")
	segment := trimmed[strings.LastIndex(trimmed, "/")+1:]
	id, err := strconv.Atoi(segment)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedURL, url)
	}
	return id, nil
}

// SpriteURL returns the artwork URL for a Pokémon id.
func SpriteURL(id int) string {
	return spriteBase + strconv.Itoa(id) + ".png"
}

// ShinySpriteURL returns the shiny artwork URL for a Pokémon id.
func ShinySpriteURL(id int) string {
	return shinySpriteBase + strconv.Itoa(id) + ".png"
}

// PokemonURL builds the resource URL of a Pokémon under baseURL.
func PokemonURL(baseURL string, id int) string {
	return strings.TrimRight(baseURL, "/") + "/pokemon/" + strconv.Itoa(id)
}

// FilterByName returns the items whose name contains query, ignoring case
// and surrounding whitespace. A blank query returns items unchanged.
// The input slice is never modified.
func FilterByName(items []PokemonListItem, query string) []PokemonListItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	filtered := make([]PokemonListItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// WithoutForms drops alternate forms (e.g. "pikachu-rock-star"), which
// PokeAPI names with a dash.
func WithoutForms(items []PokemonListItem) []PokemonListItem {
	kept := make([]PokemonListItem, 0, len(items))
	for _, item := range items {
		if !strings.Contains(item.Name, "-") {
			kept = append(kept, item)
		}
	}
	return kept
}
