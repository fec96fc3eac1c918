package viewstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/raphaelgruber/pokedex/internal/evolution"
	"github.com/raphaelgruber/pokedex/internal/models"
)

// DetailView is what the detail screen renders.
type DetailView struct {
	Detail        models.PokemonDetail
	ChainID       int
	Chain         models.EvolutionNode
	EvolutionLine []models.PokemonListItem
}

// HasEvolutions reports whether the evolution section should be shown.
func (v DetailView) HasEvolutions() bool {
	return evolution.HasEvolutions(v.EvolutionLine)
}

// Resolver is the pipeline the detail controller drives.
type Resolver interface {
	Resolve(ctx context.Context, id int) (*evolution.Result, error)
}

// DetailController loads one Pokémon with its evolution line at a time.
// A new LoadDetail supersedes the one in flight: the older one is cancelled
// and, should it still finish, its result is dropped (last request wins).
type DetailController struct {
	resolver Resolver
	logger   *slog.Logger
	store    *Store[DetailView]

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	last   *DetailView
}

// NewDetailController creates a controller in the idle state.
func NewDetailController(resolver Resolver, logger *slog.Logger) *DetailController {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailController{
		resolver: resolver,
		logger:   logger,
		store:    NewStore[DetailView](),
	}
}

// Store exposes the observable state.
func (c *DetailController) Store() *Store[DetailView] {
	return c.store
}

// Snapshot returns the current state.
func (c *DetailController) Snapshot() State[DetailView] {
	return c.store.Snapshot()
}

// LoadDetail starts resolving Pokémon id and returns immediately. The state
// moves to loading now and to ready or failed when the resolution settles.
func (c *DetailController) LoadDetail(ctx context.Context, id int) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	done := make(chan struct{})
	c.done = done
	c.store.set(Loading[DetailView]())
	c.mu.Unlock()

	logger := c.logger.With("request_id", uuid.New().String()[:8], "id", id)
	logger.Debug("loading detail")

	go func() {
		defer close(done)
		defer cancel()

		res, err := c.resolver.Resolve(ctx, id)

		c.mu.Lock()
		defer c.mu.Unlock()

		if gen != c.gen {
			logger.Debug("dropping superseded result")
			return
		}
		c.cancel = nil

		if err != nil {
			logger.Warn("load detail failed", "error", err)
			if c.last != nil {
				c.store.set(FailedWithStale(Message(err), *c.last))
			} else {
				c.store.set(Failed[DetailView](Message(err)))
			}
			return
		}

		view := DetailView{
			Detail:        res.Detail,
			ChainID:       res.ChainID,
			Chain:         res.Chain,
			EvolutionLine: res.Line,
		}
		c.last = &view
		c.store.set(Ready(view))
		logger.Debug("detail loaded", "species", len(view.EvolutionLine))
	}()
}

// Wait blocks until the most recent load has settled, including loads
// started while waiting.
func (c *DetailController) Wait(ctx context.Context) error {
	for {
		c.mu.Lock()
		done := c.done
		c.mu.Unlock()

		if done == nil {
			return nil
		}

		select {
		case <-done:
			c.mu.Lock()
			latest := c.done == done
			c.mu.Unlock()
			if latest {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancels any load in flight.
func (c *DetailController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
