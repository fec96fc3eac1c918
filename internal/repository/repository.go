// Package repository is the single entry point the rest of the Pokédex uses
// to reach PokeAPI. Every call runs on a bounded background I/O pool; the
// caller only waits for the result.
package repository

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/raphaelgruber/pokedex/internal/models"
)

// DefaultWorkers is the size of the background I/O pool.
const DefaultWorkers = 16

// API is the PokeAPI surface the repository wraps. *client.Client satisfies it.
type API interface {
	PokemonPage(ctx context.Context, limit, offset int) (*models.PokemonPage, error)
	PokemonByID(ctx context.Context, id int) (*models.PokemonDetail, error)
	PokemonByName(ctx context.Context, name string) (*models.PokemonDetail, error)
	SpeciesEvolutionRef(ctx context.Context, id int) (*models.SpeciesEvolutionRef, error)
	EvolutionChain(ctx context.Context, chainID int) (*models.EvolutionChain, error)
	TypesPage(ctx context.Context, limit, offset int) ([]models.SpeciesReference, error)
	PokemonByType(ctx context.Context, typeName string) ([]models.PokemonListItem, error)
}

// Repository is a pass-through facade over API. It adds no caching or retries.
type Repository struct {
	api  API
	pool *semaphore.Weighted
}

// Option configures a Repository.
type Option func(*config)

type config struct {
	workers int64
}

// WithWorkers sets the number of requests that may be in flight at once.
// Values below 1 keep DefaultWorkers.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = int64(n)
		}
	}
}

// New creates a repository over api.
func New(api API, opts ...Option) *Repository {
	cfg := config{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Repository{
		api:  api,
		pool: semaphore.NewWeighted(cfg.workers),
	}
}

// dispatch runs fn on the I/O pool and waits for its result or for ctx.
// A pool slot is held until fn returns, even if the caller gave up first.
func dispatch[T any](ctx context.Context, pool *semaphore.Weighted, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := pool.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		defer pool.Release(1)
		val, err := fn(ctx)
		done <- result{val: val, err: err}
	}()

	select {
	case res := <-done:
		return res.val, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// PokemonPage returns one page of the Pokémon catalog.
func (r *Repository) PokemonPage(ctx context.Context, limit, offset int) (*models.PokemonPage, error) {
	return dispatch(ctx, r.pool, func(ctx context.Context) (*models.PokemonPage, error) {
		return r.api.PokemonPage(ctx, limit, offset)
	})
}

// PokemonByID returns the detail of one Pokémon.
func (r *Repository) PokemonByID(ctx context.Context, id int) (*models.PokemonDetail, error) {
	return dispatch(ctx, r.pool, func(ctx context.Context) (*models.PokemonDetail, error) {
		return r.api.PokemonByID(ctx, id)
	})
}

// PokemonByName returns the detail of one Pokémon.
func (r *Repository) PokemonByName(ctx context.Context, name string) (*models.PokemonDetail, error) {
	return dispatch(ctx, r.pool, func(ctx context.Context) (*models.PokemonDetail, error) {
		return r.api.PokemonByName(ctx, name)
	})
}

// SpeciesEvolutionRef returns the species wrapper that points at the evolution chain.
func (r *Repository) SpeciesEvolutionRef(ctx context.Context, id int) (*models.SpeciesEvolutionRef, error) {
	return dispatch(ctx, r.pool, func(ctx context.Context) (*models.SpeciesEvolutionRef, error) {
		return r.api.SpeciesEvolutionRef(ctx, id)
	})
}

// EvolutionChainURL returns the evolution chain URL of species id.
func (r *Repository) EvolutionChainURL(ctx context.Context, id int) (string, error) {
	ref, err := r.SpeciesEvolutionRef(ctx, id)
	if err != nil {
		return "", err
	}
	return ref.EvolutionChain.URL, nil
}

// EvolutionChain returns the evolution tree with the given chain id.
func (r *Repository) EvolutionChain(ctx context.Context, chainID int) (*models.EvolutionChain, error) {
	return dispatch(ctx, r.pool, func(ctx context.Context) (*models.EvolutionChain, error) {
		return r.api.EvolutionChain(ctx, chainID)
	})
}

// TypesPage returns one page of type names.
func (r *Repository) TypesPage(ctx context.Context, limit, offset int) ([]models.SpeciesReference, error) {
	return dispatch(ctx, r.pool, func(ctx context.Context) ([]models.SpeciesReference, error) {
		return r.api.TypesPage(ctx, limit, offset)
	})
}

// PokemonByType returns every Pokémon of a type.
func (r *Repository) PokemonByType(ctx context.Context, typeName string) ([]models.PokemonListItem, error) {
	return dispatch(ctx, r.pool, func(ctx context.Context) ([]models.PokemonListItem, error) {
		return r.api.PokemonByType(ctx, typeName)
	})
}
