// Package evolution resolves the evolution line of a Pokémon: species lookup,
// chain fetch, pre-order flatten, and per-species detail resolution.
package evolution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raphaelgruber/pokedex/internal/client"
	"github.com/raphaelgruber/pokedex/internal/models"
)

// DefaultConcurrency is how many per-species detail lookups run at once.
const DefaultConcurrency = 4

var (
	// ErrMalformedReference means the species' evolution chain URL does not
	// end in a numeric chain id.
	ErrMalformedReference = errors.New("malformed evolution chain reference")

	// ErrResolutionFailed means a species of the flattened chain could not be
	// resolved to a Pokémon. The whole line is discarded.
	ErrResolutionFailed = errors.New("evolution line resolution failed")
)

// Source is the data the resolver needs. *repository.Repository satisfies it.
type Source interface {
	PokemonByID(ctx context.Context, id int) (*models.PokemonDetail, error)
	PokemonByName(ctx context.Context, name string) (*models.PokemonDetail, error)
	EvolutionChainURL(ctx context.Context, id int) (string, error)
	EvolutionChain(ctx context.Context, chainID int) (*models.EvolutionChain, error)
}

// Result is the outcome of one successful resolution.
type Result struct {
	Detail  models.PokemonDetail
	ChainID int
	Chain   models.EvolutionNode
	Line    []models.PokemonListItem
}

// HasEvolutions reports whether the line should be shown at all.
func (r *Result) HasEvolutions() bool {
	return HasEvolutions(r.Line)
}

// Resolver turns a Pokémon id into its ordered evolution line.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	src         Source
	baseURL     string
	concurrency int
	logger      *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConcurrency bounds the per-species fan-out. Values below 1 keep
// DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithBaseURL sets the API root used to synthesize item URLs.
func WithBaseURL(baseURL string) Option {
	return func(r *Resolver) {
		if baseURL != "" {
			r.baseURL = baseURL
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver reading from src.
func NewResolver(src Source, opts ...Option) *Resolver {
	r := &Resolver{
		src:         src,
		baseURL:     client.DefaultBaseURL,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveLine returns every species in the evolution line of Pokémon id,
// the queried one included, in pre-order of the evolution tree. A line of
// length 1 means the Pokémon does not evolve.
func (r *Resolver) ResolveLine(ctx context.Context, id int) ([]models.PokemonListItem, error) {
	res, err := r.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	return res.Line, nil
}

// Resolve runs the full pipeline and also returns the queried Pokémon's
// detail and the raw chain. Stages run in order; any failure aborts and no
// partial line is returned.
func (r *Resolver) Resolve(ctx context.Context, id int) (*Result, error) {
	start := time.Now()

	detail, err := r.src.PokemonByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch pokemon %d: %w", id, err)
	}

	chainURL, err := r.src.EvolutionChainURL(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch species %d: %w", id, err)
	}

	chainID, err := ChainID(chainURL)
	if err != nil {
		return nil, err
	}

	chain, err := r.src.EvolutionChain(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("fetch evolution chain %d: %w", chainID, err)
	}

	names := Flatten(chain.Chain)

	line, err := r.resolveNames(ctx, names)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("resolved evolution line",
		"id", id,
		"chain_id", chainID,
		"species", len(line),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Result{
		Detail:  *detail,
		ChainID: chainID,
		Chain:   chain.Chain,
		Line:    line,
	}, nil
}

// resolveNames fetches each species' detail concurrently. Results land at
// the index of their name, so the output keeps the flatten order whatever
// order the lookups finish in. The first failure cancels the rest.
func (r *Resolver) resolveNames(ctx context.Context, names []string) ([]models.PokemonListItem, error) {
	items := make([]models.PokemonListItem, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, name := range names {
		g.Go(func() error {
			detail, err := r.src.PokemonByName(gctx, name)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrResolutionFailed, name, err)
			}
			items[i] = models.PokemonListItem{
				Name: name,
				URL:  models.PokemonURL(r.baseURL, detail.ID),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// ChainID extracts the numeric chain id from an evolution chain URL such as
// "https://pokeapi.co/api/v2/evolution-chain/7/". The trailing slash is optional.
func ChainID(chainURL string) (int, error) {
	id, err := models.IDFromURL(chainURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedReference, chainURL)
	}
	return id, nil
}

// Flatten lists the species names of the tree in pre-order: the node
// itself, then each child's whole subtree in child order.
func Flatten(node models.EvolutionNode) []string {
	names := []string{node.Species.Name}
	for _, child := range node.EvolvesTo {
		names = append(names, Flatten(child)...)
	}
	return names
}

// HasEvolutions reports whether line holds more than the queried species.
func HasEvolutions(line []models.PokemonListItem) bool {
	return len(line) > 1
}
