package viewstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/raphaelgruber/pokedex/internal/client"
	"github.com/raphaelgruber/pokedex/internal/models"
)

// BulkLimit is large enough to fetch the whole catalog in one page.
const BulkLimit = 100000

// pseudoTypes are listed by GET /type but no regular Pokémon belongs to them.
var pseudoTypes = map[string]bool{
	"unknown": true,
	"stellar": true,
	"shadow":  true,
}

// ListSource is the data the list controller needs.
type ListSource interface {
	PokemonPage(ctx context.Context, limit, offset int) (*models.PokemonPage, error)
	TypesPage(ctx context.Context, limit, offset int) ([]models.SpeciesReference, error)
	PokemonByType(ctx context.Context, typeName string) ([]models.PokemonListItem, error)
}

// ListController holds the catalog, the type list, the selected type and
// the search query. Loads are synchronous; a list load that finishes after
// a newer one started is dropped.
type ListController struct {
	src    ListSource
	logger *slog.Logger

	list  *Store[[]models.PokemonListItem]
	types *Store[[]models.SpeciesReference]

	mu           sync.Mutex
	listGen      uint64
	query        string
	selectedType string
}

// NewListController creates a controller with empty stores.
func NewListController(src ListSource, logger *slog.Logger) *ListController {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListController{
		src:    src,
		logger: logger,
		list:   NewStore[[]models.PokemonListItem](),
		types:  NewStore[[]models.SpeciesReference](),
	}
}

// List exposes the catalog state.
func (c *ListController) List() *Store[[]models.PokemonListItem] {
	return c.list
}

// Types exposes the type list state.
func (c *ListController) Types() *Store[[]models.SpeciesReference] {
	return c.types
}

// LoadAll fetches the full catalog in one call and drops alternate forms.
func (c *ListController) LoadAll(ctx context.Context) error {
	return c.loadList(ctx, func(ctx context.Context) ([]models.PokemonListItem, error) {
		page, err := c.src.PokemonPage(ctx, BulkLimit, 0)
		if err != nil {
			return nil, err
		}
		return models.WithoutForms(page.Results), nil
	})
}

// LoadTypes fetches the selectable types.
func (c *ListController) LoadTypes(ctx context.Context) error {
	c.types.set(Loading[[]models.SpeciesReference]())

	types, err := c.src.TypesPage(ctx, client.DefaultTypeLimit, 0)
	if err != nil {
		c.logger.Warn("load types failed", "error", err)
		c.types.set(Failed[[]models.SpeciesReference](Message(err)))
		return err
	}

	kept := make([]models.SpeciesReference, 0, len(types))
	for _, t := range types {
		if !pseudoTypes[t.Name] {
			kept = append(kept, t)
		}
	}
	c.types.set(Ready(kept))
	return nil
}

// SelectType narrows the list to one type. An empty name reloads the full
// catalog.
func (c *ListController) SelectType(ctx context.Context, typeName string) error {
	c.mu.Lock()
	c.selectedType = typeName
	c.mu.Unlock()

	if typeName == "" {
		return c.LoadAll(ctx)
	}
	return c.loadList(ctx, func(ctx context.Context) ([]models.PokemonListItem, error) {
		return c.src.PokemonByType(ctx, typeName)
	})
}

// SelectedType returns the type filter, or "" for none.
func (c *ListController) SelectedType() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedType
}

// SetQuery sets the name search query.
func (c *ListController) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

// Query returns the name search query.
func (c *ListController) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Filtered returns the loaded list narrowed by the current query. The
// stored list is never modified.
func (c *ListController) Filtered() []models.PokemonListItem {
	items, ok := c.list.Snapshot().Data()
	if !ok {
		return nil
	}
	return models.FilterByName(items, c.Query())
}

func (c *ListController) loadList(ctx context.Context, fetch func(context.Context) ([]models.PokemonListItem, error)) error {
	c.mu.Lock()
	c.listGen++
	gen := c.listGen
	c.list.set(Loading[[]models.PokemonListItem]())
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.listGen {
		return err
	}

	if err != nil {
		c.logger.Warn("load list failed", "error", err)
		c.list.set(Failed[[]models.PokemonListItem](Message(err)))
		return err
	}
	c.list.set(Ready(items))
	return nil
}
