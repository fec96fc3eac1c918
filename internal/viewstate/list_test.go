package viewstate

import (
	"context"
	"errors"
	"testing"

	"github.com/raphaelgruber/pokedex/internal/client"
	"github.com/raphaelgruber/pokedex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListSource struct {
	page       *models.PokemonPage
	pageErr    error
	pageLimit  int
	types      []models.SpeciesReference
	typesErr   error
	byType     map[string][]models.PokemonListItem
	byTypeErr  error
	typeLookup []string
}

func (f *fakeListSource) PokemonPage(_ context.Context, limit, _ int) (*models.PokemonPage, error) {
	f.pageLimit = limit
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return f.page, nil
}

func (f *fakeListSource) TypesPage(context.Context, int, int) ([]models.SpeciesReference, error) {
	return f.types, f.typesErr
}

func (f *fakeListSource) PokemonByType(_ context.Context, typeName string) ([]models.PokemonListItem, error) {
	f.typeLookup = append(f.typeLookup, typeName)
	if f.byTypeErr != nil {
		return nil, f.byTypeErr
	}
	return f.byType[typeName], nil
}

func item(name string, id int) models.PokemonListItem {
	return models.PokemonListItem{Name: name, URL: models.PokemonURL(client.DefaultBaseURL, id)}
}

func newFakeListSource() *fakeListSource {
	return &fakeListSource{
		page: &models.PokemonPage{
			Count: 5,
			Results: []models.PokemonListItem{
				item("bulbasaur", 1),
				item("ivysaur", 2),
				item("charmander", 4),
				item("deoxys-attack", 10001),
				item("squirtle", 7),
			},
		},
		types: []models.SpeciesReference{
			{Name: "normal"}, {Name: "fire"}, {Name: "grass"},
			{Name: "stellar"}, {Name: "unknown"}, {Name: "shadow"},
		},
		byType: map[string][]models.PokemonListItem{
			"fire": {item("charmander", 4), item("vulpix", 37)},
		},
	}
}

func TestLoadAllDropsForms(t *testing.T) {
	src := newFakeListSource()
	c := NewListController(src, nil)

	require.NoError(t, c.LoadAll(context.Background()))
	assert.Equal(t, BulkLimit, src.pageLimit)

	items, ok := c.List().Snapshot().Data()
	require.True(t, ok)
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"bulbasaur", "ivysaur", "charmander", "squirtle"}, names)
}

func TestLoadAllFailure(t *testing.T) {
	src := newFakeListSource()
	src.pageErr = &client.RemoteError{Status: 503}
	c := NewListController(src, nil)

	err := c.LoadAll(context.Background())
	require.Error(t, err)

	msg, ok := c.List().Snapshot().Err()
	require.True(t, ok)
	assert.Equal(t, "PokeAPI error (status 503)", msg)
	assert.Nil(t, c.Filtered())
}

func TestLoadTypesDropsPseudoTypes(t *testing.T) {
	c := NewListController(newFakeListSource(), nil)
	require.NoError(t, c.LoadTypes(context.Background()))

	types, ok := c.Types().Snapshot().Data()
	require.True(t, ok)
	assert.Equal(t, []models.SpeciesReference{{Name: "normal"}, {Name: "fire"}, {Name: "grass"}}, types)
}

func TestLoadTypesFailure(t *testing.T) {
	src := newFakeListSource()
	src.typesErr = errors.New("boom")
	c := NewListController(src, nil)

	require.Error(t, c.LoadTypes(context.Background()))
	msg, ok := c.Types().Snapshot().Err()
	require.True(t, ok)
	assert.Equal(t, "boom", msg)
}

func TestSelectType(t *testing.T) {
	src := newFakeListSource()
	c := NewListController(src, nil)

	require.NoError(t, c.SelectType(context.Background(), "fire"))
	assert.Equal(t, "fire", c.SelectedType())
	assert.Equal(t, []string{"fire"}, src.typeLookup)

	items, ok := c.List().Snapshot().Data()
	require.True(t, ok)
	assert.Len(t, items, 2)

	require.NoError(t, c.SelectType(context.Background(), ""))
	assert.Empty(t, c.SelectedType())
	items, _ = c.List().Snapshot().Data()
	assert.Len(t, items, 4, "empty type reloads the full catalog")
}

func TestSelectTypeNotFound(t *testing.T) {
	src := newFakeListSource()
	src.byTypeErr = client.ErrNotFound
	c := NewListController(src, nil)

	require.ErrorIs(t, c.SelectType(context.Background(), "nope"), client.ErrNotFound)
	assert.Equal(t, StatusFailed, c.List().Snapshot().Status())
}

func TestFilteredLeavesListIntact(t *testing.T) {
	c := NewListController(newFakeListSource(), nil)
	require.NoError(t, c.LoadAll(context.Background()))

	c.SetQuery("  SAUR ")
	assert.Equal(t, "  SAUR ", c.Query())

	filtered := c.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "bulbasaur", filtered[0].Name)
	assert.Equal(t, "ivysaur", filtered[1].Name)

	items, _ := c.List().Snapshot().Data()
	assert.Len(t, items, 4)

	c.SetQuery("")
	assert.Len(t, c.Filtered(), 4)
}
