package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/raphaelgruber/pokedex/internal/metrics"
	"github.com/raphaelgruber/pokedex/internal/models"
)

const (
	// DefaultPageLimit is the page size of GET /pokemon when none is given.
	DefaultPageLimit = 20

	// DefaultTypeLimit is the page size of GET /type when none is given.
	DefaultTypeLimit = 50
)

// PokemonPage returns one page of GET /pokemon.
func (c *Client) PokemonPage(ctx context.Context, limit, offset int) (*models.PokemonPage, error) {
	q, err := pageQuery(limit, offset)
	if err != nil {
		return nil, err
	}

	var page models.PokemonPage
	if err := c.get(ctx, metrics.OpPokemonList, q, &page, "pokemon"); err != nil {
		return nil, err
	}
	return &page, nil
}

// PokemonByID returns GET /pokemon/{id}.
func (c *Client) PokemonByID(ctx context.Context, id int) (*models.PokemonDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: pokemon id %d", ErrInvalidArgument, id)
	}

	var detail models.PokemonDetail
	if err := c.get(ctx, metrics.OpPokemonDetail, nil, &detail, "pokemon", strconv.Itoa(id)); err != nil {
		return nil, err
	}
	return &detail, nil
}

// PokemonByName returns GET /pokemon/{name}. Names are matched lowercase.
func (c *Client) PokemonByName(ctx context.Context, name string) (*models.PokemonDetail, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty pokemon name", ErrInvalidArgument)
	}

	var detail models.PokemonDetail
	if err := c.get(ctx, metrics.OpPokemonDetail, nil, &detail, "pokemon", name); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SpeciesEvolutionRef returns the evolution chain pointer of GET /pokemon-species/{id}.
func (c *Client) SpeciesEvolutionRef(ctx context.Context, id int) (*models.SpeciesEvolutionRef, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: species id %d", ErrInvalidArgument, id)
	}

	var ref models.SpeciesEvolutionRef
	if err := c.get(ctx, metrics.OpSpecies, nil, &ref, "pokemon-species", strconv.Itoa(id)); err != nil {
		return nil, err
	}
	return &ref, nil
}

// EvolutionChain returns GET /evolution-chain/{id}/.
func (c *Client) EvolutionChain(ctx context.Context, chainID int) (*models.EvolutionChain, error) {
	if chainID <= 0 {
		return nil, fmt.Errorf("%w: chain id %d", ErrInvalidArgument, chainID)
	}

	var chain models.EvolutionChain
	if err := c.get(ctx, metrics.OpEvolutionChain, nil, &chain, "evolution-chain", strconv.Itoa(chainID)+"/"); err != nil {
		return nil, err
	}
	return &chain, nil
}

// TypesPage returns the type names of one page of GET /type, in upstream order.
func (c *Client) TypesPage(ctx context.Context, limit, offset int) ([]models.SpeciesReference, error) {
	q, err := pageQuery(limit, offset)
	if err != nil {
		return nil, err
	}

	var resp models.TypeListResponse
	if err := c.get(ctx, metrics.OpTypeList, q, &resp, "type"); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// PokemonByType returns the members of GET /type/{name}, in upstream order.
func (c *Client) PokemonByType(ctx context.Context, typeName string) ([]models.PokemonListItem, error) {
	typeName = normalizeName(typeName)
	if typeName == "" {
		return nil, fmt.Errorf("%w: empty type name", ErrInvalidArgument)
	}

	var members models.TypeMembers
	if err := c.get(ctx, metrics.OpTypeDetail, nil, &members, "type", typeName); err != nil {
		return nil, err
	}
	return members.Items(), nil
}

func pageQuery(limit, offset int) (url.Values, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit %d offset %d", ErrInvalidArgument, limit, offset)
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return q, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
