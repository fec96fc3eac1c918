package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"trailing slash", "https://pokeapi.co/api/v2/evolution-chain/7/", 7, false},
		{"no trailing slash", "https://pokeapi.co/api/v2/evolution-chain/7", 7, false},
		{"multiple trailing slashes", "https://pokeapi.co/api/v2/pokemon/25//", 25, false},
		{"bare number", "151", 151, false},
		{"name segment", "https://pokeapi.co/api/v2/pokemon/pikachu/", 0, true},
		{"empty", "", 0, true},
		{"only slashes", "///", 0, true},
		{"zero", "https://pokeapi.co/api/v2/pokemon/0/", 0, true},
		{"negative", "https://pokeapi.co/api/v2/pokemon/-3/", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IDFromURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedURL), "error should wrap ErrMalformedURL")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpriteURL(t *testing.T) {
	assert.Equal(t, SpriteURL(25), SpriteURL(25), "sprite url must be deterministic")
	assert.Equal(t,
		"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/home/25.png",
		SpriteURL(25))
	assert.Equal(t,
		"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/home/shiny/25.png",
		ShinySpriteURL(25))
	assert.NotEqual(t, SpriteURL(1), SpriteURL(2))
}

func TestListItemDerivedFields(t *testing.T) {
	item := PokemonListItem{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"}

	id, err := item.ID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	sprite, err := item.SpriteURL()
	require.NoError(t, err)
	assert.Equal(t, SpriteURL(1), sprite)

	shiny, err := item.ShinySpriteURL()
	require.NoError(t, err)
	assert.Equal(t, ShinySpriteURL(1), shiny)

	identity, err := item.Identity()
	require.NoError(t, err)
	assert.Equal(t, PokemonIdentity{ID: 1, Name: "bulbasaur"}, identity)

	bad := PokemonListItem{Name: "missingno", URL: "https://pokeapi.co/api/v2/pokemon/"}
	_, err = bad.SpriteURL()
	assert.ErrorIs(t, err, ErrMalformedURL)
}

func TestPokemonURL(t *testing.T) {
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/4", PokemonURL("https://pokeapi.co/api/v2/", 4))
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/4", PokemonURL("https://pokeapi.co/api/v2", 4))

	id, err := IDFromURL(PokemonURL("https://pokeapi.co/api/v2/", 4))
	require.NoError(t, err)
	assert.Equal(t, 4, id)
}

func TestUnitConversion(t *testing.T) {
	d := PokemonDetail{Weight: 69, Height: 7}
	assert.InDelta(t, 6.9, d.WeightKilograms(), 1e-9)
	assert.Equal(t, 70, d.HeightCentimeters())
	assert.Equal(t, 69, d.Weight, "conversion must not touch stored units")
}

func TestFilterByName(t *testing.T) {
	items := []PokemonListItem{
		{Name: "charmander"},
		{Name: "charmeleon"},
		{Name: "charizard"},
		{Name: "squirtle"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"blank returns all", "   ", []string{"charmander", "charmeleon", "charizard", "squirtle"}},
		{"substring", "char", []string{"charmander", "charmeleon", "charizard"}},
		{"case insensitive", "SQUIR", []string{"squirtle"}},
		{"trimmed", "  zard ", []string{"charizard"}},
		{"no match", "pika", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByName(items, tt.query)
			names := make([]string, 0, len(got))
			for _, g := range got {
				names = append(names, g.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	assert.Len(t, items, 4, "input slice must be left intact")
}

func TestWithoutForms(t *testing.T) {
	items := []PokemonListItem{
		{Name: "pikachu"},
		{Name: "pikachu-rock-star"},
		{Name: "raichu"},
		{Name: "raichu-alola"},
	}
	got := WithoutForms(items)
	require.Len(t, got, 2)
	assert.Equal(t, "pikachu", got[0].Name)
	assert.Equal(t, "raichu", got[1].Name)
}

func TestEvolutionNodeSize(t *testing.T) {
	tree := EvolutionNode{
		Species: SpeciesReference{Name: "eevee"},
		EvolvesTo: []EvolutionNode{
			{Species: SpeciesReference{Name: "vaporeon"}},
			{Species: SpeciesReference{Name: "jolteon"}},
			{Species: SpeciesReference{Name: "flareon"}},
		},
	}
	assert.Equal(t, 4, tree.Size())
}

func TestTypeMembersItems(t *testing.T) {
	members := TypeMembers{
		Name: "grass",
		Pokemon: []TypeMember{
			{Slot: 1, Pokemon: PokemonListItem{Name: "bulbasaur"}},
			{Slot: 1, Pokemon: PokemonListItem{Name: "oddish"}},
		},
	}

	items := members.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "bulbasaur", items[0].Name)
	assert.Equal(t, "oddish", items[1].Name)
}
