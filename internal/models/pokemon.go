// Package models defines the PokeAPI records used by the Pokédex.
package models

// SpeciesReference is a PokeAPI named resource: a name plus the URL of the
// full resource. Species, types and list entries all use this shape.
type SpeciesReference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonIdentity is the id/name pair every Pokémon resource carries.
type PokemonIdentity struct {
	ID   int
	Name string
}

// PokemonListItem is an entry of a list endpoint. The id and sprite are
// derived from URL on every call and never stored.
type PokemonListItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID parses the trailing numeric path segment of the item URL.
func (p PokemonListItem) ID() (int, error) {
	return IDFromURL(p.URL)
}

// SpriteURL returns the default artwork URL for the item.
func (p PokemonListItem) SpriteURL() (string, error) {
	id, err := p.ID()
	if err != nil {
		return "", err
	}
	return SpriteURL(id), nil
}

// ShinySpriteURL returns the shiny artwork URL for the item.
func (p PokemonListItem) ShinySpriteURL() (string, error) {
	id, err := p.ID()
	if err != nil {
		return "", err
	}
	return ShinySpriteURL(id), nil
}

// Identity returns the item's id/name pair.
func (p PokemonListItem) Identity() (PokemonIdentity, error) {
	id, err := p.ID()
	if err != nil {
		return PokemonIdentity{}, err
	}
	return PokemonIdentity{ID: id, Name: p.Name}, nil
}

// PokemonPage is one page of GET /pokemon.
type PokemonPage struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []PokemonListItem `json:"results"`
}

// PokemonTypeSlot is one entry of a Pokémon's ordered type list.
type PokemonTypeSlot struct {
	Slot int              `json:"slot"`
	Type SpeciesReference `json:"type"`
}

// Sprites holds the sprite URLs returned with a Pokémon detail.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

// PokemonDetail is GET /pokemon/{id|name}.
// Weight is in hectograms and Height in decimeters, as sent upstream.
type PokemonDetail struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Types   []PokemonTypeSlot `json:"types"`
	Weight  int               `json:"weight"`
	Height  int               `json:"height"`
	Species SpeciesReference  `json:"species"`
	Sprites Sprites           `json:"sprites"`
}

// Identity returns the detail's id/name pair.
func (d PokemonDetail) Identity() PokemonIdentity {
	return PokemonIdentity{ID: d.ID, Name: d.Name}
}

// TypeNames returns the type names in slot order.
func (d PokemonDetail) TypeNames() []string {
	names := make([]string, len(d.Types))
	for i, t := range d.Types {
		names[i] = t.Type.Name
	}
	return names
}

// WeightKilograms converts the hectogram weight to kilograms.
func (d PokemonDetail) WeightKilograms() float64 {
	return HectogramsToKilograms(d.Weight)
}

// HeightCentimeters converts the decimeter height to centimeters.
func (d PokemonDetail) HeightCentimeters() int {
	return DecimetersToCentimeters(d.Height)
}

// HectogramsToKilograms converts an API weight to kilograms.
func HectogramsToKilograms(hg int) float64 {
	return float64(hg) / 10
}

// DecimetersToCentimeters converts an API height to centimeters.
func DecimetersToCentimeters(dm int) int {
	return dm * 10
}

// SpeciesEvolutionRef is the part of GET /pokemon-species/{id} that points
// at the evolution chain.
type SpeciesEvolutionRef struct {
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

// TypeListResponse is GET /type.
type TypeListResponse struct {
	Results []SpeciesReference `json:"results"`
}

// TypeMembers is GET /type/{name}.
type TypeMembers struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Pokemon []TypeMember `json:"pokemon"`
}

// TypeMember wraps one Pokémon reference in a type's member list.
type TypeMember struct {
	Slot    int             `json:"slot"`
	Pokemon PokemonListItem `json:"pokemon"`
}

// Items flattens the member wrappers into list items, keeping upstream order.
func (t TypeMembers) Items() []PokemonListItem {
	items := make([]PokemonListItem, len(t.Pokemon))
	for i, m := range t.Pokemon {
		items[i] = m.Pokemon
	}
	return items
}
