package models

// EvolutionChain is GET /evolution-chain/{id}.
type EvolutionChain struct {
	ID    int           `json:"id"`
	Chain EvolutionNode `json:"chain"`
}

// EvolutionNode is one species in an evolution tree. EvolvesTo keeps the
// upstream order, which is also the display order.
type EvolutionNode struct {
	IsBaby    bool              `json:"is_baby"`
	Species   SpeciesReference  `json:"species"`
	Details   []EvolutionDetail `json:"evolution_details"`
	EvolvesTo []EvolutionNode   `json:"evolves_to"`
}

// EvolutionDetail describes how the parent evolves into this node.
// Only the fields shown to users are decoded.
type EvolutionDetail struct {
	Trigger   SpeciesReference  `json:"trigger"`
	MinLevel  *int              `json:"min_level"`
	Item      *SpeciesReference `json:"item"`
	HeldItem  *SpeciesReference `json:"held_item"`
	TimeOfDay string            `json:"time_of_day"`
}

// Size returns the number of nodes in the tree rooted at n.
func (n EvolutionNode) Size() int {
	size := 1
	for _, child := range n.EvolvesTo {
		size += child.Size()
	}
	return size
}
