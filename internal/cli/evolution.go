package cli

import (
	"fmt"
	"strconv"

	"github.com/raphaelgruber/pokedex/internal/viewstate"
	"github.com/spf13/cobra"
)

var evolutionShiny bool

var evolutionCmd = &cobra.Command{
	Use:   "evolution <id>",
	Short: "Show the evolution line of a Pokémon",
	Long: `Resolve the full evolution line of a Pokémon and print it in chain order
(each stage before the stages it evolves into, branches in API order),
with a sprite URL per stage.

Examples:
  pokedex evolution 1
  pokedex evolution 133
  pokedex evolution 25 --shiny`,
	Args: cobra.ExactArgs(1),
	RunE: runEvolution,
}

func init() {
	evolutionCmd.Flags().BoolVar(&evolutionShiny, "shiny", false, "print shiny sprite URLs")
}

func runEvolution(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	res, err := resolver.Resolve(cmd.Context(), id)
	if err != nil {
		logger.Debug("resolve failed", "id", id, "error", err)
		return fmt.Errorf("evolution line for #%d: %s", id, viewstate.Message(err))
	}

	fmt.Printf("%s %s (chain %d)\n\n", displayName(res.Detail.Name), formatNumber(res.Detail.ID), res.ChainID)
	if !res.HasEvolutions() {
		fmt.Println("No evolutions.")
		return nil
	}
	for _, row := range evolutionRows(res.Line, evolutionShiny) {
		fmt.Println(row)
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid Pokémon id %q", s)
	}
	return id, nil
}
