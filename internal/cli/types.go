package cli

import (
	"fmt"

	"github.com/raphaelgruber/pokedex/internal/viewstate"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List Pokémon types",
	Long: `List the types that can be passed to 'pokedex list --type'.

Examples:
  pokedex types`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func runTypes(cmd *cobra.Command, args []string) error {
	ctrl := viewstate.NewListController(repo, logger)
	if err := ctrl.LoadTypes(cmd.Context()); err != nil {
		return fmt.Errorf("list types: %s", viewstate.Message(err))
	}

	types, _ := ctrl.Types().Snapshot().Data()
	fmt.Printf("Types (%d):\n\n", len(types))
	for _, t := range types {
		fmt.Printf("- %s\n", typePillStyle(t.Name).Render(displayName(t.Name)))
	}
	return nil
}
