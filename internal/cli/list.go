package cli

import (
	"fmt"

	"github.com/raphaelgruber/pokedex/internal/viewstate"
	"github.com/spf13/cobra"
)

var (
	listType  string
	listQuery string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Pokémon",
	Long: `List Pokémon from the full catalog, optionally narrowed to one type and
filtered by a case-insensitive name search. Alternate forms are left out of
the full catalog.

Examples:
  pokedex list
  pokedex list --query saur
  pokedex list --type fire
  pokedex list --type water --query chu --limit 0`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "only Pokémon of this type")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter by name")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "max results (0 for all)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ctrl := viewstate.NewListController(repo, logger)

	if err := ctrl.SelectType(ctx, listType); err != nil {
		return fmt.Errorf("list pokemon: %s", viewstate.Message(err))
	}
	ctrl.SetQuery(listQuery)

	items := ctrl.Filtered()
	if len(items) == 0 {
		fmt.Println("No Pokémon found.")
		return nil
	}

	shown := items
	if listLimit > 0 && len(shown) > listLimit {
		shown = shown[:listLimit]
	}

	fmt.Printf("Pokémon (%d of %d):\n\n", len(shown), len(items))
	for _, item := range shown {
		fmt.Printf("- %s\n", formatListItem(item))
	}
	return nil
}
