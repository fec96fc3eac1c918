package cli

import (
	"errors"
	"fmt"

	"github.com/raphaelgruber/pokedex/internal/viewstate"
	"github.com/spf13/cobra"
)

var showPlain bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a Pokémon with its evolution line",
	Long: `Open the detail view of a Pokémon: name, number, types, weight, height,
sprites and, when it has one, the evolution line.

The interactive view lets you step to the previous or next Pokémon while a
load is in flight; only the most recent request is ever shown. Use --plain
to print once and exit.

Examples:
  pokedex show 1
  pokedex show 133 --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "print once without the interactive view")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctrl := viewstate.NewDetailController(resolver, logger)
	if !showPlain {
		return RunDetailView(cmd.Context(), ctrl, id)
	}

	ctrl.LoadDetail(cmd.Context(), id)
	if err := ctrl.Wait(cmd.Context()); err != nil {
		return err
	}

	st := ctrl.Snapshot()
	if msg, failed := st.Err(); failed {
		return errors.New(msg)
	}
	fmt.Print(renderDetailState(st, defaultTheme, ""))
	return nil
}
