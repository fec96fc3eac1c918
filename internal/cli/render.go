package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/raphaelgruber/pokedex/internal/metrics"
	"github.com/raphaelgruber/pokedex/internal/models"
	"github.com/raphaelgruber/pokedex/internal/viewstate"
)

// displayName capitalizes a PokeAPI name for display.
func displayName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func formatNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// formatListItem renders one catalog row. Items whose URL carries no id are
// shown by name only.
func formatListItem(item models.PokemonListItem) string {
	id, err := item.ID()
	if err != nil {
		return displayName(item.Name)
	}
	return fmt.Sprintf("%s %s", formatNumber(id), displayName(item.Name))
}

// evolutionRows renders the evolution line in order with sprite URLs.
func evolutionRows(line []models.PokemonListItem, shiny bool) []string {
	rows := make([]string, 0, len(line))
	for i, item := range line {
		sprite, err := item.SpriteURL()
		if shiny {
			sprite, err = item.ShinySpriteURL()
		}
		row := fmt.Sprintf("%d. %s", i+1, formatListItem(item))
		if err == nil {
			row += "  " + sprite
		}
		rows = append(rows, row)
	}
	return rows
}

// renderDetail renders a loaded detail view.
func renderDetail(view viewstate.DetailView, theme Theme) string {
	d := view.Detail
	var b strings.Builder

	b.WriteString(theme.titleStyle().Render(displayName(d.Name)))
	b.WriteString(" ")
	b.WriteString(theme.numberStyle().Render(formatNumber(d.ID)))
	b.WriteString("\n\n")

	pills := make([]string, 0, len(d.Types))
	for _, t := range d.TypeNames() {
		pills = append(pills, typePillStyle(t).Render(displayName(t)))
	}
	b.WriteString(strings.Join(pills, " "))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %.1f kg\n", theme.labelStyle().Render("Weight"), d.WeightKilograms())
	fmt.Fprintf(&b, "%s %d cm\n", theme.labelStyle().Render("Height"), d.HeightCentimeters())

	if d.Sprites.FrontDefault != nil {
		fmt.Fprintf(&b, "%s %s\n", theme.labelStyle().Render("Regular"), *d.Sprites.FrontDefault)
	}
	if d.Sprites.FrontShiny != nil {
		fmt.Fprintf(&b, "%s %s\n", theme.labelStyle().Render("Shiny"), *d.Sprites.FrontShiny)
	}

	if view.HasEvolutions() {
		b.WriteString("\n")
		b.WriteString(theme.titleStyle().Render("Evolutions"))
		b.WriteString("\n")
		for _, row := range evolutionRows(view.EvolutionLine, false) {
			b.WriteString("  " + row + "\n")
		}
	}

	return b.String()
}

// renderDetailState renders whatever the detail controller currently holds.
// loading is drawn in place of the content while a request is in flight.
func renderDetailState(st viewstate.State[viewstate.DetailView], theme Theme, loading string) string {
	switch st.Status() {
	case viewstate.StatusIdle:
		return ""
	case viewstate.StatusLoading:
		return loading + " Loading...\n"
	case viewstate.StatusFailed:
		msg, _ := st.Err()
		out := theme.errorStyle().Render("✗ "+msg) + "\n"
		if stale, ok := st.Stale(); ok {
			out += theme.hintStyle().Render("Showing last loaded Pokémon") + "\n\n" + renderDetail(stale, theme)
		}
		return out
	}

	view, _ := st.Data()
	return renderDetail(view, theme)
}

// printStats writes per-endpoint request timings.
func printStats(w io.Writer, snap metrics.Snapshot) {
	fmt.Fprintf(w, "\nRequests: %d (uptime %.1fs)\n", snap.Total(), snap.UptimeSeconds)
	for _, op := range snap.Operations {
		fmt.Fprintf(w, "  %-18s count=%d failed=%d avg=%.1fms min=%dms max=%dms\n",
			op.Name, op.Count, op.Failures, op.AvgTimeMs, op.MinTimeMs, op.MaxTimeMs)
	}
}
