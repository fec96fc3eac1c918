package cli

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/raphaelgruber/pokedex/internal/viewstate"
)

// stateMsg carries a new detail controller state into the UI.
type stateMsg struct {
	state viewstate.State[viewstate.DetailView]
}

// detailModel is the bubbletea model for the detail screen. It renders the
// controller's state and asks the controller to load other Pokémon; it never
// talks to the API itself.
type detailModel struct {
	ctx     context.Context
	ctrl    *viewstate.DetailController
	updates <-chan viewstate.State[viewstate.DetailView]
	spinner spinner.Model
	theme   Theme
	id      int
	state   viewstate.State[viewstate.DetailView]
}

func newDetailModel(ctx context.Context, ctrl *viewstate.DetailController, updates <-chan viewstate.State[viewstate.DetailView], id int) detailModel {
	return detailModel{
		ctx:     ctx,
		ctrl:    ctrl,
		updates: updates,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		theme:   defaultTheme,
		id:      id,
		state:   ctrl.Snapshot(),
	}
}

// waitForState blocks until the store publishes again.
func waitForState(updates <-chan viewstate.State[viewstate.DetailView]) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return nil
		}
		return stateMsg{state: st}
	}
}

// Init starts the spinner and the state subscription.
func (m detailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForState(m.updates))
}

// Update handles messages and returns the updated model.
func (m detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "n", "right":
			m.id++
			m.ctrl.LoadDetail(m.ctx, m.id)
		case "p", "left":
			if m.id > 1 {
				m.id--
				m.ctrl.LoadDetail(m.ctx, m.id)
			}
		case "r":
			m.ctrl.LoadDetail(m.ctx, m.id)
		}
		return m, nil

	case stateMsg:
		m.state = msg.state
		return m, waitForState(m.updates)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the detail screen.
func (m detailModel) View() tea.View {
	content := renderDetailState(m.state, m.theme, m.theme.numberStyle().Render(m.spinner.View()))
	hint := m.theme.hintStyle().Render("←/p previous  →/n next  r reload  q quit")
	return tea.NewView(content + "\n" + hint + "\n")
}

// RunDetailView runs the interactive detail screen starting at id.
func RunDetailView(ctx context.Context, ctrl *viewstate.DetailController, id int) error {
	updates, unsubscribe := ctrl.Store().Subscribe()
	defer unsubscribe()
	defer ctrl.Close()

	ctrl.LoadDetail(ctx, id)

	p := tea.NewProgram(newDetailModel(ctx, ctrl, updates, id))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("detail UI error: %w", err)
	}
	return nil
}
