package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/qmdscan/internal/harness"
	"github.com/connerohnesorge/qmdscan/internal/qmd"
	"github.com/connerohnesorge/qmdscan/internal/scan"
	"github.com/connerohnesorge/qmdscan/internal/scanerrs"
	"github.com/connerohnesorge/qmdscan/internal/tui"
)

// ExploreCmd steps through the unified scanner's calls one token at a
// time, rendering the open-block stack and serialized size after each
// step. State flags are not shown.
type ExploreCmd struct {
	File       string `arg:"" help:"Document to explore" predictor:"qmdfile"`             //nolint:lll,revive // Kong struct tag
	Checkpoint bool   `help:"Serialize and restore scanner state around every scan call"` //nolint:lll,revive // Kong struct tag
}

// Run executes the explore command.
func (c *ExploreCmd) Run() error {
	source, err := afero.ReadFile(inputFS, c.File)
	if err != nil {
		return &scanerrs.InputFileError{Path: c.File, Err: err}
	}

	model, err := newExploreModel(c.File, source, harness.Options{
		Checkpoint: c.Checkpoint,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("explore failed: %w", err)
	}

	return nil
}

// exploreStep is one scan call's outcome plus the state after it.
type exploreStep struct {
	token         harness.Token
	blocks        []qmd.Block
	serializedLen int
}

// exploreKeys are the key bindings of the explore view.
type exploreKeys struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var defaultExploreKeys = exploreKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous step"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next step"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// exploreModel is the bubbletea model for the explore view.
type exploreModel struct {
	file     string
	source   []byte
	steps    []exploreStep
	cursor   int
	viewport viewport.Model
	keys     exploreKeys
	ready    bool
}

func newExploreModel(
	file string,
	source []byte,
	opts harness.Options,
) (*exploreModel, error) {
	var steps []exploreStep
	_, err := harness.DriveBlockObserved(source, opts,
		func(tok harness.Token, blocks []qmd.Block, serializedLen int) {
			steps = append(steps, exploreStep{
				token:         tok,
				blocks:        blocks,
				serializedLen: serializedLen,
			})
		})
	if err != nil {
		return nil, err
	}

	return &exploreModel{
		file:   file,
		source: source,
		steps:  steps,
		keys:   defaultExploreKeys,
	}, nil
}

// Init implements tea.Model.
func (m *exploreModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.steps)-1 {
				m.cursor++
			}
		}
	case tea.WindowSizeMsg:
		headerHeight := 6
		m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
		m.ready = true
	}
	if m.ready {
		m.viewport.SetContent(m.stepList())
		m.viewport.SetYOffset(maxInt(0, m.cursor-m.viewport.Height/2))
	}

	return m, nil
}

// View implements tea.Model.
func (m *exploreModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle().Render("qmdscan explore: " + m.file))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.stepList())
	}
	b.WriteString("\n")
	b.WriteString(tui.HelpStyle().Render("↑/↓ step · q quit"))

	return b.String()
}

// statusLine renders the state after the selected step: the serialized
// size, heat-mapped against the serialization budget, and the open-block
// stack. State flags are not shown.
func (m *exploreModel) statusLine() string {
	if len(m.steps) == 0 {
		return tui.HelpStyle().Render("empty document")
	}
	step := m.steps[m.cursor]
	stack := "∅"
	if len(step.blocks) > 0 {
		names := make([]string, len(step.blocks))
		for i, blk := range step.blocks {
			names[i] = blk.String()
		}
		stack = strings.Join(names, " › ")
	}
	heat := lipgloss.NewStyle().
		Foreground(stackHeatColor(step.serializedLen)).
		Bold(true)

	return fmt.Sprintf(
		"%s %s  %s %s",
		heat.Render(fmt.Sprintf("state %d/%d B",
			step.serializedLen, scan.SerializedSizeBudget)),
		tui.BorderStyle().Render("│"),
		tui.OffsetStyle().Render("stack:"),
		stack,
	)
}

// stepList renders every step, the selected one highlighted.
func (m *exploreModel) stepList() string {
	var b strings.Builder
	for i, step := range m.steps {
		line := fmt.Sprintf("%5d..%-5d %-38s depth=%d",
			step.token.Start,
			step.token.End,
			step.token.Name,
			len(step.blocks),
		)
		if i == m.cursor {
			line = tui.SelectedStyle().Render(line)
		} else if !step.token.External {
			line = tui.TextTokenStyle().Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// Heat map endpoints for the serialization gauge.
const (
	heatStartHex = "#22c55e"
	heatEndHex   = "#ef4444"
)

// stackHeatColor blends green to red as the serialized state approaches
// the budget the scanner refuses pushes at.
func stackHeatColor(serializedLen int) lipgloss.Color {
	start, _ := colorful.Hex(heatStartHex)
	end, _ := colorful.Hex(heatEndHex)
	frac := float64(serializedLen) / float64(scan.SerializedSizeBudget)
	if frac > 1 {
		frac = 1
	}
	blended := start.BlendLuv(end, frac).Clamped()

	return lipgloss.Color(blended.Hex())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
