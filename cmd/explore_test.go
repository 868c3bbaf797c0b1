package cmd

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/qmdscan/internal/harness"
)

func TestExploreModel_StepsAndQuit(t *testing.T) {
	model, err := newExploreModel(
		"doc.qmd",
		[]byte("> - item\n"),
		harness.Options{},
	)
	require.NoError(t, err)
	require.NotEmpty(t, model.steps)

	tm := teatest.NewTestModel(t, model,
		teatest.WithInitialTermSize(100, 30))

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	out, err := io.ReadAll(tm.FinalOutput(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "qmdscan explore")
}

func TestExploreModel_CursorBounds(t *testing.T) {
	model, err := newExploreModel(
		"doc.qmd",
		[]byte("x\n"),
		harness.Options{},
	)
	require.NoError(t, err)

	// Moving up at the first step stays put.
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyUp})
	m := updated.(*exploreModel)
	assert.Equal(t, 0, m.cursor)

	// Moving past the last step stays at the last step.
	for i := 0; i < len(m.steps)+3; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(*exploreModel)
	}
	assert.Equal(t, len(m.steps)-1, m.cursor)
}

func TestStackHeatColor_Clamps(t *testing.T) {
	low := stackHeatColor(13)
	high := stackHeatColor(10_000)
	assert.NotEqual(t, low, high)
	assert.NotEmpty(t, string(high))
}
