package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hersh/tetromino/internal/config"
	"github.com/hersh/tetromino/internal/logging"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 11
	return NewModel(cfg, logging.Discard())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestStartGameFromWelcome(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "G O T R I S")

	m, cmd := update(t, m, key("1"))
	assert.Equal(t, ScreenPlaying, m.screen)
	require.NotNil(t, m.session)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "GOTRIS")
}

func TestPlayingKeysMovePiece(t *testing.T) {
	m, _ := update(t, newTestModel(t), key("1"))
	start := m.session.Current.Anchor

	m, _ = update(t, m, key("left"))
	assert.Equal(t, start.X-1, m.session.Current.Anchor.X)

	m, _ = update(t, m, key("space"))
	assert.Equal(t, 1, m.session.Pieces)
}

func TestQuitIgnoredWhilePlaying(t *testing.T) {
	m, _ := update(t, newTestModel(t), key("1"))
	m, cmd := update(t, m, key("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, ScreenPlaying, m.screen)
}

func TestStaleTickIgnored(t *testing.T) {
	m, _ := update(t, newTestModel(t), key("1"))
	start := m.session.Current.Anchor

	m, cmd := update(t, m, GameTickMsg{Gen: m.gen - 1, Time: time.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, start, m.session.Current.Anchor)

	m, cmd = update(t, m, GameTickMsg{Gen: m.gen, Time: time.Now()})
	assert.NotNil(t, cmd)
	assert.Equal(t, start.Y+1, m.session.Current.Anchor.Y)
}

func TestHardDropsEndGame(t *testing.T) {
	m, _ := update(t, newTestModel(t), key("1"))

	for i := 0; i < 200 && m.screen == ScreenPlaying; i++ {
		m, _ = update(t, m, key("space"))
	}
	require.Equal(t, ScreenGameOver, m.screen)
	assert.Contains(t, m.View(), "GAME OVER")

	m, _ = update(t, m, key("enter"))
	assert.Equal(t, ScreenWelcome, m.screen)
	assert.Nil(t, m.session)
}
