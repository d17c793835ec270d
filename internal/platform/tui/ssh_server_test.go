package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/registry"
)

var registerOnce sync.Once

func registerScripted() {
	registerOnce.Do(func() {
		registry.Register("scripted", func() registry.Game {
			return &scriptedGame{endAt: 2, score: 7}
		})
	})
}

func sessionKey(t *testing.T, m SessionModel, k string) SessionModel {
	t.Helper()
	next, _ := m.Update(keyMsg(k))
	return next.(SessionModel)
}

func sessionTick(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(SessionModel)
}

func TestSessionPlayAndReturn(t *testing.T) {
	registerScripted()
	store := openTestStore(t)
	m := NewSessionModel(store, testRuntime(), "alice", nil)

	m = sessionKey(t, m, "enter")
	if m.gameModel == nil {
		t.Fatal("enter should start a game")
	}

	for range 3 {
		m = sessionTick(t, m)
	}
	if !m.gameModel.State().GameOver {
		t.Fatal("scripted game should be over")
	}
	if m.gameModel.LastRunID() == "" {
		t.Error("finished run should be saved")
	}

	m = sessionKey(t, m, "esc")
	if m.gameModel != nil {
		t.Fatal("esc after game over should return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
	if m.View() == "" {
		t.Error("menu should render")
	}
}

func TestSessionScoreboard(t *testing.T) {
	registerScripted()
	m := NewSessionModel(nil, testRuntime(), "bob", nil)

	m = sessionKey(t, m, "tab")
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if want := m.menu.items[0].GameID; m.scoreboard.gameID != want {
		t.Errorf("scoreboard game = %q, want highlighted %q", m.scoreboard.gameID, want)
	}

	m = sessionKey(t, m, "esc")
	if m.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if m.quitting {
		t.Error("closing the scoreboard should not end the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "carol", nil)
	next, cmd := m.Update(keyMsg("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}

func TestSessionResize(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "dave", nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := next.(SessionModel).config
	if got.ScreenW != 120 || got.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", got.ScreenW, got.ScreenH)
	}
}
