package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/lane-runner/internal/storage"
)

func TestRunRows(t *testing.T) {
	at := time.Date(2026, time.March, 4, 18, 30, 0, 0, time.UTC)
	runs := []storage.RunRecord{
		{Score: 310, Distance: 1204.6, Tier: "rush", Hits: 2, Kills: 5, CreatedAt: at},
		{Score: 90, Distance: 300, Tier: "warmup", Hits: 3, CreatedAt: at},
	}

	want := []table.Row{
		{"#1", "310", "1205m", "rush", "2", "5", "Mar 04 18:30"},
		{"#2", "90", "300m", "warmup", "3", "0", "Mar 04 18:30"},
	}
	if diff := cmp.Diff(want, runRows(runs)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store := openTestStore(t)
	for _, rec := range []storage.RunRecord{
		{GameID: "runner", Score: 10, Cause: "fell"},
		{GameID: "runner", Score: 30, Cause: "caught", Pickups: 2},
		{GameID: "runner", Score: 20},
		{GameID: "other", Score: 99},
	} {
		if _, err := store.SaveRun(rec); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, "runner", 100, 30)
	got := make([]int, 0, len(m.runs))
	for _, r := range m.runs {
		got = append(got, r.Score)
	}
	if diff := cmp.Diff([]int{30, 20, 10}, got); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
	if m.stats == nil || m.stats.RunsCount != 3 || m.stats.HighScore != 30 {
		t.Errorf("stats = %+v, want 3 runs with best 30", m.stats)
	}

	best, ok := m.Selected()
	if !ok || best.Cause != "caught" {
		t.Fatalf("Selected = %+v, %v; want the best run", best, ok)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES - runner", "caught", "Best"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(ScoreboardModel)
	if r, _ := m.Selected(); r.Score != 20 {
		t.Errorf("after down Selected score = %d, want 20", r.Score)
	}
}

func TestScoreboardLayouts(t *testing.T) {
	for _, width := range []int{60, 120} {
		m := NewScoreboardModel(nil, "runner", width, 30)
		if _, ok := m.Selected(); ok {
			t.Errorf("width %d: empty board should have no selection", width)
		}
		if !strings.Contains(m.View(), "No runs recorded yet.") {
			t.Errorf("width %d: expected empty message", width)
		}
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", 100, 30)
	next, cmd := m.Update(keyMsg("esc"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() || cmd == nil {
		t.Error("esc should leave the scoreboard without quitting")
	}
}
