package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	in := RunRecord{
		GameID:   "runner",
		Score:    42,
		Distance: 310.5,
		Tier:     "rush",
		Hits:     2,
		Pickups:  1,
		Kills:    4,
		Cause:    "fell",
	}
	runID, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run id %q is not a UUID: %v", runID, err)
	}

	got, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	in.RunID = runID
	if diff := cmp.Diff(in, got, cmpopts.IgnoreFields(RunRecord{}, "ID", "CreatedAt")); diff != "" {
		t.Errorf("stored run mismatch (-want +got):\n%s", diff)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSaveRunRejectsBadID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunRecord{RunID: "not-a-uuid", GameID: "runner"}); err == nil {
		t.Error("expected error for malformed run id")
	}

	id := uuid.NewString()
	if _, err := store.SaveRun(RunRecord{RunID: id, GameID: "runner"}); err != nil {
		t.Fatalf("SaveRun() with explicit id failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{RunID: id, GameID: "runner"}); err == nil {
		t.Error("duplicate run id should be rejected")
	}
}

func TestRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RunByID(uuid.NewString()); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("got %v, want ErrRunNotFound", err)
	}
}

func TestTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "runner", Score: 100, Distance: 600},
		{GameID: "runner", Score: 50, Distance: 300},
		{GameID: "runner", Score: 100, Distance: 650},
		{GameID: "runner", Score: 200, Distance: 1200},
		{GameID: "other", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("runner", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	type key struct {
		Score    int
		Distance float64
	}
	got := make([]key, len(top))
	for i, r := range top {
		got[i] = key{r.Score, r.Distance}
	}
	want := []key{{200, 1200}, {100, 650}, {100, 600}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopRuns order (-want +got):\n%s", diff)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveRun(RunRecord{GameID: "runner", Score: s})
	}

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "runner", Score: 100})
	store.SaveRun(RunRecord{GameID: "runner", Score: 200})
	store.SaveRun(RunRecord{GameID: "other", Score: 300})

	if err := store.ClearRuns("runner"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("runner", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("Other game's runs should not be affected")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "runner", Score: 10, Distance: 60})
	store.SaveRun(RunRecord{GameID: "runner", Score: 30, Distance: 200})

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 ||
		stats.LongestRun != 200 || stats.TotalDistance != 260 {
		t.Errorf("stats = %+v", stats)
	}
}
