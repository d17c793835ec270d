package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/lane-runner/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return g.title }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func register(id, title string) {
	Register(id, func() Game { return stubGame{id: id, title: title} })
}

func TestRegistry(t *testing.T) {
	register("zz-test", "Last")
	register("aa-test", "First")

	want := []GameInfo{{ID: "aa-test", Title: "First"}, {ID: "zz-test", Title: "Last"}}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	if !Exists("aa-test") || Exists("missing") {
		t.Error("Exists reported wrong membership")
	}

	g, err := Create("zz-test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Last" {
		t.Errorf("Title = %q, want Last", g.Title())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("dup-test", "Dup")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	register("dup-test", "Dup")
}
