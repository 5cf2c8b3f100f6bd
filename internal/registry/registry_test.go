package registry

import (
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Scene() core.Scene { return core.Scene{Width: 1, Height: 1} }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawScene(g.Scene()) }
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.steps} }
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_create", func() Game { return &stubGame{id: "stub_create"} })

	if !Exists("stub_create") {
		t.Fatal("Exists(stub_create) = false, expected true")
	}

	g, err := Create("stub_create")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if g.ID() != "stub_create" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub_create")
	}

	// Each Create returns a fresh instance.
	g.Step(core.NewInputFrame(), 1.0/60)
	g2, _ := Create("stub_create")
	if g2.State().Score != 0 {
		t.Error("Create should return independent instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create of unknown game should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists of unknown game should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_list_b", func() Game { return &stubGame{id: "stub_list_b"} })
	Register("stub_list_a", func() Game { return &stubGame{id: "stub_list_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub_list_a" {
			found = true
			if info.Title != "Stub stub_list_a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_list_a")
			}
		}
	}
	if !found {
		t.Error("registered game missing from List()")
	}
}
