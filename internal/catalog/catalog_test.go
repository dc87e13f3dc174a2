package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltinScenarios(t *testing.T) {
	scenarios := BuiltinScenarios()

	gotIDs := make([]string, len(scenarios))
	for i, s := range scenarios {
		gotIDs[i] = s.ID
		if !s.Difficulty.Valid() {
			t.Errorf("%s: invalid difficulty %q", s.ID, s.Difficulty)
		}
		if len(s.Participants) == 0 {
			t.Errorf("%s: no participants", s.ID)
		}
	}
	wantIDs := []string{"av-dilemma", "ai-hiring", "facial-recognition", "ai-medical"}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("scenario IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinScenarios_ReturnsCopies(t *testing.T) {
	first := BuiltinScenarios()
	first[0].Title = "mutated"
	first[0].Participants[0] = "mutated"

	second := BuiltinScenarios()
	if second[0].Title == "mutated" || second[0].Participants[0] == "mutated" {
		t.Error("BuiltinScenarios should return independent copies")
	}
}

func TestAgents(t *testing.T) {
	if AgentCount != 5 {
		t.Fatalf("AgentCount = %d, want 5", AgentCount)
	}

	roles := make([]string, 0, AgentCount)
	for _, a := range Agents() {
		roles = append(roles, a.Role)
	}
	want := []string{
		"Government Official",
		"Human Rights Advocate",
		"Business Executive",
		"Community Representative",
		"Technical Expert",
	}
	if diff := cmp.Diff(want, roles); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}
}

func TestAgentAt(t *testing.T) {
	if _, err := AgentAt(-1); err == nil {
		t.Error("AgentAt(-1) should fail")
	}
	if _, err := AgentAt(AgentCount); err == nil {
		t.Error("AgentAt(AgentCount) should fail")
	}
	a, err := AgentAt(4)
	if err != nil {
		t.Fatalf("AgentAt(4) error = %v", err)
	}
	if a.ID != "tech-expert" {
		t.Errorf("AgentAt(4).ID = %q, want tech-expert", a.ID)
	}
}

func TestDifficultyTone(t *testing.T) {
	tests := map[Difficulty]string{
		Beginner:     "success",
		Intermediate: "warning",
		Advanced:     "error",
		"Expert":     "default",
	}
	for d, want := range tests {
		if got := d.Tone(); got != want {
			t.Errorf("%s.Tone() = %q, want %q", d, got, want)
		}
	}
}

func TestFilterCategories(t *testing.T) {
	got := FilterCategories()
	if got[0] != AllCategories {
		t.Errorf("first filter category = %q, want %q", got[0], AllCategories)
	}
	if len(got) != len(Categories())+1 {
		t.Errorf("len = %d, want %d", len(got), len(Categories())+1)
	}
}

func TestOnboarding(t *testing.T) {
	if StepCount() != 4 {
		t.Errorf("StepCount() = %d, want 4", StepCount())
	}
	for i, s := range OnboardingSteps() {
		if s.Number != i+1 {
			t.Errorf("step %d has Number %d", i, s.Number)
		}
	}
	if len(Features()) != 4 {
		t.Errorf("len(Features()) = %d, want 4", len(Features()))
	}
}
