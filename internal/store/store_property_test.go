package store

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
)

// TestToggleAgentInvolution verifies toggling an index twice restores the
// selection.
// Property: toggle(i); toggle(i) == identity for any reachable selection
func TestToggleAgentInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("toggle is its own inverse", prop.ForAll(
		func(prefix []int, idx int) bool {
			s := New(nil, nil)
			for _, p := range prefix {
				if _, err := s.ToggleAgent(p); err != nil {
					return false
				}
			}
			before := s.SelectedAgents()

			if _, err := s.ToggleAgent(idx); err != nil {
				return false
			}
			if _, err := s.ToggleAgent(idx); err != nil {
				return false
			}

			after := s.SelectedAgents()
			slices.Sort(before)
			slices.Sort(after)
			return slices.Equal(before, after)
		},
		gen.SliceOf(gen.IntRange(0, catalog.AgentCount-1)),
		gen.IntRange(0, catalog.AgentCount-1),
	))

	properties.Property("selection stays duplicate-free and in range", prop.ForAll(
		func(toggles []int) bool {
			s := New(nil, nil)
			for _, p := range toggles {
				_, _ = s.ToggleAgent(p)
			}
			sel := s.SelectedAgents()
			seen := make(map[int]bool, len(sel))
			for _, i := range sel {
				if !catalog.ValidAgentIndex(i) || seen[i] {
					return false
				}
				seen[i] = true
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-3, catalog.AgentCount+3)),
	))

	properties.TestingRun(t)
}

// TestSetStepClamp verifies the stored step always lands in range.
// Property: 0 <= SetStep(n) <= StepCount()-1, and SetStep is idempotent
func TestSetStepClamp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("step is clamped and idempotent", prop.ForAll(
		func(n int) bool {
			s := New(nil, nil)
			got := s.SetStep(n)
			if got < 0 || got > s.StepCount()-1 {
				return false
			}
			if n >= 0 && n < s.StepCount() && got != n {
				return false
			}
			return s.SetStep(got) == got
		},
		gen.IntRange(-1000, 1000),
	))

	properties.TestingRun(t)
}

// TestFilterIdentity verifies the default filters return every scenario.
// Property: with "All Categories" and an empty search the filter is the identity
func TestFilterIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("default filters keep every scenario in order", prop.ForAll(
		func(titles []string) bool {
			s := New(nil, nil)
			for _, title := range titles {
				_, _ = s.AddCustomScenario(ScenarioFields{
					Title:        title,
					Description:  "generated",
					Category:     "Privacy vs Security",
					Difficulty:   "Beginner",
					Participants: "someone",
				})
			}
			s.SetCategory(catalog.AllCategories)
			s.SetSearch("")
			return slices.Equal(scenarioIDs(s.Scenarios()), scenarioIDs(s.FilteredScenarios()))
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
