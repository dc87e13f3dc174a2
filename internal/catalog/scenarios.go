package catalog

import "slices"

// AllCategories is the category filter value that matches every scenario.
const AllCategories = "All Categories"

// Difficulty grades how hard a scenario is to reason about.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Tone maps a difficulty onto the badge tone used when rendering it.
func (d Difficulty) Tone() string {
	switch d {
	case Beginner:
		return "success"
	case Intermediate:
		return "warning"
	case Advanced:
		return "error"
	default:
		return "default"
	}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return slices.Contains(Difficulties(), d)
}

// Scenario is an ethical dilemma put to the agents. Scenarios are immutable
// once created.
type Scenario struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Description  string     `json:"description" yaml:"description"`
	Category     string     `json:"category" yaml:"category"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty"`
	Participants []string   `json:"participants" yaml:"participants"`
}

// Clone returns a deep copy of s.
func (s Scenario) Clone() Scenario {
	s.Participants = slices.Clone(s.Participants)
	return s
}

var categories = []string{
	"Transportation Ethics",
	"Workplace Fairness",
	"Privacy vs Security",
	"Healthcare Ethics",
}

// Categories returns the known scenario categories, without AllCategories.
func Categories() []string {
	return slices.Clone(categories)
}

// FilterCategories returns AllCategories followed by every known category,
// the order used by the category filter.
func FilterCategories() []string {
	return append([]string{AllCategories}, categories...)
}

// Difficulties returns the difficulties from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

var builtinScenarios = []Scenario{
	{
		ID:          "av-dilemma",
		Title:       "Autonomous Vehicle Dilemma",
		Description: "Should a self-driving car prioritize passenger safety over pedestrian safety when faced with an unavoidable accident?",
		Category:    "Transportation Ethics",
		Difficulty:  Intermediate,
		Participants: []string{
			"Government Official",
			"Human Rights Advocate",
			"Business Executive",
			"Community Representative",
		},
	},
	{
		ID:          "ai-hiring",
		Title:       "AI Hiring Algorithm Bias",
		Description: "An AI hiring system shows bias against certain demographic groups. Should it be discontinued or can the bias be corrected?",
		Category:    "Workplace Fairness",
		Difficulty:  Advanced,
		Participants: []string{
			"Human Rights Advocate",
			"Business Executive",
			"Technical Expert",
			"Community Representative",
		},
	},
	{
		ID:          "facial-recognition",
		Title:       "Facial Recognition Surveillance",
		Description: "Should facial recognition technology be used in public spaces for security purposes despite privacy concerns?",
		Category:    "Privacy vs Security",
		Difficulty:  Beginner,
		Participants: []string{
			"Government Official",
			"Human Rights Advocate",
			"Community Representative",
			"Technical Expert",
		},
	},
	{
		ID:          "ai-medical",
		Title:       "AI Medical Diagnosis Priority",
		Description: "An AI system can predict health risks but requires access to sensitive personal data. Where should the line be drawn?",
		Category:    "Healthcare Ethics",
		Difficulty:  Advanced,
		Participants: []string{
			"Government Official",
			"Human Rights Advocate",
			"Business Executive",
			"Community Representative",
		},
	},
}

// BuiltinScenarios returns a fresh copy of the scenarios seeded at startup.
func BuiltinScenarios() []Scenario {
	out := make([]Scenario, len(builtinScenarios))
	for i, s := range builtinScenarios {
		out[i] = s.Clone()
	}
	return out
}
