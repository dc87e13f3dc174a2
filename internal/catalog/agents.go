package catalog

import "fmt"

// Agent is a debate persona. Agents are referenced everywhere by their index
// in the catalog, never by ID.
type Agent struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Role          string `json:"role" yaml:"role"`
	Avatar        string `json:"avatar" yaml:"avatar"`
	EthicalStance string `json:"ethical_stance" yaml:"ethical_stance"`
	Framework     string `json:"framework" yaml:"framework"`
	Personality   string `json:"personality" yaml:"personality"`
}

var agents = [...]Agent{
	{
		ID:            "gov-official",
		Name:          "Dr. Sarah Chen",
		Role:          "Government Official",
		Avatar:        "🧑‍⚖️",
		EthicalStance: "Represents public policy and regulatory perspectives with focus on social welfare and law enforcement.",
		Framework:     "Utilitarian with legal constraints",
		Personality:   "Authoritative, methodical, considers public safety and legal precedent",
	},
	{
		ID:            "human-rights",
		Name:          "Marcus Rodriguez",
		Role:          "Human Rights Advocate",
		Avatar:        "🧑‍🎓",
		EthicalStance: "Champions individual privacy, civil liberties, and protection of vulnerable populations.",
		Framework:     "Deontological rights-based approach",
		Personality:   "Passionate, principled, questions authority and advocates for the marginalized",
	},
	{
		ID:            "business-exec",
		Name:          "Alexandra Thompson",
		Role:          "Business Executive",
		Avatar:        "🧑‍💼",
		EthicalStance: "Focuses on economic viability, innovation, and competitive advantages in ethical decision-making.",
		Framework:     "Consequentialist with market considerations",
		Personality:   "Pragmatic, results-oriented, balances ethics with business sustainability",
	},
	{
		ID:            "community-rep",
		Name:          "Jamie Park",
		Role:          "Community Representative",
		Avatar:        "🧑‍🤝‍🧑",
		EthicalStance: "Voices everyday concerns and practical implications for ordinary citizens.",
		Framework:     "Common-sense morality with community values",
		Personality:   "Relatable, concerned with practical impacts, represents diverse community views",
	},
	{
		ID:            "tech-expert",
		Name:          "Dr. Alex Kumar",
		Role:          "Technical Expert",
		Avatar:        "🧑‍🔬",
		EthicalStance: "Provides technical insights on AI capabilities, limitations, and implementation challenges.",
		Framework:     "Evidence-based with technological realism",
		Personality:   "Analytical, detail-oriented, focuses on technical feasibility and accuracy",
	},
}

// AgentCount is the number of agents in the catalog.
const AgentCount = len(agents)

// Agents returns the agent catalog in index order.
func Agents() []Agent {
	out := make([]Agent, AgentCount)
	copy(out, agents[:])
	return out
}

// ValidAgentIndex reports whether idx addresses a catalog entry.
func ValidAgentIndex(idx int) bool {
	return idx >= 0 && idx < AgentCount
}

// AgentAt returns the agent at idx.
func AgentAt(idx int) (Agent, error) {
	if !ValidAgentIndex(idx) {
		return Agent{}, fmt.Errorf("agent index %d out of range [0,%d)", idx, AgentCount)
	}
	return agents[idx], nil
}

// MustAgent returns the agent at idx and panics on an invalid index. Only for
// indices that have already been validated.
func MustAgent(idx int) Agent {
	a, err := AgentAt(idx)
	if err != nil {
		panic(err)
	}
	return a
}
