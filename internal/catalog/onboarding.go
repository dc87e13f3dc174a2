package catalog

// Step is one page of the home-screen "How it works" stepper.
type Step struct {
	Number      int
	Title       string
	Description string
}

// Feature is a home-screen feature card.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

var onboardingSteps = []Step{
	{1, "Choose a Scenario", "Select from ethical dilemmas like autonomous vehicles, AI hiring, or facial recognition"},
	{2, "Configure AI Agents", "Customize AI personas with distinct ethical values and debate priorities"},
	{3, "Run the Debate", "Watch multi-agent dialogue unfold with arguments and counterpoints"},
	{4, "Review Outcomes", "Analyze votes, summaries, and visualizations of the ethical decision"},
}

var features = []Feature{
	{"👥", "Multi-Agent Perspectives", "AI agents representing diverse ethical viewpoints engage in structured debates."},
	{"💬", "Real-Time Debates", "Agents present arguments, counterpoints, and rebuttals in natural language."},
	{"📊", "Decision Analytics", "Visualize voting patterns, argument strength, and ethical principle usage."},
	{"⚙️", "Customizable Scenarios", "Choose from built dilemmas or create your own ethical scenarios."},
}

// OnboardingSteps returns the stepper pages in order.
func OnboardingSteps() []Step {
	return append([]Step(nil), onboardingSteps...)
}

// StepCount is the number of onboarding steps.
func StepCount() int {
	return len(onboardingSteps)
}

// Features returns the home-screen feature cards.
func Features() []Feature {
	return append([]Feature(nil), features...)
}
