// Package view renders the pages of the ethicsim TUI.
//
// Renderers are pure: they take plain state (catalog data, store snapshots,
// sequencer reveals) plus a width and return a string. The root tui package
// owns all mutable state and decides what to pass in, which keeps these
// functions testable without a running program.
//
// # Pages
//
//   - [RenderHome]: hero text, feature list and the onboarding stepper
//   - [RenderScenarioList]: search box, category chips and scenario cards
//   - [RenderCustomForm]: the custom scenario form
//   - [RenderAgents]: agent cards with selection toggles and a summary
//   - [RenderDebateHeader], [RenderChat], [RenderScoreboard]: debate playback
//   - [ResultsMarkdown], [TranscriptMarkdown], [RenderMarkdown]: results page
//
// Shared chrome lives in [RenderBreadcrumb] and [RenderNotice].
package view
