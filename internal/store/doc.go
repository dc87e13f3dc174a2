// Package store holds the simulator's navigation and selection state.
//
// A Store is the single owner of that state: every mutation goes through a
// named method and every read returns a copy. Mutations publish events on the
// bus after the store's lock has been released, so subscribers may call back
// into the store.
//
// # Pages
//
// Navigation is a caller-driven state machine over PageHome, PageScenario,
// PageAgentConfig, PageDebate and PageResults. The store never transitions on
// its own. SetPage accepts any page value; rendering code decides what an
// unknown page looks like.
//
// # Agent selection
//
// Selected agents are catalog indices kept in the order they were added.
// ToggleAgent adds an absent index and removes a present one, so toggling the
// same index twice restores the previous selection. The minimum participant
// count is only checked by StartDebate.
package store
