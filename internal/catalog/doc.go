// Package catalog holds the simulator's static reference data: the built-in
// scenarios, the five agent personas, the category and difficulty vocabularies
// and the onboarding copy shown on the home page.
//
// Everything here is read-only. Accessors return copies so callers cannot
// mutate the shared tables.
package catalog
