package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/config"
	"github.com/Iron-Ham/ethicsim/internal/errors"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/spf13/cobra"
)

var (
	scenarioSearch   string
	scenarioCategory string
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenario catalog",
	Long: `List the built-in scenarios.

--search keeps scenarios whose title or description contains the term,
ignoring case. --category keeps one category.`,
	Args: cobra.NoArgs,
	RunE: runScenarios,
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the debate agents",
	Long: `List the agents that can take part in a debate. The index in the first
column is what 'ethicsim debate --agents' expects.`,
	Args: cobra.NoArgs,
	RunE: runAgents,
}

func init() {
	scenariosCmd.Flags().StringVarP(&scenarioSearch, "search", "s", "", "filter by title or description")
	scenariosCmd.Flags().StringVar(&scenarioCategory, "category", catalog.AllCategories,
		"filter by category ("+strings.Join(catalog.Categories(), ", ")+")")
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(agentsCmd)
}

// resolveCategory matches name against the filter categories, ignoring case.
func resolveCategory(name string) (string, error) {
	idx := slices.IndexFunc(catalog.FilterCategories(), func(c string) bool {
		return strings.EqualFold(c, name)
	})
	if idx < 0 {
		return "", errors.NewValidationError(fmt.Sprintf("unknown category %q", name)).
			WithField("category").
			WithValue(name)
	}
	return catalog.FilterCategories()[idx], nil
}

func runScenarios(cmd *cobra.Command, args []string) error {
	category, err := resolveCategory(scenarioCategory)
	if err != nil {
		return err
	}

	st := store.New(nil, nil)
	st.SetCategory(category)
	st.SetSearch(scenarioSearch)

	out := cmd.OutOrStdout()
	width := outputWidth(out, config.Get())
	list := st.FilteredScenarios()
	if len(list) == 0 {
		fmt.Fprintln(out, "No scenarios match the current filters.")
		return nil
	}

	for i, sc := range list {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s  %s\n", styles.Title.Render(sc.Title), styles.Muted.Render(sc.ID))
		fmt.Fprintf(out, "  %s  %s\n", sc.Category, styles.ToneBadge(sc.Difficulty.Tone(), string(sc.Difficulty)))
		fmt.Fprintln(out, wrapIndent(sc.Description, "  ", width))
		fmt.Fprintf(out, "  Participants: %s\n", strings.Join(sc.Participants, ", "))
	}
	return nil
}

func runAgents(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	width := outputWidth(out, config.Get())
	for i, a := range catalog.Agents() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%d  %s %s  %s\n", i, a.Avatar, styles.Title.Render(a.Name), styles.Muted.Render(a.Role))
		fmt.Fprintf(out, "   Framework: %s\n", a.Framework)
		fmt.Fprintln(out, wrapIndent(a.EthicalStance, "   ", width))
	}
	return nil
}
