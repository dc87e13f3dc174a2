package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/config"
	"github.com/Iron-Ham/ethicsim/internal/debate"
	"github.com/Iron-Ham/ethicsim/internal/errors"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/Iron-Ham/ethicsim/internal/tui/view"
	"github.com/spf13/cobra"
)

var (
	debateScenario string
	debateAgents   string
	debateTick     time.Duration
	debateSeed     int64
	debateExport   string
)

var debateCmd = &cobra.Command{
	Use:   "debate",
	Short: "Play a debate to stdout",
	Long: `Play a scripted debate without the terminal UI.

Messages are printed one at a time with the configured tick interval between
them, and the results follow one interval after the last message. Ctrl+C
cancels the debate.

Examples:
  ethicsim debate --scenario ai-hiring --agents 1,2,3
  ethicsim debate --scenario av-dilemma --tick 200ms --seed 7 --export run.yaml`,
	Args: cobra.NoArgs,
	RunE: runDebate,
}

func init() {
	debateCmd.Flags().StringVar(&debateScenario, "scenario", "", "scenario ID (see 'ethicsim scenarios')")
	debateCmd.Flags().StringVar(&debateAgents, "agents", "0,1,2,3", "comma separated agent indices in speaking order (see 'ethicsim agents')")
	debateCmd.Flags().DurationVar(&debateTick, "tick", 0, "delay between messages (default from debate.tick_interval_ms)")
	debateCmd.Flags().Int64Var(&debateSeed, "seed", 0, "score seed (default from debate.seed; 0 means random)")
	debateCmd.Flags().StringVar(&debateExport, "export", "", "write the transcript to a .yaml or .json file")
	_ = debateCmd.MarkFlagRequired("scenario")
	rootCmd.AddCommand(debateCmd)
}

func runDebate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if debateExport != "" {
		if _, err := debate.FormatFromPath(debateExport); err != nil {
			return err
		}
	}

	interval := cfg.Debate.TickInterval()
	if cmd.Flags().Changed("tick") {
		if debateTick <= 0 {
			return errors.NewValidationError("--tick must be positive").WithField("tick").WithValue(debateTick.String())
		}
		interval = debateTick
	}
	seed := cfg.Debate.Seed
	if cmd.Flags().Changed("seed") {
		seed = debateSeed
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(event.WithLogger(logger))
	logEvents(bus, logger)

	agents, err := parseAgentList(debateAgents)
	if err != nil {
		return err
	}

	st := store.New(bus, logger, store.WithMinAgents(cfg.Debate.MinAgents))
	if err := st.SetScenario(debateScenario); err != nil {
		return err
	}
	if err := st.SetAgents(agents); err != nil {
		return err
	}
	req, err := st.StartDebate()
	if err != nil {
		return err
	}

	seq, err := debate.NewSequencer(req.Scenario, req.Agents,
		debate.WithRandom(debate.NewRandom(seed)),
		debate.WithBus(bus),
		debate.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	p := &debatePrinter{out: out, width: outputWidth(out, cfg)}
	p.header(req.Scenario, seq)

	res, err := seq.Play(ctx, debate.RealClock(), interval, p.step)
	if err != nil {
		if errors.Is(err, errors.ErrCanceled) {
			fmt.Fprintf(out, "\nDebate canceled after %d of %d messages.\n", len(seq.Revealed()), seq.TotalMessages())
			return nil
		}
		return err
	}
	p.result(seq.Agents(), *res)

	if debateExport != "" {
		transcript, err := seq.Transcript()
		if err != nil {
			return err
		}
		if err := transcript.WriteFile(debateExport); err != nil {
			return err
		}
		logger.Info("transcript exported", "path", debateExport)
		fmt.Fprintf(out, "\nTranscript written to %s\n", debateExport)
	}
	return nil
}

// parseAgentList parses "1,2,3" into agent indices. Range checks are left to
// the store.
func parseAgentList(raw string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid agent index %q", part)).
				WithField("agents").
				WithValue(raw)
		}
		out = append(out, idx)
	}
	return out, nil
}

// debatePrinter writes playback steps as plain wrapped text.
type debatePrinter struct {
	out   io.Writer
	width int
}

func (p *debatePrinter) header(sc catalog.Scenario, seq *debate.Sequencer) {
	fmt.Fprintln(p.out, styles.Title.Render(sc.Title))
	fmt.Fprintln(p.out, wrapIndent(sc.Description, "", p.width))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Participants:")
	for _, idx := range seq.Agents() {
		a := catalog.MustAgent(idx)
		fmt.Fprintf(p.out, "  %s %s (%s)\n", a.Avatar, a.Name, a.Role)
	}
}

func (p *debatePrinter) step(s debate.Step) {
	if s.Done() {
		return
	}
	r := s.Reveal
	if r.OpensRound() {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, styles.RoundTitle.Render(r.RoundTitle))
	}
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s %s  %s\n", r.Agent.Avatar, r.Agent.Name,
		styles.Muted.Render("score "+view.FormatScore(r.Message.Score)))
	fmt.Fprintln(p.out, wrapIndent(r.Message.Text, "    ", p.width))
}

func (p *debatePrinter) result(agents []int, res debate.Result) {
	winner := res.Winner()
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, styles.Title.Render(fmt.Sprintf("%s %s Won!", winner.Avatar, winner.Name)))
	fmt.Fprintf(p.out, "Final Score: %s/10\n", view.FormatScore(res.WinnerScore))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Scores:")
	for _, idx := range agents {
		a := catalog.MustAgent(idx)
		fmt.Fprintf(p.out, "  %-22s %s\n", a.Name, view.FormatScore(res.Scores[idx]))
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Recommended Policy:")
	fmt.Fprintln(p.out, wrapIndent(res.Policy, "  ", p.width))
}
