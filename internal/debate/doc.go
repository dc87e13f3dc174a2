// Package debate plays back a scripted debate between catalog agents.
//
// A debate run turns a scenario and an ordered agent selection into three
// rounds of canned statements, reveals them one at a time, and finally
// aggregates a winner and a policy recommendation.
//
// # Run Lifecycle
//
// A Sequencer is an explicit state machine:
//
//   - AwaitingStart: created, nothing revealed yet
//   - Revealing: at least one message revealed, script not exhausted
//   - Complete: the script is exhausted and the Result has been aggregated
//   - Canceled: the run was abandoned before completion
//
// Next performs exactly one transition. Play drives Next from a Clock,
// waiting a fixed interval after every reveal.
//
// # Usage
//
//	seq, err := debate.NewSequencer(scenario, []int{1, 2, 3},
//		debate.WithBus(bus),
//		debate.WithRandom(debate.NewRandom(42)),
//	)
//	if err != nil {
//		return err
//	}
//	result, err := seq.Play(ctx, debate.RealClock(), 2*time.Second, func(step debate.Step) {
//		render(step)
//	})
//
// # Randomness
//
// Round-two scores and the aggregated scores are drawn from an injected
// RandomSource. The two draws are independent: the per-message scores are
// decorative and play no part in choosing the winner.
//
// # Thread Safety
//
// Sequencer is safe for concurrent use. Cancel may be called from any
// goroutine while Play is running.
package debate
