package engine

import (
	"context"

	"github.com/seekerror/logw"
)

// LogMatchResult logs a completed match summary at Info level, in the same
// structured-logging idiom the teacher uses for engine state transitions.
func LogMatchResult(ctx context.Context, label string, r MatchResult) {
	logw.Infof(ctx, "%v: games=%v wins_as_white=%v wins_as_black=%v draws=%v a_wins=%v b_wins=%v avg_rounds=%.1f",
		label, r.Games, r.WinsAsWhite, r.WinsAsBlack, r.Draws, r.AWins, r.BWins, r.AverageRounds())
}

// StreamMatches runs n independent matches one at a time, in the order given,
// streaming each MatchResult out as it completes. Async, mirroring the
// teacher's goroutine-plus-channel line-streaming pattern (ReadStdinLines):
// the consumer can start aggregating before the whole schedule finishes.
func StreamMatches(ctx context.Context, n int, fn func(i int) MatchResult) <-chan MatchResult {
	ret := make(chan MatchResult, 1)
	go func() {
		defer close(ret)

		for i := 0; i < n; i++ {
			if ctx.Err() != nil {
				return
			}
			r := fn(i)
			logw.Debugf(ctx, "match %v/%v: %+v", i+1, n, r)
			ret <- r
		}
	}()
	return ret
}
