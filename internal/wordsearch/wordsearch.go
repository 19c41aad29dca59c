// SPDX-License-Identifier: MPL-2.0

package wordsearch

import (
	"context"
	"fmt"
	"time"

	"puzzlebox-cli/internal/grid"
	"puzzlebox-cli/internal/puzzle"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

type (
	// Result holds the totals of both scans over one grid.
	Result struct {
		// Words is the CountWord total.
		Words int
		// Crosses is the CountCross total.
		Crosses int
	}

	// Solver runs both scans over a parsed grid.
	Solver struct {
		// Needle is the word for the linear scan. The zero value searches DefaultWord.
		Needle Needle
		// AllowUnterminated accepts a final input line without a line break.
		AllowUnterminated bool
		// Parallel runs the two scans concurrently.
		Parallel bool
	}
)

// Analyze runs CountWord and CountCross over g. With parallel set the scans
// run in separate goroutines; neither touches state the other reads.
func Analyze(ctx context.Context, g *grid.Grid, n Needle, parallel bool) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("analyze grid: %w", err)
	}

	var res Result
	if !parallel {
		res.Words = CountWord(g, n)
		res.Crosses = CountCross(g)
		return res, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		res.Words = CountWord(g, n)
		return egCtx.Err()
	})
	eg.Go(func() error {
		res.Crosses = CountCross(g)
		return egCtx.Err()
	})
	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("analyze grid: %w", err)
	}
	return res, nil
}

// Day implements puzzle.Solver.
func (s *Solver) Day() int { return 4 }

// Name implements puzzle.Solver.
func (s *Solver) Name() string { return "wordsearch" }

// Summary implements puzzle.Solver.
func (s *Solver) Summary() string {
	return fmt.Sprintf("count %s in eight directions and MAS crosses in a letter grid", s.needle())
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	logger := log.FromContext(ctx)

	var opts []grid.Option
	if s.AllowUnterminated {
		opts = append(opts, grid.AllowUnterminated())
	}
	g, err := grid.Parse(input, opts...)
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed(err)
	}
	logger.Debug("parsed grid", "rows", g.Height(), "max_cols", g.MaxWidth())

	start := time.Now()
	res, err := Analyze(ctx, g, s.needle(), s.Parallel)
	if err != nil {
		return puzzle.Answer{}, err
	}
	logger.Debug("scanned grid",
		"word", s.needle().String(),
		"words", res.Words,
		"crosses", res.Crosses,
		"parallel", s.Parallel,
		"elapsed", time.Since(start),
	)

	return puzzle.Answer{Part1: res.Words, Part2: res.Crosses}, nil
}

func (s *Solver) needle() Needle {
	if s.Needle.Len() == 0 {
		return MustNeedle(DefaultWord)
	}
	return s.Needle
}
