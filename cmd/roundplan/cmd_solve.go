package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roundplan/conflict"
	"github.com/katalvlaran/roundplan/metrics"
	"github.com/katalvlaran/roundplan/report"
	"github.com/katalvlaran/roundplan/schedule"
)

// writers maps --format values to renderers and file extensions.
var writers = map[string]struct {
	write func(io.Writer, *schedule.Result) error
	ext   string
}{
	"text": {report.WriteText, ".txt"},
	"json": {report.WriteJSON, ".json"},
	"dot":  {report.WriteDOT, ".dot"},
}

type solveFlags struct {
	format string
	outDir string
	jobs   int
}

// job is one league to solve. path is empty for the default league.
type job struct {
	path string
	name string

	out        bytes.Buffer
	infeasible error
}

func newSolveCmd(a *app) *cobra.Command {
	var fl solveFlags

	cmd := &cobra.Command{
		Use:   "solve [files...]",
		Short: "Solve one or more league files (the default league when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd.Context(), fl, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fl.format, "format", "text", "output format: text, json or dot")
	f.StringVar(&fl.outDir, "out-dir", "", "write one output file per league into this directory")
	f.IntVarP(&fl.jobs, "jobs", "j", 1, "number of leagues solved concurrently")

	return cmd
}

func (a *app) solve(ctx context.Context, fl solveFlags, paths []string) error {
	w, ok := writers[strings.ToLower(fl.format)]
	if !ok {
		return fmt.Errorf("--format %q: want text, json or dot", fl.format)
	}
	if fl.jobs < 1 {
		return fmt.Errorf("--jobs %d: must be at least 1", fl.jobs)
	}

	jobs := make([]*job, 0, len(paths))
	for _, p := range paths {
		jobs = append(jobs, &job{path: p, name: strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))})
	}
	if len(jobs) == 0 {
		jobs = append(jobs, &job{name: "default"})
	}
	if fl.outDir != "" {
		seen := make(map[string]string, len(jobs))
		for _, j := range jobs {
			if prev, dup := seen[j.name]; dup {
				return fmt.Errorf("--out-dir: %s and %s would both write %s%s", prev, j.path, j.name, w.ext)
			}
			seen[j.name] = j.path
		}
	}
	if fl.outDir != "" {
		if err := os.MkdirAll(fl.outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", fl.outDir, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fl.jobs)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return a.solveOne(j, w.write)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var infeasible []error
	for _, j := range jobs {
		if j.infeasible != nil {
			infeasible = append(infeasible, j.infeasible)
			continue
		}
		if fl.outDir != "" {
			path := filepath.Join(fl.outDir, j.name+w.ext)
			if err := os.WriteFile(path, j.out.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			a.logger.Info("schedule written", "league", j.name, "path", path)
			continue
		}
		if len(jobs) > 1 && w.ext == ".txt" {
			fmt.Fprintf(a.stdout, "== %s ==\n", j.name)
		}
		if _, err := a.stdout.Write(j.out.Bytes()); err != nil {
			return err
		}
	}

	return errors.Join(infeasible...)
}

// solveOne builds and solves one league, rendering the result into j.out.
// An infeasible league is recorded on the job rather than failing the batch.
func (a *app) solveOne(j *job, write func(io.Writer, *schedule.Result) error) error {
	log := a.logger.With("league", j.name)

	lg, err := loadLeague(j.path)
	if err != nil {
		return err
	}
	g, err := conflict.Build(lg.Roster.Fixtures(), lg.Homes)
	if err != nil {
		return fmt.Errorf("%s: %w", j.name, err)
	}

	res, err := schedule.Solve(g, lg.Forbidden,
		schedule.WithRounds(lg.Rounds),
		schedule.WithCapacity(lg.Capacity),
		schedule.WithLogger(log),
	)
	var ie *schedule.InfeasibleError
	switch {
	case errors.As(err, &ie):
		a.recorder.Observe(metrics.OutcomeInfeasible, ie.Stats)
		log.Warn("no feasible schedule", "trials", ie.Stats.Trials, "backtracks", ie.Stats.Backtracks)
		j.infeasible = fmt.Errorf("%s: %w", j.name, err)
		return nil
	case err != nil:
		a.recorder.Observe(metrics.OutcomeError, schedule.Stats{})
		return fmt.Errorf("%s: %w", j.name, err)
	}
	a.recorder.Observe(metrics.OutcomeFeasible, res.Stats)

	if err = schedule.Verify(res.Assignment, lg.Forbidden, res.Rounds, res.Capacity); err != nil {
		return fmt.Errorf("%s: %w", j.name, err)
	}

	return write(&j.out, res)
}
