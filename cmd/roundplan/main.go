// Command roundplan builds double round-robin fixture schedules.
//
//	roundplan init league.yaml
//	roundplan solve league.yaml --format dot --out-dir out/
//	roundplan graph league.yaml
//
// Exit status is 0 on success, 2 when a league has no feasible schedule and
// 1 on any other error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/roundplan/schedule"
)

const (
	exitOK         = 0
	exitError      = 1
	exitInfeasible = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	if ferr := a.flushMetrics(); ferr != nil && err == nil {
		err = ferr
	}
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, schedule.ErrInfeasible):
		fmt.Fprintln(stderr, "Error:", err)
		return exitInfeasible
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
}
