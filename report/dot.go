package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/roundplan/schedule"
)

// unassignedColor fills fixtures without a round.
const unassignedColor = "gray"

func nodeName(i int) string { return "f" + strconv.Itoa(i) }

// RoundColor returns the Graphviz HSV color of round r out of n: hues are
// spread evenly over the wheel so every round gets a distinct color.
func RoundColor(r, n int) string {
	if r < 1 || r > n {
		return unassignedColor
	}
	hue := float64(r-1) / float64(n)

	return fmt.Sprintf("%.3f 0.650 0.950", hue)
}

// WriteDOT renders the conflict graph behind res as an undirected Graphviz
// graph. Nodes are named by fixture index ("f0", "f1", ...) so team names
// never collide, labeled "HOME X AWAY" and filled with their round's color;
// conflict edges are gray; a legend cluster lists every round.
func WriteDOT(w io.Writer, res *schedule.Result) error {
	if res == nil || res.Assignment == nil {
		return ErrNilAssignment
	}
	asg := res.Assignment
	g := asg.Graph()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "graph schedule {")
	fmt.Fprintln(bw, `  node [style=filled, fontsize=10];`)
	fmt.Fprintln(bw, `  edge [color=gray];`)

	for i := 0; i < g.Len(); i++ {
		f := g.Fixture(i)
		fmt.Fprintf(bw, "  %s [label=%q, fillcolor=%q];\n", nodeName(i), f.String(), RoundColor(asg.RoundAt(i), res.Rounds))
	}
	for _, e := range g.EdgeIndices() {
		fmt.Fprintf(bw, "  %s -- %s;\n", nodeName(e[0]), nodeName(e[1]))
	}

	fmt.Fprintln(bw, "  subgraph cluster_legend {")
	fmt.Fprintln(bw, `    label="Rounds";`)
	for r := 1; r <= res.Rounds; r++ {
		fmt.Fprintf(bw, "    %q [label=%q, shape=box, fillcolor=%q];\n",
			fmt.Sprintf("legend_%d", r), fmt.Sprintf("Round %d", r), RoundColor(r, res.Rounds))
	}
	fmt.Fprintln(bw, "  }")
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
