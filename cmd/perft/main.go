// Command perft is a one-shot move-count enumeration runner used to
// validate the move generator against known node counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"chessgo/position"
)

func main() {
	fen := flag.String("fen", position.FENStartPos, "FEN string (defaults to the starting position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at the root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos := position.New()
	if err := pos.SetFEN(*fen); err != nil {
		fmt.Fprintf(os.Stderr, "parsing FEN: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := pos.PerftDivide(*depth)
		type kv struct {
			m position.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := pos.Perft(*depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", *depth, nodes, elapsed, nps)
}
