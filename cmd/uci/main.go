// Command uci is a thin UCI protocol front-end over the position/search
// packages, supporting the fixed-depth-only "go" subset the core search
// implements (no wtime/btime/movetime — there is no time management here,
// only depth limits).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chessgo/position"
	"chessgo/search"
)

func main() {
	pos := position.New()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "uci":
			fmt.Println("id name chessgo")
			fmt.Println("id author chessgo")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos = position.New()
		case "position":
			handlePosition(pos, fields[1:])
		case "go":
			handleGo(pos, fields[1:])
		case "stop":
			// Search is synchronous and already complete by the time "go"
			// returns, so there is nothing to cancel.
		case "quit":
			return
		default:
			fmt.Fprintf(os.Stderr, "info string unknown command %q\n", fields[0])
		}
	}
}

func handlePosition(pos *position.Position, args []string) {
	if len(args) == 0 {
		return
	}
	idx := 0
	switch args[0] {
	case "startpos":
		pos.SetStartpos()
		idx = 1
	case "fen":
		idx = 1
		var fenFields []string
		for idx < len(args) && args[idx] != "moves" {
			fenFields = append(fenFields, args[idx])
			idx++
		}
		if err := pos.SetFEN(strings.Join(fenFields, " ")); err != nil {
			fmt.Fprintf(os.Stderr, "info string %v\n", err)
			return
		}
	default:
		return
	}

	if idx < len(args) && args[idx] == "moves" {
		for _, ms := range args[idx+1:] {
			legal := pos.GenerateLegal(make([]position.Move, 0, 64))
			m, err := position.ParseUCIMove(ms, legal)
			if err != nil {
				fmt.Fprintf(os.Stderr, "info string %v\n", err)
				return
			}
			pos.DoMove(m)
		}
	}
}

func handleGo(pos *position.Position, args []string) {
	depth := 4
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		}
	}

	best, _, ok := search.Search(pos, depth)
	if !ok {
		fmt.Println("bestmove 0000")
		return
	}
	fmt.Printf("bestmove %s\n", best.String())
}
