// Command linkcutbench is a small operational front-end over the linkcut
// library. It reads newline-delimited operations from a script file (or
// stdin) and applies them to a single in-memory forest, logging the result
// of each one.
//
// Script grammar, one operation per line, fields whitespace-separated:
//
//	make <label> <weight>   create a node named label, logs its id
//	link <v> <w>            link v under w
//	cut <v> <w>              cut the edge between v and w
//	connected <v> <w>        report whether v and w are connected
//	path <v> <w>             report the path aggregate between v and w
//	findroot <v>             report v's represented-tree root
//	reroot <v>               make v the root of its tree
//
// Blank lines and lines starting with '#' are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zyedidia/linkcut"
	"github.com/zyedidia/linkcut/pathagg"
)

func main() {
	aggregate := flag.String("aggregate", "sum", "path aggregate to use: max, min, sum, or xor")
	scriptPath := flag.String("script", "", "path to a script file (default: stdin)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	in := os.Stdin
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *scriptPath).Msg("open script")
		}
		defer f.Close()
		in = f
	}

	if err := run(in, *aggregate, log); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}

func run(in io.Reader, aggregate string, log zerolog.Logger) error {
	switch aggregate {
	case "max":
		return runWith(in, pathagg.Max[float64]{}, log)
	case "min":
		return runWith(in, pathagg.Min[float64]{}, log)
	case "sum":
		return runWith(in, pathagg.Sum[float64]{}, log)
	case "xor":
		return runWith(in, pathagg.Xor[float64, int64]{}, log)
	default:
		return fmt.Errorf("unknown aggregate %q", aggregate)
	}
}

// runWith drives the script against a forest parameterized by agg. Generic
// over the aggregate value type A so any pathagg.Aggregate can drive the
// same script loop.
func runWith[A any](in io.Reader, agg pathagg.Aggregate[float64, A], log zerolog.Logger) error {
	tr := linkcut.New[float64](agg)
	// names maps the script's own labels to allocated node ids, so a script
	// can refer to nodes by whatever name it likes without precomputing ids.
	names := make(map[string]int)

	resolve := func(label string) (int, error) {
		id, ok := names[label]
		if !ok {
			return 0, fmt.Errorf("unknown node %q", label)
		}
		return id, nil
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		op := fields[0]
		entry := log.With().Int("line", lineNo).Str("op", op).Logger()

		switch op {
		case "make":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: make <label> <weight>", lineNo)
			}
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			id := tr.MakeTree(w)
			names[fields[1]] = id
			entry.Info().Str("label", fields[1]).Int("id", id).Msg("make")

		case "link":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: link <v> <w>", lineNo)
			}
			v, err := resolve(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			w, err := resolve(fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			entry.Info().Bool("ok", tr.Link(v, w)).Msg("link")

		case "cut":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: cut <v> <w>", lineNo)
			}
			v, err := resolve(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			w, err := resolve(fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			entry.Info().Bool("ok", tr.Cut(v, w)).Msg("cut")

		case "connected":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: connected <v> <w>", lineNo)
			}
			v, err := resolve(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			w, err := resolve(fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			entry.Info().Bool("connected", tr.Connected(v, w)).Msg("connected")

		case "path":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: path <v> <w>", lineNo)
			}
			v, err := resolve(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			w, err := resolve(fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if !tr.Connected(v, w) {
				entry.Info().Msg("path: disconnected")
				continue
			}
			entry.Info().Interface("value", tr.Path(v, w)).Msg("path")

		case "findroot":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: findroot <v>", lineNo)
			}
			v, err := resolve(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			r := tr.FindRoot(v)
			label := fields[1]
			for k, id := range names {
				if id == r {
					label = k
					break
				}
			}
			entry.Info().Str("root", label).Msg("findroot")

		case "reroot":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: reroot <v>", lineNo)
			}
			v, err := resolve(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			tr.Reroot(v)
			entry.Info().Msg("reroot")

		default:
			return fmt.Errorf("line %d: unknown op %q", lineNo, op)
		}
	}
	return scanner.Err()
}
