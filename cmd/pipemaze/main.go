// Command pipemaze reads a pipe maze and prints the distance to the farthest
// point of the loop through S and the number of tiles the loop encloses.
//
// Usage:
//
//	pipemaze [-input file | -sample name] [-check] [-draw] [-box] [-v] [-trace]
//
// With no -input and no -sample the maze is read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pipemaze"
	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/internal/samples"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/render"
)

var log = logrus.New()

type config struct {
	input   string
	sample  string
	check   bool
	draw    bool
	box     bool
	verbose bool
	trace   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "input", "", "path to the puzzle file (default stdin)")
	flag.StringVar(&cfg.sample, "sample", "", "solve a built-in sample: "+strings.Join(samples.Names(), ", "))
	flag.BoolVar(&cfg.check, "check", false, "also cross-check the farthest point with breadth-first search")
	flag.BoolVar(&cfg.draw, "draw", false, "draw the maze with the loop and enclosed tiles colored")
	flag.BoolVar(&cfg.box, "box", false, "draw pipes with box-drawing characters")
	flag.BoolVar(&cfg.verbose, "v", false, "log debug details")
	flag.BoolVar(&cfg.trace, "trace", false, "log every traversal step")
	flag.Parse()

	log.SetOutput(os.Stderr)
	switch {
	case cfg.trace:
		log.SetLevel(logrus.TraceLevel)
	case cfg.verbose:
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.WithError(err).Fatal("pipemaze failed")
	}
}

// loopOptions installs the per-step trace hook only when -trace is set.
func loopOptions(cfg config) []loop.Option {
	if !cfg.trace || !log.IsLevelEnabled(logrus.TraceLevel) {
		return nil
	}
	return []loop.Option{loop.WithOnStep(func(step int, cursors ...grid.Position) {
		log.WithFields(logrus.Fields{
			"step":    step,
			"cursors": cursors,
		}).Trace("step")
	})}
}

func run(cfg config, out io.Writer) error {
	text, source, err := readInput(cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"source": source,
		"bytes":  len(text),
	}).Debug("input loaded")

	opts := []pipemaze.Option{pipemaze.WithLoopOptions(loopOptions(cfg)...)}
	if cfg.check {
		opts = append(opts, pipemaze.WithDistanceCheck())
	}

	r, err := pipemaze.Solve(text, opts...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", source, err)
	}
	log.WithFields(logrus.Fields{
		"start":      r.Maze.Start(),
		"exits":      r.Start.Exits,
		"startTile":  r.Start.Tile,
		"loopLength": r.LoopLength,
		"area":       r.Area,
	}).Debug("loop traced")

	if cfg.draw {
		glyphs := grid.ASCII
		if cfg.box {
			glyphs = grid.Box
		}
		drawing, err := render.Colorize(r.Maze, r.Classified, render.WithGlyphs(glyphs))
		if err != nil {
			return err
		}
		fmt.Fprint(out, drawing)
	}

	fmt.Fprintf(out, "farthest: %d\n", r.Farthest)
	fmt.Fprintf(out, "enclosed: %d\n", r.Interior)
	return nil
}

// readInput returns the puzzle text and a name for where it came from.
func readInput(cfg config) (string, string, error) {
	switch {
	case cfg.sample != "" && cfg.input != "":
		return "", "", errors.New("use either -input or -sample, not both")
	case cfg.sample != "":
		s, ok := samples.All[cfg.sample]
		if !ok {
			return "", "", fmt.Errorf("unknown sample %q (have %s)", cfg.sample, strings.Join(samples.Names(), ", "))
		}
		return s.Text, "sample " + s.Name, nil
	case cfg.input != "":
		b, err := os.ReadFile(cfg.input)
		if err != nil {
			return "", "", fmt.Errorf("failed to read puzzle: %w", err)
		}
		return string(b), cfg.input, nil
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), "stdin", nil
	}
}
