// Command snorkel-run authors a grid from flags, evaluates it for a number of
// frames and prints every frame as text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"snorkel/internal/app"
	"snorkel/internal/core"
	"snorkel/internal/editor"
	"snorkel/internal/render"
	"snorkel/internal/ui"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ";")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// placement is a run of characters written rightwards from At.
type placement struct {
	At   core.Coord
	Text string
}

// parsePlacement reads "x,y=TEXT".
func parsePlacement(s string) (placement, error) {
	pos, text, ok := strings.Cut(s, "=")
	if !ok || text == "" {
		return placement{}, fmt.Errorf("placement %q: want x,y=TEXT", s)
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return placement{}, fmt.Errorf("placement %q: want x,y=TEXT", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return placement{}, fmt.Errorf("placement %q: bad y: %w", s, err)
	}
	return placement{At: core.Coord{X: x, Y: y}, Text: text}, nil
}

// author types every placement into the session. '.' leaves a cell
// untouched.
func author(s *editor.Session, places []placement) error {
	for _, p := range places {
		cur := s.Cursor()
		s.Move(p.At.X-cur.X, p.At.Y-cur.Y)
		if s.Cursor() != p.At {
			return fmt.Errorf("placement at %d,%d is outside the grid", p.At.X, p.At.Y)
		}
		for _, r := range p.Text {
			if r != '.' && !s.Insert(r) {
				return fmt.Errorf("placement at %d,%d: %q is not an operator", p.At.X, p.At.Y, r)
			}
			s.Move(1, 0)
		}
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("snorkel-run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	ticks := fs.Int("ticks", 8, "number of frames to evaluate")
	finalOnly := fs.Bool("final", false, "print only the last frame")
	var sets kvList
	fs.Var(&sets, "set", "cells in x,y=TEXT form, written rightwards (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.LoadFile(fs); err != nil {
		return err
	}
	log, err := app.NewLogger(cfg.LogLevel, cfg.LogFormat, cfg.Sim, stderr)
	if err != nil {
		return err
	}

	places := make([]placement, 0, len(sets))
	for _, s := range sets {
		p, err := parsePlacement(s)
		if err != nil {
			return err
		}
		places = append(places, p)
	}

	grid, err := cfg.NewGrid()
	if err != nil {
		return err
	}
	session := editor.New(grid)
	session.SetLogger(log)
	if err := author(session, places); err != nil {
		return err
	}
	log.Debug("grid authored", "placements", len(places), "rows", grid.Rows(), "cols", grid.Cols())

	for i := 0; i < *ticks; i++ {
		session.NextFrame()
		if *finalOnly && i < *ticks-1 {
			continue
		}
		fmt.Fprintf(stdout, "frame %d\n%s\n", grid.Frame(), render.Text(grid, cfg.Empty))
	}
	fmt.Fprintln(stdout, ui.StatusLine(grid.Parameters(), session.Cursor(), false))
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "snorkel-run:", err)
		os.Exit(1)
	}
}
