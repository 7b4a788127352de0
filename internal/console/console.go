// Package console implements a line-oriented debugging driver over an engine.Engine.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mackrabeau/chess-engine/pkg/engine"
	"github.com/seekerror/logw"
)

// Driver reads commands from in and writes responses to out until in is closed or a "quit"
// command is received.
type Driver struct {
	e   *engine.Engine
	out chan<- string
}

// NewDriver starts processing in asynchronously and returns the response channel, closed when
// the driver exits.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) <-chan string {
	out := make(chan string, 100)
	d := &Driver{e: e, out: out}
	go d.process(ctx, in)
	return out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")
	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printPosition()

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "reset", "r":
			if err := d.e.Reset(ctx); err != nil {
				d.out <- fmt.Sprintf("reset failed: %v", err)
				break
			}
			d.printPosition()

		case "position", "pos":
			d.out <- d.e.Position()

		case "print", "p":
			d.printPosition()

		case "move", "m":
			if len(args) == 0 {
				d.out <- "move requires a UCI move argument"
				break
			}
			if err := d.e.Move(ctx, args[0]); err != nil {
				d.out <- err.Error()
				break
			}
			d.out <- d.e.Position()

		case "state", "s":
			d.out <- d.e.State().String()

		case "eval", "e":
			d.out <- fmt.Sprintf("%v", d.e.Eval(ctx))

		case "best", "b", "go":
			limit := 0
			if len(args) > 0 {
				limit, _ = strconv.Atoi(args[0])
			}
			move, ok := d.e.Best(ctx, limit)
			if !ok {
				// No move to report: the position is terminal, so answer with its state name.
				d.out <- d.e.State().String()
				break
			}
			d.out <- move

		case "quit", "exit", "q":
			logw.Infof(ctx, "Driver closed")
			return

		default:
			d.out <- fmt.Sprintf("unrecognized command: %q", cmd)
		}
	}
	logw.Infof(ctx, "Input stream broken. Exiting")
}

func (d *Driver) printPosition() {
	d.out <- d.e.Print()
}
