package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mackrabeau/chess-engine/internal/console"
	"github.com/mackrabeau/chess-engine/pkg/engine"
)

var (
	hashMB = flag.Uint64("hash", 64, "Transposition table size in MB")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: engine [options]

engine is a single-threaded console chess engine. Commands: reset, position,
print, move <uci>, state, eval, best [timeLimitMs], quit.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "engine", "mackrabeau", engine.Options{
		HashSizeBytes: *hashMB << 20,
	})

	in := engine.ReadStdinLines(ctx)
	out := console.NewDriver(ctx, e, in)
	engine.WriteStdoutLines(ctx, out)
}
