// Command pathsearch runs graph search over a state space described in YAML.
//
// Usage:
//
//	pathsearch run --file space.yaml --algo ucs
//	pathsearch run -f space.yaml -a astar --use-heuristic --show-states
//	pathsearch version
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-hclog"
)

// CLI defines the command-line interface.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Search a state space file and print the action sequence."`
	Version VersionCmd `cmd:"" help:"Show version information."`

	LogLevel string `help:"Log level (trace, debug, info, warn, error)." default:"info" enum:"trace,debug,info,warn,error" env:"PATHSEARCH_LOG_LEVEL"`
	LogJSON  bool   `name:"log-json" help:"Emit logs as JSON." env:"PATHSEARCH_LOG_JSON"`
}

// appEnv carries process-wide dependencies into command Run methods.
type appEnv struct {
	log hclog.Logger
	out io.Writer
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(env *appEnv) error {
	version := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}
	}
	_, err := fmt.Fprintf(env.out, "pathsearch version %s\n", version)

	return err
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pathsearch"),
		kong.Description("Depth-first, breadth-first, uniform-cost and A* search over YAML state spaces."),
		kong.UsageOnError(),
	)

	env := &appEnv{
		log: newLogger(cli.LogLevel, cli.LogJSON, os.Stderr),
		out: os.Stdout,
	}
	ctx.FatalIfErrorf(ctx.Run(env))
}

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(level string, json bool, w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "pathsearch",
		Level:      lvl,
		Output:     w,
		JSONFormat: json,
	})
}
