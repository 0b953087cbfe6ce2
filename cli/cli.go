package cli

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/json2kdl/kdl"
	"github.com/ardnew/json2kdl/pkg"
)

// Base names of the configuration files in [pkg.ConfigDir].
const (
	configJSON = "config.json"
	configYAML = "config.yaml"
)

// CLI is the top-level command-line interface for json2kdl.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Init    Init    `cmd:"" help:"Write a configuration file with the current settings."`
	Convert Convert `cmd:"" default:"withargs" help:"Convert a JSON node document to KDL."`
}

// Run executes the json2kdl CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, &streams{in: os.Stdin, out: os.Stdout}, exit, args...)
}

func run(
	ctx context.Context,
	std *streams,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		"version": pkg.Version,
		"config":  pkg.ConfigPath(configYAML),
		"indent":  strconv.Itoa(kdl.DefaultIndent),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that the logger is configured before
	// parsing, regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(std.out, stderr(std)),
		kong.ExplicitGroups(
			append([]kong.Group{cli.Log.group()}, cli.Pprof.groups()...),
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.Bind(std),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, pkg.ConfigPath(configJSON)),
		kong.Configuration(resolveYAML, pkg.ConfigPath(configYAML)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}

// stderr returns the writer for usage errors: os.Stderr unless the streams
// are redirected.
func stderr(std *streams) io.Writer {
	if std.out == os.Stdout {
		return os.Stderr
	}

	return std.out
}
