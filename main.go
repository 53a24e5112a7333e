package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sergev/brise/internal/config"
	"github.com/sergev/brise/internal/dump"
	"github.com/sergev/brise/internal/logs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the state shared by every brise command once the
// configuration has been loaded.
type app struct {
	cfgFile  string
	format   string
	showIDs  bool
	noColor  bool
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	ctx    context.Context
	styles styles
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{styles: newStyles(stderr, false)}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if a.closer != nil {
		a.closer.Close()
	}
	if err != nil {
		a.report(stderr, err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "brise",
		Short: "Front end of the brise language",
		Long: `brise lexes and parses brise expressions.

Commands:
  tokens  - print the token stream of a source
  parse   - parse one expression and print its tree
  repl    - read expressions interactively (default)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $BRISE_CONFIG or ./brise.toml)")
	flags.StringVarP(&a.format, "format", "f", "", "output format: sexpr, yaml or json")
	flags.BoolVar(&a.showIDs, "ids", false, "show number literal identities")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured diagnostics")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(a.tokensCmd(), a.parseCmd(), a.replCmd())
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		a.cfg.Output.Format = a.format
	}
	if flags.Changed("ids") {
		a.cfg.Output.ShowIDs = a.showIDs
	}
	if flags.Changed("no-color") {
		a.cfg.Output.Color = !a.noColor
	}
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.styles = newStyles(cmd.ErrOrStderr(), a.cfg.Output.Color)

	logger, closer, err := logs.New(a.cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.ctx, _ = logs.NewSession(cmd.Context())
	a.logger = logger.With("command", cmd.Name())
	a.closer = closer
	a.logger.DebugContext(a.ctx, "configured", "format", a.cfg.Output.Format, "log", a.cfg.Log.Level)
	return nil
}

func (a *app) outputFormat() dump.Format {
	f, err := dump.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return dump.Sexpr
	}
	return f
}

func (a *app) report(w io.Writer, err error) {
	for _, line := range diagnostics(err) {
		fmt.Fprintf(w, "%s %s\n", a.styles.errorTag.Render("error:"), line)
	}
}
