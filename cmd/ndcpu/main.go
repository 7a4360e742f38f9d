// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ezrec/ndcpu/config"
	"github.com/ezrec/ndcpu/machine"
	"github.com/ezrec/ndcpu/script"
	"github.com/ezrec/ndcpu/translate"
)

var f = translate.From

var errNotTerminal = errors.New(f("interactive mode needs a terminal"))

var (
	configPath  string
	bitcount    uint
	quiet       bool
	verbose     bool
	scriptPath  string
	interactive bool

	rootCmd = &cobra.Command{
		Use:   "ndcpu",
		Short: f("The first nondeterministic 1 bit CPU"),
		Long: f(`ndcpu simulates a 1 bit CPU whose stack holds every possible
configuration at once. Commands are read one per line from standard input,
and the active configurations are printed after each one.`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", f("YAML configuration file"))
	flags.UintVarP(&bitcount, "bitcount", "b", machine.DEFAULT_WIDTH, f("Stack size in bits"))
	flags.BoolVarP(&quiet, "quiet", "q", false, f("Don't print anything but the output"))
	flags.BoolVarP(&verbose, "verbose", "v", false, f("Log every transition to stderr"))
	flags.StringVarP(&scriptPath, "script", "s", "", f("Starlark program to run instead of reading commands"))
	flags.BoolVarP(&interactive, "interactive", "i", false, f("Interactive terminal UI"))
}

// loadConfig merges the configuration file, environment and flags.
func loadConfig(cmd *cobra.Command) (cfg config.Config, err error) {
	cfg, err = config.Load(configPath)
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("bitcount") {
		cfg.Width = bitcount
	}
	if flags.Changed("quiet") {
		cfg.Quiet = quiet
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("script") {
		cfg.Script = scriptPath
	}
	if flags.Changed("interactive") {
		cfg.Interactive = interactive
	}

	err = cfg.Validate()
	return
}

// newLogger returns the session logger. Verbose sessions log to stderr,
// except in interactive mode where the terminal UI owns the screen.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if !cfg.Verbose || cfg.Interactive {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

func run(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return
	}
	defer logger.Sync()

	m, err := machine.NewMachine(cfg.Width)
	if err != nil {
		return
	}

	m.Quiet = cfg.Quiet
	m.Verbose = cfg.Verbose
	m.Logger = logger
	m.Output = cmd.OutOrStdout()

	logger.Debug("session",
		zap.Uint("width", cfg.Width),
		zap.Bool("quiet", cfg.Quiet),
		zap.String("script", cfg.Script),
		zap.Bool("interactive", cfg.Interactive),
	)

	if cfg.Interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			err = errNotTerminal
			return
		}
		return runInteractive(m)
	}

	if len(cfg.Script) != 0 {
		return script.Run(m, cfg.Script, nil)
	}

	err = m.WritePreamble()
	if err != nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = m.Run(ctx, cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	return
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
