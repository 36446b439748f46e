// Package main provides the tahaos CLI: the portfolio desktop's terminal
// app as an interactive shell, plus one-shot and scripted modes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tahaos/internal/config"
	"tahaos/internal/logger"
	"tahaos/pkg/desktop"
)

var version = "1.0.0"

// app carries the state shared by subcommands once configuration is loaded.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "tahaos",
		Short: "TahaOS - a portfolio desktop in your terminal",
		Long: `TahaOS is a desktop-metaphor portfolio. Its terminal app answers
commands like help, projects and neofetch; windows can be driven from
replay scripts.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		RunE:              a.runTerm,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default ./tahaos.yaml if present)")
	flags.StringVar(&a.envFile, "env-file", "", "Env file to load (default ./.env if present)")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.String(config.KeyTheme, "", "Theme (dark|light)")
	flags.String(config.KeyLanguage, "", "Language (en|fr)")
	flags.Int("screen-width", 0, "Viewport width used for window placement")
	flags.Int("screen-height", 0, "Viewport height used for window placement")
	flags.Bool(config.KeySkipBoot, false, "Skip the boot sequence")

	bindings := map[string]string{
		config.KeyLogLevel:     config.KeyLogLevel,
		config.KeyLogFile:      config.KeyLogFile,
		config.KeyTheme:        config.KeyTheme,
		config.KeyLanguage:     config.KeyLanguage,
		config.KeyScreenWidth:  "screen-width",
		config.KeyScreenHeight: "screen-height",
		config.KeySkipBoot:     config.KeySkipBoot,
	}
	for key, flag := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "term",
			Short: "Start the interactive terminal",
			Args:  cobra.NoArgs,
			RunE:  a.runTerm,
		},
		&cobra.Command{
			Use:   "exec <command...>",
			Short: "Run one terminal command and print its output",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.runExec,
		},
		newReplayCmd(a),
		&cobra.Command{
			Use:   "apps",
			Short: "List the installed applications",
			Args:  cobra.NoArgs,
			RunE:  a.runApps,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				cmd.Printf("TahaOS v%s\n", version)
			},
		},
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	_ = logger.Close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// load resolves configuration and configures logging before any command.
func (a *app) load(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.envFile, a.configFile)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	a.cfg = cfg
	return nil
}

// newDesktop starts a session from the loaded configuration.
func (a *app) newDesktop(skipBoot bool) *desktop.Desktop {
	return desktop.New(desktop.Options{
		ScreenWidth:  a.cfg.ScreenWidth,
		ScreenHeight: a.cfg.ScreenHeight,
		Settings:     a.cfg.Settings,
		SkipBoot:     skipBoot || a.cfg.SkipBoot,
		Logger:       logger.NewStyledLogger("tahaos"),
	})
}
