package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/roach88/remindex/internal/config"
)

// RootOptions holds global flags and resolved config for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigPath string // explicit config file; empty means the default location

	Config config.Config
	Logger *log.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// BusyTimeout returns the configured busy-wait bound.
func (o *RootOptions) BusyTimeout() time.Duration {
	return time.Duration(o.Config.BusyTimeoutMS) * time.Millisecond
}

// NewRootCommand creates the root command for the remindex CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		Logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "remindex",
		}),
	}

	cmd := &cobra.Command{
		Use:   "remindex",
		Short: "Map external reminder identifiers to Reminders section names",
		Long: `remindex reads the Reminders app's private backing store and derives
the mapping from external calendar-item identifiers to the display
name of the section each reminder sits in.

The store is opened strictly read-only and every lookup is
best-effort: a missing store, a locked file, or an unrecognized
schema yields an empty result, never a crash.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			opts.Config = cfg

			// The config's format applies only when the flag was not
			// given explicitly.
			if !cmd.Flags().Changed("format") {
				opts.Format = cfg.Format
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			if opts.Verbose {
				opts.Logger.SetLevel(log.DebugLevel)
			} else {
				opts.Logger.SetLevel(log.WarnLevel)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")

	// Add subcommands
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewLocateCommand(opts))
	cmd.AddCommand(NewSectionsCommand(opts))

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
