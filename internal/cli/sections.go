package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/remindex/internal/locate"
	"github.com/roach88/remindex/internal/store"
)

// SectionsOptions holds flags for the sections command.
type SectionsOptions struct {
	*RootOptions
	Container string
	StoreFile string
}

// NewSectionsCommand creates the sections command.
func NewSectionsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SectionsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Print the section catalog of the selected store",
		Long: `Dump the raw section catalog — CK identifier and display name —
from the store the locator selects. Useful for checking what the
resolver would join against.

Examples:
  remindex sections
  remindex sections --db ./Data-snapshot.sqlite --format yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Container, "container", "", "store container directory (default: Reminders group container)")
	cmd.Flags().StringVar(&opts.StoreFile, "db", "", "exact store file, bypassing the locator")

	return cmd
}

func runSections(opts *SectionsOptions, cmd *cobra.Command) error {
	path := opts.StoreFile
	if path == "" {
		dir := opts.Container
		if dir == "" {
			dir = opts.Config.Container
		}
		if dir == "" {
			dir = locate.DefaultContainer()
		}
		var ok bool
		if path, ok = locate.StoreFile(dir); !ok {
			return NewExitError(ExitCommandError, "no store file found in "+dir)
		}
	}
	opts.Logger.Debug("reading sections", "db", path)

	s, err := store.OpenTimeout(path, opts.BusyTimeout())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open store", err)
	}
	defer s.Close()

	sections := s.Sections(context.Background())
	opts.Logger.Debug("read section catalog", "entries", len(sections))

	return writeMapping(cmd, opts.Format, sections)
}
