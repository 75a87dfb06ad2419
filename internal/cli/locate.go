package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/remindex/internal/locate"
)

// LocateOptions holds flags for the locate command.
type LocateOptions struct {
	*RootOptions
	Container string
}

// NewLocateCommand creates the locate command.
func NewLocateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LocateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the store file the resolver would use",
		Long: `Select the backing store file the way the resolver does: newest
readable Data-*.sqlite in the container, falling back to the newest
readable *.sqlite. Exits with code 2 when no candidate qualifies.

Examples:
  remindex locate
  remindex locate --container ./testdata/stores --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Container, "container", "", "store container directory (default: Reminders group container)")

	return cmd
}

func runLocate(opts *LocateOptions, cmd *cobra.Command) error {
	dir := opts.Container
	if dir == "" {
		dir = opts.Config.Container
	}
	if dir == "" {
		dir = locate.DefaultContainer()
	}
	opts.Logger.Debug("scanning container", "dir", dir)

	path, ok := locate.StoreFile(dir)
	if !ok {
		if opts.Format == "json" {
			if err := writeJSONError(cmd.OutOrStdout(), "no_store", "no store file found"); err != nil {
				return err
			}
		}
		return NewExitError(ExitCommandError, fmt.Sprintf("no store file found in %s", dir))
	}

	switch opts.Format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), map[string]string{"store": path})
	case "yaml":
		return writeYAML(cmd.OutOrStdout(), map[string]string{"store": path})
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
