package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/remindex/internal/locate"
	"github.com/roach88/remindex/internal/resolve"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
	Container string
	StoreFile string
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the external-identifier → section-name mapping",
		Long: `Resolve every reminder that carries an external calendar-item
identifier to the display name of its containing section.

The command never fails on store trouble: an unlocatable, locked, or
unreadable store produces an empty mapping and exit code 0.

Examples:
  remindex resolve
  remindex resolve --format json
  remindex resolve --container ~/Library/.../Stores
  remindex resolve --db ./Data-snapshot.sqlite`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Container, "container", "", "store container directory (default: Reminders group container)")
	cmd.Flags().StringVar(&opts.StoreFile, "db", "", "exact store file, bypassing the locator")

	return cmd
}

func runResolve(opts *ResolveOptions, cmd *cobra.Command) error {
	container := opts.Container
	if container == "" {
		container = opts.Config.Container
	}
	if opts.StoreFile != "" {
		opts.Logger.Debug("resolving from pinned store", "db", opts.StoreFile)
	} else {
		dir := container
		if dir == "" {
			dir = locate.DefaultContainer()
		}
		opts.Logger.Debug("resolving from container", "dir", dir, "busy_timeout", opts.BusyTimeout())
	}

	mapping := resolve.ExternalSectionsWith(resolve.Options{
		Container:   container,
		StoreFile:   opts.StoreFile,
		BusyTimeout: opts.BusyTimeout(),
	})
	opts.Logger.Debug("resolved mapping", "entries", len(mapping))

	return writeMapping(cmd, opts.Format, mapping)
}

// writeMapping renders an identifier→name map in the selected format.
// Text output is one tab-separated pair per line, sorted by identifier.
func writeMapping(cmd *cobra.Command, format string, mapping map[string]string) error {
	w := cmd.OutOrStdout()

	switch format {
	case "json":
		return writeJSON(w, mapping)
	case "yaml":
		return writeYAML(w, mapping)
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, mapping[k])
	}
	return nil
}
