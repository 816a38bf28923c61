package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds the flags shared by the command surface.
type RootOptions struct {
	Config  string // path to the config file ("" = resolve via env/default)
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the pick CLI.
//
// The root command is the pick itself: `pick <category>` runs one
// invocation against the named category and saves the config when a
// choice is accepted.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pick <category>",
		Short: "Pick an item from a category of choices",
		Long: `Pick helps you choose an item from a configured category, using the
category's selection model: even, weighted, gaussian, lottery,
inventory, or lru.

Each candidate is offered with an Accept? (Y/n) prompt. Enter or y
accepts, anything else declines it for this run, and q (or ctrl-d)
gives up without changing anything. Accepted picks update the
category's state in the config file.

The config file is found via --config, the PICK_CONFIG environment
variable, or pick/pick.yml in your user config directory.

Example:
  pick restaurants
  pick --verbose albums
  pick -c ./pick.yml --format json chores`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(opts, args[0], cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "path to the config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "show chance tables and debug logs")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	return cmd
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
