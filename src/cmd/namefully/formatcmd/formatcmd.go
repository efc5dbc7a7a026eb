package formatcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/cli"
)

// New returns the format command, which renders a name from a pattern.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "format <pattern> <name...>",
		Short: "Render a name from a pattern (short, long, public, official or b f l m o p s, $ for initials)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cli.ParseName(cmd, args[1:])
			if err != nil {
				return err
			}
			out, err := n.Format(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
