package exportcmd

import (
	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/cli"
	"namefully/src/internal/schema"
)

// New returns the export command, which prints the serialized form of a name.
func New() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <name...>",
		Short: "Print a name and its configuration as JSON, YAML or TOML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.ParseFormat(format)
			if err != nil {
				return err
			}
			n, err := cli.ParseName(cmd, args)
			if err != nil {
				return err
			}
			b, err := n.Serialize().Encode(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(schema.JSON), "output format: json, yaml or toml")
	return cmd
}
