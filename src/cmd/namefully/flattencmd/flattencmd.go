package flattencmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/cli"
	"namefully/src/internal/config"
	"namefully/src/internal/namefully"
)

// New returns the flatten command, which shortens a name to initials.
func New() *cobra.Command {
	o := namefully.DefaultFlatten()
	var by, surname string
	var noPeriod, zip bool
	cmd := &cobra.Command{
		Use:   "flatten <name...>",
		Short: "Shorten a name by reducing roles to initials",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cli.ParseName(cmd, args)
			if err != nil {
				return err
			}
			flat, err := namefully.ParseFlat(by)
			if err != nil {
				return err
			}
			o.By = flat
			o.WithPeriod = !noPeriod
			if surname != "" {
				if o.Surname, err = config.ParseSurname(surname); err != nil {
					return err
				}
			}
			out := n.Flatten(o)
			if zip {
				if !cmd.Flags().Changed("by") {
					flat = ""
				}
				out = n.Zip(flat, o.WithPeriod)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVarP(&o.Limit, "limit", "l", o.Limit, "flatten only names longer than this")
	cmd.Flags().StringVar(&by, "by", string(o.By), "roles to reduce: firstName, middleName, lastName, firstMid, midLast or all (--zip defaults to midLast)")
	cmd.Flags().BoolVarP(&o.Recursive, "recursive", "r", false, "try shorter variants until the name fits")
	cmd.Flags().BoolVar(&o.WithMore, "with-more", false, "keep extra given names")
	cmd.Flags().StringVar(&surname, "as-surname", "", "surname style for the last name")
	cmd.Flags().BoolVar(&noPeriod, "no-period", false, "omit periods after initials")
	cmd.Flags().BoolVar(&zip, "zip", false, "flatten regardless of length")
	return cmd
}
