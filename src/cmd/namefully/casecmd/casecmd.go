package casecmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/cli"
	"namefully/src/internal/namefully"
)

var styles = map[string]func(*namefully.Namefully) string{
	"upper":  (*namefully.Namefully).ToUpper,
	"lower":  (*namefully.Namefully).ToLower,
	"camel":  (*namefully.Namefully).ToCamel,
	"pascal": (*namefully.Namefully).ToPascal,
	"snake":  (*namefully.Namefully).ToSnake,
	"hyphen": (*namefully.Namefully).ToHyphen,
	"dot":    (*namefully.Namefully).ToDot,
	"toggle": (*namefully.Namefully).ToToggle,
}

// Styles lists the accepted case styles.
func Styles() []string {
	out := make([]string, 0, len(styles))
	for k := range styles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New returns the case command, which re-cases the birth name.
func New() *cobra.Command {
	return &cobra.Command{
		Use:       "case <style> <name...>",
		Short:     "Print the birth name in a case style: " + strings.Join(Styles(), ", "),
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: Styles(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := styles[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown case style %q (want one of %s)", args[0], strings.Join(Styles(), ", "))
			}
			n, err := cli.ParseName(cmd, args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fn(n))
			return err
		},
	}
}
