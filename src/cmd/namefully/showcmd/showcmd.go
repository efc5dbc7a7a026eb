package showcmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/cli"
	"namefully/src/internal/namefully"
	"namefully/src/internal/stringsx"
)

// New returns the show command, which prints every derived view of a name.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name...>",
		Short: "Show the full, birth, short, public and other views of a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cli.ParseName(cmd, args)
			if err != nil {
				return err
			}
			renderTable(cmd.OutOrStdout(), []string{"view", "value"}, Rows(n))
			return nil
		},
	}
}

// Rows lists the views shown by the command.
func Rows(n *namefully.Namefully) [][]string {
	official, _ := n.Format("official")
	return [][]string{
		{"full", n.Full()},
		{"birth", n.Birth()},
		{"prefix", n.Prefix()},
		{"first", n.FirstName(true)},
		{"middle", strings.Join(n.MiddleName(), " ")},
		{"last", n.Last()},
		{"suffix", n.Suffix()},
		{"short", n.Short()},
		{"public", n.Public()},
		{"salutation", n.Salutation()},
		{"official", official},
		{"initials", strings.Join(n.Initials(namefully.InitialsOptions{}), " ")},
		{"length", fmt.Sprint(n.Len())},
	}
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := computeColWidths(headers, rows)
	writeColumns(w, headers, widths)
	writeSeparator(w, widths)
	for _, r := range rows {
		writeColumns(w, r, widths)
	}
}

func computeColWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = stringsx.Len(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) && stringsx.Len(r[i]) > widths[i] {
				widths[i] = stringsx.Len(r[i])
			}
		}
	}
	return widths
}

func writeSeparator(w io.Writer, widths []int) {
	cols := make([]string, len(widths))
	for i, width := range widths {
		cols[i] = strings.Repeat("-", width)
	}
	writeColumns(w, cols, widths)
}

func writeColumns(w io.Writer, cols []string, widths []int) {
	vals := make([]string, len(widths))
	for i, width := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		if i == len(widths)-1 {
			vals[i] = val
			continue
		}
		vals[i] = fmt.Sprintf("%-*s", width, val)
	}
	_, _ = fmt.Fprintln(w, strings.Join(vals, "  "))
}
