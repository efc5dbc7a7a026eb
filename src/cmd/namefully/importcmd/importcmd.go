package importcmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/cli"
	"namefully/src/internal/namefully"
	"namefully/src/internal/schema"
)

// New returns the import command, which reads a serialized name and renders it.
func New() *cobra.Command {
	var format, pattern string
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Read a serialized name (JSON, YAML or TOML) and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := read(cmd, args[0])
			if err != nil {
				return err
			}
			f, err := formatOf(format, args[0])
			if err != nil {
				return err
			}
			snap, err := schema.DecodeFormat(data, f)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			opts, logger, err := cli.Options(cmd)
			if err != nil {
				return err
			}
			n, err := namefully.Deserialize(snap, opts...)
			if err != nil {
				return err
			}
			logger.Debug("name imported", "source", args[0], "config", n.Config().Name())
			out := n.Full()
			if pattern != "" {
				if out, err = n.Format(pattern); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format (default from the file extension, else json/yaml)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "format pattern used to print the name (default: full name)")
	return cmd
}

func read(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func formatOf(flag, path string) (schema.Format, error) {
	if flag != "" {
		return schema.ParseFormat(flag)
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if f, err := schema.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	return schema.JSON, nil
}
