// Package cli holds what every namefully subcommand shares: the persistent
// flags, the logger and turning command-line words into a name.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"namefully/src/internal/config"
	"namefully/src/internal/namefully"
	"namefully/src/internal/settings"
)

const (
	FlagVerbose = "verbose"
	FlagGuess   = "guess"
)

// RegisterFlags adds the persistent flags to the root command.
func RegisterFlags(root *cobra.Command) {
	fs := root.PersistentFlags()
	settings.RegisterFlags(fs)
	fs.BoolP(FlagVerbose, "v", false, "log configuration events to stderr")
	fs.Bool(FlagGuess, false, "guess roles from free text instead of the configured order")
}

func boolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	return err == nil && v
}

// Logger writes to the command's stderr, at debug level with --verbose.
func Logger(cmd *cobra.Command) *log.Logger {
	l := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "namefully"})
	l.SetLevel(log.WarnLevel)
	if boolFlag(cmd, FlagVerbose) {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Options resolves the layered settings into construction options bound to
// a fresh registry.
func Options(cmd *cobra.Command) ([]namefully.Option, *log.Logger, error) {
	logger := Logger(cmd)
	o, err := settings.Settings{Flags: cmd.Flags()}.Load()
	if err != nil {
		return nil, logger, err
	}
	reg := config.NewRegistry(config.WithLogger(logger))
	return []namefully.Option{namefully.WithRegistry(reg), namefully.WithOptions(o)}, logger, nil
}

// ParseName builds a name from args. Each arg is split on spaces, so quoting
// is optional. One word is a mononym; with --guess free text goes through
// the best-effort parser; otherwise the words are read in the configured
// order and separator.
func ParseName(cmd *cobra.Command, args []string) (*namefully.Namefully, error) {
	opts, logger, err := Options(cmd)
	if err != nil {
		return nil, err
	}
	text := strings.Join(strings.Fields(strings.Join(args, " ")), " ")
	if text == "" {
		return nil, fmt.Errorf("a name is required")
	}
	var n *namefully.Namefully
	switch {
	case boolFlag(cmd, FlagGuess):
		n, err = namefully.Parse(text, nil, opts...)
	case len(strings.Fields(text)) == 1 && !strings.ContainsAny(text, ",:;_-.'\""):
		n, err = namefully.FromMononym(text, "", opts...)
	default:
		n, err = namefully.FromString(text, opts...)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("name parsed", "input", text, "config", n.Config().Name(), "order", n.Config().OrderedBy())
	return n, nil
}
