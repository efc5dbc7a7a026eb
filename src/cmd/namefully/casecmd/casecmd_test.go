package casecmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"namefully/src/cmd/namefully/cli"
)

func execute(args ...string) (string, error) {
	root := &cobra.Command{Use: "namefully", SilenceUsage: true, SilenceErrors: true}
	cli.RegisterFlags(root)
	root.AddCommand(New())
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs(append([]string{"case"}, args...))
	err := root.Execute()
	return strings.TrimSpace(buf.String()), err
}

func TestCaseStyles(t *testing.T) {
	want := map[string]string{
		"upper":  "JOHN BEN SMITH",
		"lower":  "john ben smith",
		"camel":  "johnBenSmith",
		"pascal": "JohnBenSmith",
		"snake":  "john_ben_smith",
		"hyphen": "john-ben-smith",
		"dot":    "john.ben.smith",
		"toggle": "jOHN bEN sMITH",
	}
	for style, w := range want {
		got, err := execute(style, "John", "Ben", "Smith")
		if err != nil {
			t.Fatalf("%s: %v", style, err)
		}
		if got != w {
			t.Fatalf("%s: got %q want %q", style, got, w)
		}
	}
}

func TestCaseUnknownStyle(t *testing.T) {
	if _, err := execute("shout", "John", "Smith"); err == nil {
		t.Fatalf("expected error")
	}
}
