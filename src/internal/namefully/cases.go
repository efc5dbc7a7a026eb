package namefully

import (
	"strings"

	"namefully/src/internal/stringsx"
)

// Split breaks the birth name into words on spaces, hyphens and apostrophes.
func (n *Namefully) Split() []string {
	return strings.FieldsFunc(n.Birth(), func(r rune) bool {
		return r == ' ' || r == '-' || r == '\''
	})
}

// Join glues the words of Split with sep.
func (n *Namefully) Join(sep string) string { return strings.Join(n.Split(), sep) }

func (n *Namefully) ToUpper() string  { return stringsx.Upper(n.Birth()) }
func (n *Namefully) ToLower() string  { return stringsx.Lower(n.Birth()) }
func (n *Namefully) ToToggle() string { return stringsx.Toggle(n.Birth()) }

func (n *Namefully) ToPascal() string {
	var b strings.Builder
	for _, w := range n.Split() {
		b.WriteString(stringsx.Capitalize(w))
	}
	return b.String()
}

func (n *Namefully) ToCamel() string { return stringsx.Decapitalize(n.ToPascal()) }

func (n *Namefully) ToSnake() string  { return n.lowerJoin("_") }
func (n *Namefully) ToHyphen() string { return n.lowerJoin("-") }
func (n *Namefully) ToDot() string    { return n.lowerJoin(".") }

func (n *Namefully) lowerJoin(sep string) string {
	words := n.Split()
	for i, w := range words {
		words[i] = stringsx.Lower(w)
	}
	return strings.Join(words, sep)
}
