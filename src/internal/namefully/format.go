package namefully

import (
	"fmt"
	"strings"

	"namefully/src/internal/nameerr"
	"namefully/src/internal/stringsx"
)

// allowedTokens are the characters a format pattern may contain.
const allowedTokens = ".,_- bBfFlLmMoOpPsS$"

// Format renders n from a pattern. The keywords short, long, public and
// official select the matching view. Otherwise each character maps to a
// piece of the name:
//
//	b B  birth name (B upper-cased)
//	f F  first name with any extra given names
//	l L  last name
//	m M  middle names
//	o O  official form: prefix, LAST, first and middle names, suffix
//	p P  prefix
//	s S  suffix
//	$x   first letter of f, F, l, L, m or M
//
// and ".,_- " are copied as is. Any other character is a NotAllowedError.
func (n *Namefully) Format(pattern string) (string, error) {
	switch pattern {
	case "short":
		return n.Short(), nil
	case "long":
		return n.Long(), nil
	case "public":
		return n.Public(), nil
	case "official":
		pattern = "o"
	}
	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		if !strings.ContainsRune(allowedTokens, r) {
			return "", nameerr.NotAllowed(n.Full(), "format",
				fmt.Sprintf("unsupported character <%c> from %s", r, pattern))
		}
		if r == '$' {
			escaped = true
			continue
		}
		if escaped {
			b.WriteString(n.initialToken(r))
			escaped = false
			continue
		}
		b.WriteString(n.token(r))
	}
	return strings.TrimSpace(b.String()), nil
}

func (n *Namefully) token(r rune) string {
	switch r {
	case '.', ',', ' ', '-', '_':
		return string(r)
	case 'b':
		return n.Birth()
	case 'B':
		return stringsx.Upper(n.Birth())
	case 'f':
		return n.FirstName(true)
	case 'F':
		return stringsx.Upper(n.FirstName(true))
	case 'l':
		return n.Last()
	case 'L':
		return stringsx.Upper(n.Last())
	case 'm':
		return strings.Join(n.MiddleName(), " ")
	case 'M':
		return stringsx.Upper(strings.Join(n.MiddleName(), " "))
	case 'o':
		return n.official()
	case 'O':
		return stringsx.Upper(n.official())
	case 'p':
		return n.Prefix()
	case 'P':
		return stringsx.Upper(n.Prefix())
	case 's':
		return n.Suffix()
	case 'S':
		return stringsx.Upper(n.Suffix())
	}
	return ""
}

func (n *Namefully) initialToken(r rune) string {
	switch r {
	case 'f', 'F':
		return stringsx.FirstRune(n.First())
	case 'l', 'L':
		return stringsx.FirstRune(n.Last())
	case 'm', 'M':
		return stringsx.FirstRune(n.Middle())
	}
	return ""
}

// official is "PREFIX LAST, First Middle[,] Suffix" with only the last name
// upper-cased.
func (n *Namefully) official() string {
	last := n.Last()
	if last != "" {
		last = stringsx.Upper(last) + ","
	}
	rest := join(n.FirstName(true), strings.Join(n.MiddleName(), " "))
	if n.cfg.Ending() && n.Suffix() != "" && rest != "" {
		rest += ","
	}
	return join(n.Prefix(), last, rest, n.Suffix())
}
