package names

import "strings"

// Namon is one semantic piece of a name.
type Namon string

const (
	PrefixKind     Namon = "prefix"
	FirstNameKind  Namon = "firstName"
	MiddleNameKind Namon = "middleName"
	LastNameKind   Namon = "lastName"
	SuffixKind     Namon = "suffix"
)

var namons = []Namon{PrefixKind, FirstNameKind, MiddleNameKind, LastNameKind, SuffixKind}

// Namons lists the five roles in canonical order.
func Namons() []Namon { return append([]Namon(nil), namons...) }

// ParseNamon resolves a role key such as "firstName". Matching ignores case.
func ParseNamon(key string) (Namon, bool) {
	for _, n := range namons {
		if strings.EqualFold(string(n), strings.TrimSpace(key)) {
			return n, true
		}
	}
	return "", false
}

// CapsRange says how much of a token capitalization touches.
type CapsRange int

const (
	CapsNone CapsRange = iota
	CapsInitial
	CapsAll
)
