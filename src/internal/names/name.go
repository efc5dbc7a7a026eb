// Package names models the pieces of a personal name. A Name is a single
// tagged variant: its kind decides whether it carries extra given names
// (first name) or a mother surname (last name). Values are immutable; every
// transformation returns a new Name.
package names

import (
	"strings"

	"namefully/src/internal/config"
	"namefully/src/internal/nameerr"
	"namefully/src/internal/stringsx"
)

// ZeroWidthSpace fills the first/last slots of a mononym.
const ZeroWidthSpace = "\u200B"

// Name is one namon. The zero value is not usable; build one with New or a
// role constructor.
type Name struct {
	kind    Namon
	value   string
	more    []string
	mother  string
	surname config.Surname
	caps    CapsRange
}

// Flags tune rendering. WithMore includes extra given names of a first name;
// Surname overrides a last name's own join style when set.
type Flags struct {
	WithMore bool
	Surname  config.Surname
}

func checkLen(v string) error {
	if stringsx.Len(strings.TrimSpace(v)) < 2 {
		return nameerr.Input(v, "must be 2+ characters")
	}
	return nil
}

// New builds a name of the given kind from a single token.
func New(value string, kind Namon) (Name, error) {
	switch kind {
	case FirstNameKind:
		return First(value)
	case LastNameKind:
		return Last(value, "", config.Father)
	case PrefixKind, MiddleNameKind, SuffixKind:
	default:
		return Name{}, nameerr.Input(string(kind), "unknown name kind")
	}
	if err := checkLen(value); err != nil {
		return Name{}, err
	}
	return Name{kind: kind, value: value, caps: CapsInitial}, nil
}

func Prefix(v string) (Name, error) { return New(v, PrefixKind) }
func Middle(v string) (Name, error) { return New(v, MiddleNameKind) }
func Suffix(v string) (Name, error) { return New(v, SuffixKind) }

// First builds a first name with optional extra given names.
func First(value string, more ...string) (Name, error) {
	if err := checkLen(value); err != nil {
		return Name{}, err
	}
	for _, m := range more {
		if err := checkLen(m); err != nil {
			return Name{}, err
		}
	}
	return Name{kind: FirstNameKind, value: value, more: append([]string(nil), more...), caps: CapsInitial}, nil
}

// Last builds a last name. An empty mother means none; an empty surname style
// means father-only.
func Last(father, mother string, surname config.Surname) (Name, error) {
	if err := checkLen(father); err != nil {
		return Name{}, err
	}
	if mother != "" {
		if err := checkLen(mother); err != nil {
			return Name{}, err
		}
	}
	if surname == "" {
		surname = config.Father
	}
	return Name{kind: LastNameKind, value: father, mother: mother, surname: surname, caps: CapsInitial}, nil
}

// Placeholder returns a zero-width name of the given kind. It bypasses the
// length rule and exists only to keep a mononym's five slots populated.
func Placeholder(kind Namon) Name {
	n := Name{kind: kind, value: ZeroWidthSpace, caps: CapsNone}
	if kind == LastNameKind {
		n.surname = config.Father
	}
	return n
}

func (n Name) Kind() Namon             { return n.kind }
func (n Name) Value() string           { return n.value }
func (n Name) Father() string          { return n.value }
func (n Name) Mother() string          { return n.mother }
func (n Name) More() []string          { return append([]string(nil), n.more...) }
func (n Name) HasMore() bool           { return len(n.more) > 0 }
func (n Name) HasMother() bool         { return n.mother != "" }
func (n Name) Surname() config.Surname { return n.surname }
func (n Name) CapsRange() CapsRange    { return n.caps }
func (n Name) IsPrefix() bool          { return n.kind == PrefixKind }
func (n Name) IsFirstName() bool       { return n.kind == FirstNameKind }
func (n Name) IsMiddleName() bool      { return n.kind == MiddleNameKind }
func (n Name) IsLastName() bool        { return n.kind == LastNameKind }
func (n Name) IsSuffix() bool          { return n.kind == SuffixKind }
func (n Name) IsPlaceholder() bool     { return n.value == ZeroWidthSpace }

// Initial is the leading character of the primary token.
func (n Name) Initial() string { return stringsx.FirstRune(n.value) }

// String renders with default flags: first name alone, last name in its own style.
func (n Name) String() string { return n.Render(Flags{}) }

// Len is the character count of String().
func (n Name) Len() int { return stringsx.Len(n.String()) }

// Render returns the textual form of n under f.
func (n Name) Render(f Flags) string {
	switch n.kind {
	case FirstNameKind:
		if f.WithMore && len(n.more) > 0 {
			return n.value + " " + strings.Join(n.more, " ")
		}
		return n.value
	case LastNameKind:
		return strings.Join(n.surnameTokens(f.Surname), n.surnameSep(f.Surname))
	default:
		return n.value
	}
}

// Initials returns the first letter of each token Render(f) would show.
func (n Name) Initials(f Flags) []string {
	var tokens []string
	switch n.kind {
	case FirstNameKind:
		tokens = []string{n.value}
		if f.WithMore {
			tokens = append(tokens, n.more...)
		}
	case LastNameKind:
		tokens = n.surnameTokens(f.Surname)
	default:
		tokens = []string{n.value}
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, stringsx.FirstRune(t))
	}
	return out
}

func (n Name) style(override config.Surname) config.Surname {
	if override != "" {
		return override
	}
	if n.surname != "" {
		return n.surname
	}
	return config.Father
}

func (n Name) surnameTokens(override config.Surname) []string {
	switch n.style(override) {
	case config.Mother:
		if n.mother == "" {
			return nil
		}
		return []string{n.mother}
	case config.Hyphenated, config.All:
		if n.mother == "" {
			return []string{n.value}
		}
		return []string{n.value, n.mother}
	default:
		return []string{n.value}
	}
}

func (n Name) surnameSep(override config.Surname) string {
	if n.style(override) == config.Hyphenated {
		return "-"
	}
	return " "
}

// Equal reports whether both names render identically and share a kind.
func (n Name) Equal(o Name) bool { return n.kind == o.kind && n.String() == o.String() }

// WithSurname returns a copy of a last name using style s. Other kinds are
// returned unchanged.
func (n Name) WithSurname(s config.Surname) Name {
	if n.kind == LastNameKind && s != "" {
		n.surname = s
	}
	return n
}

// Caps capitalizes every token of n: the leading letter for CapsInitial, the
// whole token for CapsAll.
func (n Name) Caps(r CapsRange) Name {
	if n.IsPlaceholder() {
		return n
	}
	switch r {
	case CapsInitial:
		n = n.mapTokens(stringsx.Capitalize)
	case CapsAll:
		n = n.mapTokens(stringsx.Upper)
	default:
		return n
	}
	n.caps = r
	return n
}

// Decaps is the inverse of Caps: leading letter or whole token lower-cased.
func (n Name) Decaps(r CapsRange) Name {
	switch r {
	case CapsInitial:
		return n.mapTokens(stringsx.Decapitalize)
	case CapsAll:
		return n.mapTokens(stringsx.Lower)
	}
	return n
}

func (n Name) mapTokens(fn func(string) string) Name {
	if n.IsPlaceholder() {
		return n
	}
	n.value = fn(n.value)
	if len(n.more) > 0 {
		more := make([]string, len(n.more))
		for i, m := range n.more {
			more[i] = fn(m)
		}
		n.more = more
	}
	if n.mother != "" {
		n.mother = fn(n.mother)
	}
	return n
}
