package config

import (
	"fmt"
	"strings"
)

// Order tells which of first or last name leads a rendered name.
type Order string

const (
	ByFirstName Order = "firstName"
	ByLastName  Order = "lastName"
)

// Flip returns the opposite order.
func (o Order) Flip() Order {
	if o == ByLastName {
		return ByFirstName
	}
	return ByLastName
}

// ParseOrder accepts "firstName"/"lastName" and the short forms "first"/"last".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "firstname", "first", "first-name":
		return ByFirstName, nil
	case "lastname", "last", "last-name":
		return ByLastName, nil
	}
	return "", fmt.Errorf("invalid name order: %q", s)
}

// Title is the prefix style: UK leaves "Mr" alone, US writes "Mr.".
type Title string

const (
	UK Title = "UK"
	US Title = "US"
)

func ParseTitle(s string) (Title, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UK":
		return UK, nil
	case "US":
		return US, nil
	}
	return "", fmt.Errorf("invalid title style: %q", s)
}

// Surname is how a father/mother last name is rendered.
type Surname string

const (
	Father     Surname = "father"
	Mother     Surname = "mother"
	Hyphenated Surname = "hyphenated"
	All        Surname = "all"
)

func ParseSurname(s string) (Surname, error) {
	switch v := Surname(strings.ToLower(strings.TrimSpace(s))); v {
	case Father, Mother, Hyphenated, All:
		return v, nil
	}
	return "", fmt.Errorf("invalid surname style: %q", s)
}

// Separator is a named single-character token used to split string input.
type Separator string

const (
	Comma       Separator = "comma"
	Colon       Separator = "colon"
	DoubleQuote Separator = "doubleQuote"
	Empty       Separator = "empty"
	Hyphen      Separator = "hyphen"
	Period      Separator = "period"
	SemiColon   Separator = "semiColon"
	SingleQuote Separator = "singleQuote"
	Space       Separator = "space"
	Underscore  Separator = "underscore"
)

var separatorTokens = map[Separator]string{
	Comma:       ",",
	Colon:       ":",
	DoubleQuote: `"`,
	Empty:       "",
	Hyphen:      "-",
	Period:      ".",
	SemiColon:   ";",
	SingleQuote: "'",
	Space:       " ",
	Underscore:  "_",
}

// Token returns the character the separator stands for.
func (s Separator) Token() string { return separatorTokens[s] }

// ParseSeparator accepts either a separator name or its token.
func ParseSeparator(s string) (Separator, error) {
	for name, tok := range separatorTokens {
		if strings.EqualFold(string(name), s) || (s != "" && tok == s) {
			return name, nil
		}
	}
	return "", fmt.Errorf("invalid separator: %q", s)
}
