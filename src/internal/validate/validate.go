package validate

import (
	"fmt"
	"strings"

	"namefully/src/internal/nameerr"
	"namefully/src/internal/names"
)

// Validator checks one value. Values of an unexpected shape yield an input
// error; rejected content yields a validation error.
type Validator interface {
	Validate(value any) error
}

func shapeError(value any, want string) error {
	return nameerr.Input(fmt.Sprint(value), "expecting "+want)
}

func check(rule interface{ MatchString(string) bool }, value, nameType string) error {
	if !rule.MatchString(value) {
		return nameerr.Validation(value, nameType, "invalid content")
	}
	return nil
}

// Namon validates a single generic token.
type Namon struct{}

func (Namon) Validate(value any) error {
	switch v := value.(type) {
	case string:
		return check(namonRule, v, "namon")
	case names.Name:
		return check(namonRule, v.Value(), "namon")
	}
	return shapeError(value, "types of string | Name")
}

// Title validates prefixes and suffixes.
type Title struct{}

func (Title) Validate(value any) error {
	switch v := value.(type) {
	case string:
		return check(titleRule, v, "title")
	case names.Name:
		return check(titleRule, v.Value(), string(v.Kind()))
	}
	return shapeError(value, "types of string | Name")
}

// FirstName validates a first name and any extra given names.
type FirstName struct{}

func (FirstName) Validate(value any) error {
	switch v := value.(type) {
	case string:
		return check(namonRule, v, string(names.FirstNameKind))
	case names.Name:
		if !v.IsFirstName() {
			return nameerr.Validation(v.Value(), string(names.FirstNameKind), "wrong name kind "+string(v.Kind()))
		}
		for _, tok := range append([]string{v.Value()}, v.More()...) {
			if err := check(namonRule, tok, string(names.FirstNameKind)); err != nil {
				return err
			}
		}
		return nil
	}
	return shapeError(value, "types of string | Name")
}

// MiddleName validates one or several middle names.
type MiddleName struct{}

func (MiddleName) Validate(value any) error {
	const kind = string(names.MiddleNameKind)
	switch v := value.(type) {
	case string:
		return check(namonRule, v, kind)
	case names.Name:
		return check(namonRule, v.Value(), kind)
	case []string:
		for _, s := range v {
			if err := check(namonRule, s, kind); err != nil {
				return err
			}
		}
		return nil
	case []names.Name:
		for _, n := range v {
			if !n.IsMiddleName() {
				return nameerr.Validation(n.Value(), kind, "wrong name kind "+string(n.Kind()))
			}
			if err := check(namonRule, n.Value(), kind); err != nil {
				return err
			}
		}
		return nil
	}
	return shapeError(value, "types of string | string[] | Name | Name[]")
}

// LastName validates a last name, father and mother parts alike.
type LastName struct{}

func (LastName) Validate(value any) error {
	const kind = string(names.LastNameKind)
	switch v := value.(type) {
	case string:
		return check(namonRule, v, kind)
	case names.Name:
		if !v.IsLastName() {
			return nameerr.Validation(v.Value(), kind, "wrong name kind "+string(v.Kind()))
		}
		if err := check(namonRule, v.Father(), kind); err != nil {
			return err
		}
		if v.HasMother() {
			return check(namonRule, v.Mother(), kind)
		}
		return nil
	}
	return shapeError(value, "types of string | Name")
}

// ForKind returns the content validator responsible for a role.
func ForKind(kind names.Namon) Validator {
	switch kind {
	case names.FirstNameKind:
		return FirstName{}
	case names.MiddleNameKind:
		return MiddleName{}
	case names.LastNameKind:
		return LastName{}
	case names.PrefixKind, names.SuffixKind:
		return Title{}
	}
	return Namon{}
}

// Name validates a typed part against the rule of its own kind.
func Name(n names.Name) error { return ForKind(n.Kind()).Validate(n) }

func arityError(source string) error {
	return nameerr.Input(source, fmt.Sprintf("expecting a list of %d-%d elements", minArity, maxArity))
}

// ArrayString validates an ordered token list laid out by Index.
type ArrayString struct {
	Index names.Index
}

// ValidateIndex checks arity only.
func (a ArrayString) ValidateIndex(values []string) error {
	if len(values) < minArity || len(values) > maxArity {
		return arityError(strings.Join(values, " "))
	}
	return nil
}

// Validate checks arity then every role the index assigns.
func (a ArrayString) Validate(values []string) error {
	if err := a.ValidateIndex(values); err != nil {
		return err
	}
	positions := a.Index.Positions()
	for _, kind := range names.Namons() {
		pos := positions[kind]
		if pos < 0 || pos >= len(values) {
			continue
		}
		if err := ForKind(kind).Validate(values[pos]); err != nil {
			return err
		}
	}
	return nil
}

// ArrayName validates a list of typed parts.
type ArrayName struct{}

// ValidateIndex checks arity and that first and last names are both present.
func (ArrayName) ValidateIndex(values []names.Name) error {
	src := joinNames(values)
	if len(values) < minArity || len(values) > maxArity {
		return arityError(src)
	}
	return RequireFirstAndLast(values)
}

// Validate runs ValidateIndex and the content rule of every part.
func (a ArrayName) Validate(values []names.Name) error {
	if err := a.ValidateIndex(values); err != nil {
		return err
	}
	for _, n := range values {
		if err := Name(n); err != nil {
			return err
		}
	}
	return nil
}

// RequireFirstAndLast is the structural rule shared by parsers and the builder.
func RequireFirstAndLast(values []names.Name) error {
	var first, last bool
	for _, n := range values {
		first = first || n.IsFirstName()
		last = last || n.IsLastName()
	}
	if !first || !last {
		return nameerr.Input(joinNames(values), "both first and last names are required")
	}
	return nil
}

func joinNames(values []names.Name) string {
	parts := make([]string, 0, len(values))
	for _, n := range values {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, " ")
}

// Nama validates key-value input keyed by role names.
type Nama struct{}

// ValidateKeys checks the structural rules: 2-5 recognized keys including
// firstName and lastName.
func (Nama) ValidateKeys(values map[string]any) error {
	if len(values) == 0 {
		return nameerr.Input("{}", "Map<k,v> must not be empty")
	}
	src := fmt.Sprint(values)
	if len(values) < minArity || len(values) > maxArity {
		return nameerr.Input(src, fmt.Sprintf("expecting %d-%d fields", minArity, maxArity))
	}
	seen := map[names.Namon]bool{}
	for k := range values {
		kind, ok := names.ParseNamon(k)
		if !ok {
			return nameerr.Input(src, "unsupported key "+k)
		}
		seen[kind] = true
	}
	if !seen[names.FirstNameKind] {
		return nameerr.Input(src, `"firstName" is a required key`)
	}
	if !seen[names.LastNameKind] {
		return nameerr.Input(src, `"lastName" is a required key`)
	}
	return nil
}

// Validate checks keys then content of each value with its role validator.
func (n Nama) Validate(values map[string]any) error {
	if err := n.ValidateKeys(values); err != nil {
		return err
	}
	for k, v := range values {
		kind, _ := names.ParseNamon(k)
		if kind == names.MiddleNameKind {
			if list, ok := v.([]any); ok {
				v = toStrings(list)
			}
		}
		if err := ForKind(kind).Validate(v); err != nil {
			return err
		}
	}
	return nil
}

// toStrings keeps non-string items as-is so the validator reports the shape.
func toStrings(list []any) any {
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return list
		}
		out = append(out, s)
	}
	return out
}
