// Package fullname holds the structured container a parser produces: an
// optional prefix, a first name, ordered middle names, a last name and an
// optional suffix, bound to the configuration used to build it.
//
// Fullname is a value type. Setters validate (unless the configuration
// bypasses content rules) and return an updated copy, so a container in
// progress can be shared without aliasing surprises.
package fullname

import (
	"fmt"
	"strings"

	"namefully/src/internal/config"
	"namefully/src/internal/nameerr"
	"namefully/src/internal/names"
	"namefully/src/internal/validate"
)

type Fullname struct {
	cfg    *config.Config
	prefix names.Name
	first  names.Name
	middle []names.Name
	last   names.Name
	suffix names.Name
}

// New returns an empty container bound to cfg.
func New(cfg *config.Config) Fullname { return Fullname{cfg: cfg} }

func (f Fullname) Config() *config.Config { return f.cfg }

func (f Fullname) bypass() bool { return f.cfg == nil || f.cfg.Bypass() }

func (f Fullname) validate(v validate.Validator, value any) error {
	if f.bypass() {
		return nil
	}
	return v.Validate(value)
}

// SetPrefix stores n as the prefix, appending a period for the US title style.
func (f Fullname) SetPrefix(n names.Name) (Fullname, error) {
	if err := f.validate(validate.Title{}, n.Value()); err != nil {
		return f, err
	}
	value := n.Value()
	if f.cfg != nil && f.cfg.Title() == config.US && !strings.HasSuffix(value, ".") {
		value += "."
	}
	p, err := names.Prefix(value)
	if err != nil {
		return f, err
	}
	f.prefix = p
	return f, nil
}

// SetFirstName stores n as the first name, keeping extra given names when n
// already is one.
func (f Fullname) SetFirstName(n names.Name) (Fullname, error) {
	if !n.IsFirstName() {
		var err error
		if n, err = names.First(n.Value()); err != nil {
			return f, err
		}
	}
	if err := f.validate(validate.FirstName{}, n); err != nil {
		return f, err
	}
	f.first = n
	return f, nil
}

// SetMiddleName replaces the middle names.
func (f Fullname) SetMiddleName(ns []names.Name) (Fullname, error) {
	out := make([]names.Name, 0, len(ns))
	for _, n := range ns {
		if !n.IsMiddleName() {
			var err error
			if n, err = names.Middle(n.Value()); err != nil {
				return f, err
			}
		}
		out = append(out, n)
	}
	if err := f.validate(validate.MiddleName{}, out); err != nil {
		return f, err
	}
	f.middle = out
	return f, nil
}

// AddMiddleName appends one middle name.
func (f Fullname) AddMiddleName(n names.Name) (Fullname, error) {
	return f.SetMiddleName(append(f.MiddleName(), n))
}

// SetLastName stores n as the last name. A part of another kind becomes a
// father-only last name in the configured surname style.
func (f Fullname) SetLastName(n names.Name) (Fullname, error) {
	if !n.IsLastName() {
		var err error
		if n, err = names.Last(n.Value(), "", f.surname()); err != nil {
			return f, err
		}
	}
	if err := f.validate(validate.LastName{}, n); err != nil {
		return f, err
	}
	f.last = n
	return f, nil
}

// SetSuffix stores n as the suffix.
func (f Fullname) SetSuffix(n names.Name) (Fullname, error) {
	if err := f.validate(validate.Title{}, n.Value()); err != nil {
		return f, err
	}
	s, err := names.Suffix(n.Value())
	if err != nil {
		return f, err
	}
	f.suffix = s
	return f, nil
}

func (f Fullname) surname() config.Surname {
	if f.cfg == nil {
		return config.Father
	}
	return f.cfg.Surname()
}

func (f Fullname) Prefix() names.Name    { return f.prefix }
func (f Fullname) FirstName() names.Name { return f.first }
func (f Fullname) LastName() names.Name  { return f.last }
func (f Fullname) Suffix() names.Name    { return f.suffix }

// MiddleName returns a fresh copy of the middle names.
func (f Fullname) MiddleName() []names.Name { return append([]names.Name(nil), f.middle...) }

func isSet(n names.Name) bool { return n.Kind() != "" }

// Has reports whether the role holds a value.
func (f Fullname) Has(kind names.Namon) bool {
	switch kind {
	case names.PrefixKind:
		return isSet(f.prefix) && f.prefix.Value() != ""
	case names.FirstNameKind:
		return isSet(f.first)
	case names.MiddleNameKind:
		return len(f.middle) > 0
	case names.LastNameKind:
		return isSet(f.last)
	case names.SuffixKind:
		return isSet(f.suffix) && f.suffix.Value() != ""
	}
	return false
}

// Ready reports whether both first and last name are set.
func (f Fullname) Ready() bool { return f.Has(names.FirstNameKind) && f.Has(names.LastNameKind) }

// Parts lists the set roles in canonical order. With flat, extra given names
// and the mother surname come out as parts of their own.
func (f Fullname) Parts(flat bool) []names.Name {
	var out []names.Name
	if f.Has(names.PrefixKind) {
		out = append(out, f.prefix)
	}
	if f.Has(names.FirstNameKind) {
		if flat && f.first.HasMore() {
			for _, tok := range append([]string{f.first.Value()}, f.first.More()...) {
				n, _ := names.First(tok)
				out = append(out, n)
			}
		} else {
			out = append(out, f.first)
		}
	}
	out = append(out, f.middle...)
	if f.Has(names.LastNameKind) {
		if flat && f.last.HasMother() {
			father, _ := names.Last(f.last.Father(), "", config.Father)
			mother, _ := names.Last(f.last.Mother(), "", config.Father)
			out = append(out, father, mother)
		} else {
			out = append(out, f.last)
		}
	}
	if f.Has(names.SuffixKind) {
		out = append(out, f.suffix)
	}
	return out
}

// Size counts the set roles, one per middle name.
func (f Fullname) Size() int { return len(f.Parts(false)) }

// FromMap distributes a key-value object (role key to value) into a new
// container. firstName may be a string or {value, more}; lastName a string
// or {father, mother}; middleName a string or a list. Values of any other
// type are reported as unknown errors.
func FromMap(m map[string]any, cfg *config.Config) (Fullname, error) {
	f, err := fromMap(m, cfg)
	if err != nil {
		return Fullname{}, nameerr.Wrap(err, sourceOf(m), "could not parse JSON content")
	}
	return f, nil
}

func fromMap(m map[string]any, cfg *config.Config) (Fullname, error) {
	f := New(cfg)
	byKind := map[names.Namon]any{}
	for k, v := range m {
		kind, ok := names.ParseNamon(k)
		if !ok {
			return f, nameerr.Input(sourceOf(m), "unsupported key "+k)
		}
		byKind[kind] = v
	}
	var err error
	if v, ok := byKind[names.PrefixKind]; ok && v != nil {
		if f, err = setText(f, v, names.Prefix, Fullname.SetPrefix); err != nil {
			return f, err
		}
	}
	if v, ok := byKind[names.FirstNameKind]; ok {
		n, err := firstFrom(v)
		if err != nil {
			return f, err
		}
		if f, err = f.SetFirstName(n); err != nil {
			return f, err
		}
	}
	if v, ok := byKind[names.MiddleNameKind]; ok && v != nil {
		ms, err := middlesFrom(v)
		if err != nil {
			return f, err
		}
		if f, err = f.SetMiddleName(ms); err != nil {
			return f, err
		}
	}
	if v, ok := byKind[names.LastNameKind]; ok {
		n, err := lastFrom(v, f.surname())
		if err != nil {
			return f, err
		}
		if f, err = f.SetLastName(n); err != nil {
			return f, err
		}
	}
	if v, ok := byKind[names.SuffixKind]; ok && v != nil {
		if f, err = setText(f, v, names.Suffix, Fullname.SetSuffix); err != nil {
			return f, err
		}
	}
	if !f.Ready() {
		return f, nameerr.Input(sourceOf(m), "both first and last names are required")
	}
	return f, nil
}

func setText(f Fullname, v any, mk func(string) (names.Name, error), set func(Fullname, names.Name) (Fullname, error)) (Fullname, error) {
	s, ok := v.(string)
	if !ok {
		return f, fmt.Errorf("unexpected %T value", v)
	}
	n, err := mk(s)
	if err != nil {
		return f, err
	}
	return set(f, n)
}

func firstFrom(v any) (names.Name, error) {
	switch t := v.(type) {
	case string:
		return names.First(t)
	case names.Name:
		return t, nil
	case map[string]any:
		value, _ := t["value"].(string)
		more, err := stringList(t["more"])
		if err != nil {
			return names.Name{}, err
		}
		return names.First(value, more...)
	}
	return names.Name{}, fmt.Errorf("unexpected %T value for firstName", v)
}

func lastFrom(v any, surname config.Surname) (names.Name, error) {
	switch t := v.(type) {
	case string:
		return names.Last(t, "", surname)
	case names.Name:
		return t, nil
	case map[string]any:
		father, _ := t["father"].(string)
		mother, _ := t["mother"].(string)
		return names.Last(father, mother, surname)
	}
	return names.Name{}, fmt.Errorf("unexpected %T value for lastName", v)
}

func middlesFrom(v any) ([]names.Name, error) {
	var tokens []string
	switch t := v.(type) {
	case string:
		tokens = []string{t}
	case []names.Name:
		return t, nil
	default:
		list, err := stringList(v)
		if err != nil {
			return nil, err
		}
		tokens = list
	}
	out := make([]names.Name, 0, len(tokens))
	for _, tok := range tokens {
		n, err := names.Middle(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func stringList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected %T item in list", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unexpected %T value for list", v)
}

func sourceOf(m map[string]any) string {
	parts := make([]string, 0, len(m))
	for _, k := range names.Namons() {
		for key, v := range m {
			if kind, ok := names.ParseNamon(key); ok && kind == k {
				parts = append(parts, fmt.Sprint(v))
			}
		}
	}
	return strings.Join(parts, " ")
}
