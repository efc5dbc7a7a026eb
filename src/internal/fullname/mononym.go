package fullname

import (
	"namefully/src/internal/config"
	"namefully/src/internal/names"
	"namefully/src/internal/stringsx"
)

// Mononym is a one-word name kept in the five-slot shape: first and last name
// hold zero-width placeholders and the real value sits in the slot of its role.
type Mononym struct {
	fn    Fullname
	value string
	role  names.Namon
}

// NewMononym builds a mononym; an empty role means first name.
func NewMononym(value string, role names.Namon, cfg *config.Config) (Mononym, error) {
	if role == "" {
		role = names.FirstNameKind
	}
	m := Mononym{value: value, role: role}
	fn, err := m.build(cfg)
	if err != nil {
		return Mononym{}, err
	}
	m.fn = fn
	return m, nil
}

// As returns the same value reassigned to another role.
func (m Mononym) As(role names.Namon) (Mononym, error) {
	return NewMononym(m.value, role, m.fn.cfg)
}

func (m Mononym) build(cfg *config.Config) (Fullname, error) {
	n, err := names.New(m.value, m.role)
	if err != nil {
		return Fullname{}, err
	}
	f := New(cfg)
	f.first = names.Placeholder(names.FirstNameKind)
	f.last = names.Placeholder(names.LastNameKind)
	switch m.role {
	case names.PrefixKind:
		return f.SetPrefix(n)
	case names.FirstNameKind:
		return f.SetFirstName(n)
	case names.MiddleNameKind:
		return f.SetMiddleName([]names.Name{n})
	case names.LastNameKind:
		return f.SetLastName(n)
	default:
		return f.SetSuffix(n)
	}
}

func (m Mononym) Value() string      { return m.value }
func (m Mononym) Role() names.Namon  { return m.role }
func (m Mononym) Fullname() Fullname { return m.fn }
func (m Mononym) String() string     { return m.value }
func (m Mononym) Len() int           { return stringsx.Len(m.value) }
func (m Mononym) Initials() []string { return []string{stringsx.FirstRune(m.value)} }
