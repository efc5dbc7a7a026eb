// Package namefully wraps a parsed name and its configuration and renders it
// under the usual conventions: full and birth names, short forms, initials,
// pattern formatting, flattening to initials and case transforms.
//
// A Namefully is read-only once built. The one exception is Flip, which
// changes the order of the shared configuration in place.
package namefully

import (
	"context"
	"strings"

	"namefully/src/internal/config"
	"namefully/src/internal/fullname"
	"namefully/src/internal/names"
	"namefully/src/internal/parser"
	"namefully/src/internal/stringsx"
	"namefully/src/internal/validate"
)

type Namefully struct {
	fn  fullname.Fullname
	cfg *config.Config
}

type settings struct {
	reg  *config.Registry
	cfg  *config.Config
	opts *config.Options
}

// Option selects the configuration a name is built with.
type Option func(*settings)

// WithRegistry sets the registry configurations are looked up in. Without
// one, each construction gets a fresh registry.
func WithRegistry(r *config.Registry) Option { return func(s *settings) { s.reg = r } }

// WithConfig builds with cfg as is.
func WithConfig(cfg *config.Config) Option { return func(s *settings) { s.cfg = cfg } }

// WithOptions merges o into the registry entry named o.Name (or into the
// entry of WithConfig when o has no name).
func WithOptions(o config.Options) Option { return func(s *settings) { s.opts = &o } }

func resolve(opts []Option) *config.Config {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	reg := s.reg
	if reg == nil && s.cfg != nil {
		reg = s.cfg.Registry()
	}
	if reg == nil {
		reg = config.NewRegistry()
	}
	switch {
	case s.opts != nil:
		o := *s.opts
		if o.Name == "" && s.cfg != nil {
			o.Name = s.cfg.Name()
		}
		return reg.Merge(o)
	case s.cfg != nil:
		return s.cfg
	}
	return reg.Create("")
}

// New parses with p. Any Parser works, including user-supplied ones.
func New(p parser.Parser, opts ...Option) (*Namefully, error) {
	cfg := resolve(opts)
	fn, err := p.Parse(cfg)
	if err != nil {
		return nil, err
	}
	return &Namefully{fn: fn, cfg: cfg}, nil
}

// FromString splits text on the configured separator.
func FromString(text string, opts ...Option) (*Namefully, error) {
	return New(parser.NewString(text), opts...)
}

// FromStrings reads 2 to 5 tokens in the configured order.
func FromStrings(tokens []string, opts ...Option) (*Namefully, error) {
	return New(parser.NewStrings(tokens), opts...)
}

// FromNames assembles typed parts.
func FromNames(parts []names.Name, opts ...Option) (*Namefully, error) {
	return New(parser.NewNames(parts), opts...)
}

// FromMap reads a key-value name with required firstName and lastName keys.
func FromMap(m map[string]any, opts ...Option) (*Namefully, error) {
	return New(parser.NewNama(m), opts...)
}

// FromFullname wraps an already assembled container, keeping its configuration.
func FromFullname(fn fullname.Fullname) (*Namefully, error) {
	cfg := fn.Config()
	if cfg == nil {
		cfg = config.NewRegistry().Create("")
	}
	if err := validate.RequireFirstAndLast(fn.Parts(false)); err != nil {
		return nil, err
	}
	return &Namefully{fn: fn, cfg: cfg}, nil
}

// FromMononym wraps a one-word name.
func FromMononym(value string, role names.Namon, opts ...Option) (*Namefully, error) {
	cfg := resolve(opts)
	m, err := fullname.NewMononym(value, role, cfg)
	if err != nil {
		return nil, err
	}
	return &Namefully{fn: m.Fullname(), cfg: cfg}, nil
}

// Parse guesses the roles of free text. See parser.Build for the heuristic.
func Parse(text string, index *names.Index, opts ...Option) (*Namefully, error) {
	p, err := parser.Build(text, index)
	if err != nil {
		return nil, err
	}
	return New(p, opts...)
}

// TryParse is Parse returning nil instead of an error.
func TryParse(text string, index *names.Index, opts ...Option) *Namefully {
	n, err := Parse(text, index, opts...)
	if err != nil {
		return nil
	}
	return n
}

// ParseContext is New with a context check before parsing.
func ParseContext(ctx context.Context, p parser.Parser, opts ...Option) (*Namefully, error) {
	cfg := resolve(opts)
	fn, err := parser.ParseContext(ctx, p, cfg)
	if err != nil {
		return nil, err
	}
	return &Namefully{fn: fn, cfg: cfg}, nil
}

func (n *Namefully) Config() *config.Config      { return n.cfg }
func (n *Namefully) Fullname() fullname.Fullname { return n.fn }

// visible hides mononym placeholders.
func visible(s string) string {
	if s == names.ZeroWidthSpace {
		return ""
	}
	return s
}

// join joins the non-empty pieces with single spaces.
func join(pieces ...string) string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(visible(p)); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func (n *Namefully) order(o config.Order) config.Order {
	if o == "" {
		return n.cfg.OrderedBy()
	}
	return o
}

func (n *Namefully) Prefix() string {
	if !n.fn.Has(names.PrefixKind) {
		return ""
	}
	return n.fn.Prefix().Value()
}

func (n *Namefully) Suffix() string {
	if !n.fn.Has(names.SuffixKind) {
		return ""
	}
	return n.fn.Suffix().Value()
}

// First is the first name without extra given names.
func (n *Namefully) First() string { return n.FirstName(false) }

func (n *Namefully) FirstName(withMore bool) string {
	return visible(n.fn.FirstName().Render(names.Flags{WithMore: withMore}))
}

// Middle is the first middle name, if any.
func (n *Namefully) Middle() string {
	if ms := n.fn.MiddleName(); len(ms) > 0 {
		return ms[0].Value()
	}
	return ""
}

func (n *Namefully) MiddleName() []string {
	ms := n.fn.MiddleName()
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		if v := visible(m.Value()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (n *Namefully) HasMiddle() bool { return n.fn.Has(names.MiddleNameKind) }

// Last is the last name in its own surname style.
func (n *Namefully) Last() string { return n.LastName("") }

// LastName renders the last name in style s, or in its own style when s is empty.
func (n *Namefully) LastName(s config.Surname) string {
	return visible(n.fn.LastName().Render(names.Flags{Surname: s}))
}

// BirthName is first, middle and last names in order o (the configured
// order when empty).
func (n *Namefully) BirthName(o config.Order) string {
	mid := strings.Join(n.MiddleName(), " ")
	if n.order(o) == config.ByLastName {
		return join(n.LastName(""), n.FirstName(true), mid)
	}
	return join(n.FirstName(true), mid, n.LastName(""))
}

// FullName adds prefix and suffix to the birth name. With the ending flag on,
// a comma separates the birth name from a following suffix.
func (n *Namefully) FullName(o config.Order) string {
	birth := n.BirthName(o)
	suffix := n.Suffix()
	if n.cfg.Ending() && suffix != "" && birth != "" {
		birth += ","
	}
	return join(n.Prefix(), birth, suffix)
}

func (n *Namefully) Full() string  { return n.FullName("") }
func (n *Namefully) Birth() string { return n.BirthName("") }
func (n *Namefully) Long() string  { return n.Birth() }
func (n *Namefully) Short() string { return n.Shorten("") }

// Shorten keeps only the first name (without extras) and the last name.
func (n *Namefully) Shorten(o config.Order) string {
	if n.order(o) == config.ByLastName {
		return join(n.Last(), n.First())
	}
	return join(n.First(), n.Last())
}

// Public is the first name and the last name initial.
func (n *Namefully) Public() string { return n.mustFormat("f $l") }

// Salutation is the prefix and the last name.
func (n *Namefully) Salutation() string { return n.mustFormat("p l") }

func (n *Namefully) mustFormat(pattern string) string {
	s, _ := n.Format(pattern)
	return s
}

func (n *Namefully) String() string { return n.Full() }

// Len is the character count of the birth name.
func (n *Namefully) Len() int { return stringsx.Len(n.Birth()) }

// Size counts the parts, one per middle name.
func (n *Namefully) Size() int { return len(n.Parts(false)) }

func (n *Namefully) Has(kind names.Namon) bool {
	for _, p := range n.Get(kind) {
		if !p.IsPlaceholder() {
			return true
		}
	}
	return false
}

// Parts lists the parts in canonical role order; see fullname.Fullname.Parts.
func (n *Namefully) Parts(flat bool) []names.Name {
	var out []names.Name
	for _, p := range n.fn.Parts(flat) {
		if !p.IsPlaceholder() {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the parts of one role: zero or one, except for middle names.
func (n *Namefully) Get(kind names.Namon) []names.Name {
	if !n.fn.Has(kind) {
		return nil
	}
	switch kind {
	case names.PrefixKind:
		return []names.Name{n.fn.Prefix()}
	case names.FirstNameKind:
		return []names.Name{n.fn.FirstName()}
	case names.MiddleNameKind:
		return n.fn.MiddleName()
	case names.LastNameKind:
		return []names.Name{n.fn.LastName()}
	case names.SuffixKind:
		return []names.Name{n.fn.Suffix()}
	}
	return nil
}

// Equal reports whether both names render the same full name.
func (n *Namefully) Equal(o *Namefully) bool { return o != nil && n.Full() == o.Full() }

// ToMap returns the rendered role values keyed by role name. Absent roles
// are omitted.
func (n *Namefully) ToMap() map[string]any {
	out := map[string]any{
		string(names.FirstNameKind): n.FirstName(true),
		string(names.LastNameKind):  n.Last(),
	}
	if p := n.Prefix(); p != "" {
		out[string(names.PrefixKind)] = p
	}
	if ms := n.MiddleName(); len(ms) > 0 {
		out[string(names.MiddleNameKind)] = ms
	}
	if s := n.Suffix(); s != "" {
		out[string(names.SuffixKind)] = s
	}
	return out
}

// InitialsOptions selects which initials to return. A zero Only means the
// whole birth name; FirstNameKind, MiddleNameKind or LastNameKind restrict
// it to one role.
type InitialsOptions struct {
	OrderedBy config.Order
	Only      names.Namon
}

// RoleInitials groups initials by role.
type RoleInitials struct {
	FirstName  []string `json:"firstName" yaml:"firstName"`
	MiddleName []string `json:"middleName" yaml:"middleName"`
	LastName   []string `json:"lastName" yaml:"lastName"`
}

func initialsOf(n names.Name, f names.Flags) []string {
	if n.IsPlaceholder() || n.Kind() == "" {
		return nil
	}
	return n.Initials(f)
}

func (n *Namefully) InitialsByRole() RoleInitials {
	r := RoleInitials{
		FirstName:  initialsOf(n.fn.FirstName(), names.Flags{}),
		MiddleName: []string{},
		LastName:   initialsOf(n.fn.LastName(), names.Flags{}),
	}
	for _, m := range n.fn.MiddleName() {
		r.MiddleName = append(r.MiddleName, initialsOf(m, names.Flags{})...)
	}
	return r
}

// Initials returns the first letter of each birth-name part.
func (n *Namefully) Initials(o InitialsOptions) []string {
	r := n.InitialsByRole()
	switch o.Only {
	case names.FirstNameKind:
		return r.FirstName
	case names.MiddleNameKind:
		return r.MiddleName
	case names.LastNameKind:
		return r.LastName
	}
	var out []string
	if n.order(o.OrderedBy) == config.ByLastName {
		out = append(out, r.LastName...)
		out = append(out, r.FirstName...)
		return append(out, r.MiddleName...)
	}
	out = append(out, r.FirstName...)
	out = append(out, r.MiddleName...)
	return append(out, r.LastName...)
}

// Flip switches the configured order. The configuration is shared, so every
// name built with it sees the change.
func (n *Namefully) Flip() {
	n.cfg.Update(config.UpdateOptions{OrderedBy: n.cfg.OrderedBy().Flip()})
}
