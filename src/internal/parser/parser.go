// Package parser turns raw input of four shapes (a delimited string, a token
// list, a list of typed parts, a key-value object) into a fullname.Fullname.
// Every parser satisfies Parser, so callers may also plug in their own.
package parser

import (
	"context"
	"strings"

	"namefully/src/internal/config"
	"namefully/src/internal/fullname"
	"namefully/src/internal/nameerr"
	"namefully/src/internal/names"
	"namefully/src/internal/sanitize"
	"namefully/src/internal/validate"
)

// Parser converts its raw input under cfg.
type Parser interface {
	Parse(cfg *config.Config) (fullname.Fullname, error)
	Raw() any
}

// StringParser splits text on the configured separator.
type StringParser struct{ raw string }

func NewString(text string) *StringParser { return &StringParser{raw: text} }

func (p *StringParser) Raw() any { return p.raw }

func (p *StringParser) Parse(cfg *config.Config) (fullname.Fullname, error) {
	text := sanitize.CleanString(p.raw, 0)
	tokens := strings.Split(text, cfg.Separator().Token())
	return NewStrings(tokens).Parse(cfg)
}

// ArrayStringParser assigns 2-5 ordered tokens to roles via names.IndexFor.
type ArrayStringParser struct{ raw []string }

func NewStrings(tokens []string) *ArrayStringParser {
	return &ArrayStringParser{raw: append([]string(nil), tokens...)}
}

func (p *ArrayStringParser) Raw() any { return append([]string(nil), p.raw...) }

func (p *ArrayStringParser) Parse(cfg *config.Config) (fullname.Fullname, error) {
	raw := sanitize.CleanTokens(p.raw)
	idx := names.IndexFor(cfg.OrderedBy(), len(raw))
	v := validate.ArrayString{Index: idx}
	if cfg.Bypass() {
		if err := v.ValidateIndex(raw); err != nil {
			return fullname.Fullname{}, err
		}
	} else if err := v.Validate(raw); err != nil {
		return fullname.Fullname{}, err
	}

	f := fullname.New(cfg)
	first, err := names.First(raw[idx.FirstName])
	if err != nil {
		return f, err
	}
	last, err := names.Last(raw[idx.LastName], "", cfg.Surname())
	if err != nil {
		return f, err
	}
	if f, err = f.SetFirstName(first); err != nil {
		return f, err
	}
	if f, err = f.SetLastName(last); err != nil {
		return f, err
	}
	if len(raw) >= 3 {
		var middles []names.Name
		for _, tok := range splitMiddle(raw[idx.MiddleName], cfg.Separator().Token()) {
			m, err := names.Middle(tok)
			if err != nil {
				return f, err
			}
			middles = append(middles, m)
		}
		if f, err = f.SetMiddleName(middles); err != nil {
			return f, err
		}
	}
	if len(raw) >= 4 {
		pre, err := names.Prefix(raw[idx.Prefix])
		if err != nil {
			return f, err
		}
		if f, err = f.SetPrefix(pre); err != nil {
			return f, err
		}
	}
	if len(raw) == 5 {
		suf, err := names.Suffix(raw[idx.Suffix])
		if err != nil {
			return f, err
		}
		if f, err = f.SetSuffix(suf); err != nil {
			return f, err
		}
	}
	return f, nil
}

func splitMiddle(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}
	var out []string
	for _, tok := range strings.Split(s, sep) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		return []string{s}
	}
	return out
}

// ArrayNameParser groups 2-5 pre-tagged parts by kind.
type ArrayNameParser struct{ raw []names.Name }

func NewNames(parts []names.Name) *ArrayNameParser {
	return &ArrayNameParser{raw: append([]names.Name(nil), parts...)}
}

func (p *ArrayNameParser) Raw() any { return append([]names.Name(nil), p.raw...) }

func (p *ArrayNameParser) Parse(cfg *config.Config) (fullname.Fullname, error) {
	v := validate.ArrayName{}
	if cfg.Bypass() {
		if err := v.ValidateIndex(p.raw); err != nil {
			return fullname.Fullname{}, err
		}
	} else if err := v.Validate(p.raw); err != nil {
		return fullname.Fullname{}, err
	}
	return Assemble(p.raw, cfg)
}

// Assemble distributes typed parts into a container. Middle names keep their
// order; a last name keeps its father/mother parts but takes the configured
// surname style. Only the first+last rule is checked, not arity.
func Assemble(parts []names.Name, cfg *config.Config) (fullname.Fullname, error) {
	if err := validate.RequireFirstAndLast(parts); err != nil {
		return fullname.Fullname{}, err
	}
	f := fullname.New(cfg)
	var middles []names.Name
	var err error
	for _, n := range parts {
		switch n.Kind() {
		case names.PrefixKind:
			f, err = f.SetPrefix(n)
		case names.SuffixKind:
			f, err = f.SetSuffix(n)
		case names.FirstNameKind:
			f, err = f.SetFirstName(n)
		case names.MiddleNameKind:
			middles = append(middles, n)
		case names.LastNameKind:
			f, err = f.SetLastName(n.WithSurname(cfg.Surname()))
		}
		if err != nil {
			return fullname.Fullname{}, err
		}
	}
	if len(middles) > 0 {
		if f, err = f.SetMiddleName(middles); err != nil {
			return fullname.Fullname{}, err
		}
	}
	return f, nil
}

// Nama is the key-value input shape: role keys ("prefix", "firstName",
// "middleName", "lastName", "suffix") to values.
type Nama map[string]any

// NamaParser parses a Nama.
type NamaParser struct{ raw Nama }

func NewNama(m Nama) *NamaParser {
	cp := make(Nama, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return &NamaParser{raw: cp}
}

func (p *NamaParser) Raw() any { return p.raw }

func (p *NamaParser) Parse(cfg *config.Config) (fullname.Fullname, error) {
	m := sanitize.CleanMap(p.raw)
	v := validate.Nama{}
	if cfg.Bypass() {
		if err := v.ValidateKeys(m); err != nil {
			return fullname.Fullname{}, err
		}
	} else if err := v.Validate(m); err != nil {
		return fullname.Fullname{}, err
	}
	return fullname.FromMap(m, cfg)
}

// Build picks a parser for free text split on spaces. With an index, tokens
// are taken at its positions. Otherwise 2-3 tokens go to the string parser and
// longer input becomes first name, one collapsed middle name and last name;
// prefixes and suffixes are not detected on that path.
func Build(text string, index *names.Index) (Parser, error) {
	text = strings.TrimSpace(text)
	parts := strings.Split(text, " ")
	if index != nil {
		positions := index.Positions()
		var list []names.Name
		for _, kind := range names.Namons() {
			pos := positions[kind]
			if pos < 0 || pos >= len(parts) {
				continue
			}
			n, err := names.New(parts[pos], kind)
			if err != nil {
				return nil, err
			}
			list = append(list, n)
		}
		return NewNames(list), nil
	}
	switch n := len(parts); {
	case n < 2:
		return nil, nameerr.Input(text, "cannot build from invalid input")
	case n <= 3:
		return NewString(text), nil
	default:
		first, err := names.First(parts[0])
		if err != nil {
			return nil, err
		}
		middle, err := names.Middle(strings.Join(parts[1:n-1], " "))
		if err != nil {
			return nil, err
		}
		last, err := names.Last(parts[n-1], "", config.Father)
		if err != nil {
			return nil, err
		}
		return NewNames([]names.Name{first, middle, last}), nil
	}
}

// TryBuild is Build with errors discarded; it returns nil on failure.
func TryBuild(text string, index *names.Index) Parser {
	p, err := Build(text, index)
	if err != nil {
		return nil
	}
	return p
}

// ParseContext runs p synchronously once ctx is still live.
func ParseContext(ctx context.Context, p Parser, cfg *config.Config) (fullname.Fullname, error) {
	if err := ctx.Err(); err != nil {
		return fullname.Fullname{}, err
	}
	return p.Parse(cfg)
}
