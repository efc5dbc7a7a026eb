package namefully

import (
	"fmt"

	"namefully/src/internal/config"
	"namefully/src/internal/nameerr"
	"namefully/src/internal/names"
	"namefully/src/internal/schema"
)

// Serialize captures the parts and the configuration values of n.
func (n *Namefully) Serialize() schema.Snapshot {
	s := schema.Snapshot{Config: schema.ConfigOf(n.cfg.Values())}
	s.Names.Prefix = n.Prefix()
	first := n.fn.FirstName()
	s.Names.FirstName = schema.FirstName{Value: first.Value(), More: first.More()}
	for _, m := range n.fn.MiddleName() {
		s.Names.MiddleName = append(s.Names.MiddleName, m.Value())
	}
	last := n.fn.LastName()
	s.Names.LastName = schema.LastName{Father: last.Father(), Mother: last.Mother()}
	s.Names.Suffix = n.Suffix()
	return s
}

// Deserialize rebuilds a name from a snapshot given as a schema.Snapshot (or
// pointer), JSON or YAML text ([]byte or string) or decoded generic data. The
// snapshot's configuration is merged into the registry chosen by opts.
// Taxonomy errors pass through; anything else becomes an UnknownError.
func Deserialize(input any, opts ...Option) (*Namefully, error) {
	n, err := deserialize(input, opts)
	if err != nil {
		return nil, nameerr.Wrap(err, sourceOf(input), "could not deserialize")
	}
	return n, nil
}

func deserialize(input any, opts []Option) (*Namefully, error) {
	snap, err := snapshotOf(input)
	if err != nil {
		return nil, err
	}
	if snap.Config != nil {
		o, err := snap.Config.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithOptions(o))
	}
	cfg := resolve(opts)
	if value, role, ok := mononymOf(snap.Names); ok {
		return FromMononym(value, role, WithConfig(cfg))
	}
	parts, err := partsOf(snap.Names, cfg.Surname())
	if err != nil {
		return nil, err
	}
	return NewBuilder(Hooks{}, parts...).Build(WithConfig(cfg))
}

func snapshotOf(input any) (schema.Snapshot, error) {
	switch v := input.(type) {
	case schema.Snapshot:
		return v, v.Validate()
	case *schema.Snapshot:
		if v == nil {
			return schema.Snapshot{}, nameerr.Input("nil", "snapshot must not be nil")
		}
		return *v, v.Validate()
	case []byte:
		return schema.Decode(v)
	case string:
		return schema.Decode([]byte(v))
	case map[string]any:
		return schema.FromMap(v)
	}
	return schema.Snapshot{}, nameerr.Input(fmt.Sprintf("%T", input), "unsupported snapshot type")
}

// mononymOf reports whether s holds a mononym: a placeholder in the first or
// last slot, the value in the slot of its role.
func mononymOf(s schema.Names) (string, names.Namon, bool) {
	if s.FirstName.Value != names.ZeroWidthSpace && s.LastName.Father != names.ZeroWidthSpace {
		return "", "", false
	}
	switch {
	case s.FirstName.Value != names.ZeroWidthSpace:
		return s.FirstName.Value, names.FirstNameKind, true
	case s.LastName.Father != names.ZeroWidthSpace:
		return s.LastName.Father, names.LastNameKind, true
	case len(s.MiddleName) > 0:
		return s.MiddleName[0], names.MiddleNameKind, true
	case s.Prefix != "":
		return s.Prefix, names.PrefixKind, true
	}
	return s.Suffix, names.SuffixKind, true
}

func partsOf(s schema.Names, surname config.Surname) ([]names.Name, error) {
	var parts []names.Name
	add := func(n names.Name, err error) error {
		if err != nil {
			return err
		}
		parts = append(parts, n)
		return nil
	}
	if s.Prefix != "" {
		if err := add(names.Prefix(s.Prefix)); err != nil {
			return nil, err
		}
	}
	if err := add(names.First(s.FirstName.Value, s.FirstName.More...)); err != nil {
		return nil, err
	}
	for _, m := range s.MiddleName {
		if err := add(names.Middle(m)); err != nil {
			return nil, err
		}
	}
	if err := add(names.Last(s.LastName.Father, s.LastName.Mother, surname)); err != nil {
		return nil, err
	}
	if s.Suffix != "" {
		if err := add(names.Suffix(s.Suffix)); err != nil {
			return nil, err
		}
	}
	return parts, nil
}

func sourceOf(input any) string {
	switch v := input.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	}
	return fmt.Sprintf("%v", input)
}
