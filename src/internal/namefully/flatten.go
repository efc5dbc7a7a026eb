package namefully

import (
	"fmt"
	"slices"
	"strings"

	"namefully/src/internal/config"
	"namefully/src/internal/names"
	"namefully/src/internal/stringsx"
)

// Flat names which roles a flattened name shows as initials.
type Flat string

const (
	FlatFirstName  Flat = "firstName"
	FlatMiddleName Flat = "middleName"
	FlatLastName   Flat = "lastName"
	FlatFirstMid   Flat = "firstMid"
	FlatMidLast    Flat = "midLast"
	FlatAll        Flat = "all"
)

// cascade is the order recursive flattening walks, each step shorter than
// the one before for typical names.
var cascade = []Flat{FlatFirstName, FlatMiddleName, FlatLastName, FlatFirstMid, FlatMidLast, FlatAll}

func ParseFlat(s string) (Flat, error) {
	for _, f := range cascade {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return FlatFirstName, nil
	case "middle", "mid":
		return FlatMiddleName, nil
	case "last":
		return FlatLastName, nil
	}
	return "", fmt.Errorf("invalid flatten variant: %q", s)
}

// FlattenOptions controls Flatten. Use DefaultFlatten for the usual values.
type FlattenOptions struct {
	// Limit is the birth-name length at or below which the full name is
	// returned as is.
	Limit int
	// By selects the roles reduced to initials; empty or unknown means
	// FlatMiddleName.
	By Flat
	// WithPeriod puts a period after each initial.
	WithPeriod bool
	// Recursive moves on to the next variant while the result exceeds Limit.
	Recursive bool
	// WithMore keeps extra given names next to the first name.
	WithMore bool
	// Surname overrides the last name's own style when set.
	Surname config.Surname
}

// DefaultFlatten is a 20 character limit on middle names, with periods.
func DefaultFlatten() FlattenOptions {
	return FlattenOptions{Limit: 20, By: FlatMiddleName, WithPeriod: true}
}

// Flatten returns the full name when the birth name fits o.Limit. Otherwise
// it turns roles of the birth name into initials, dropping prefix and suffix.
// In recursive mode the variants are tried in cascade order starting at o.By,
// and the last attempt is returned even when it is still too long.
func (n *Namefully) Flatten(o FlattenOptions) string {
	if stringsx.Len(n.Birth()) <= o.Limit {
		return n.Full()
	}
	start := slices.Index(cascade, o.By)
	if start < 0 {
		start = slices.Index(cascade, FlatMiddleName)
	}
	if !o.Recursive {
		return n.flatten(cascade[start], o)
	}
	var flat string
	for _, by := range cascade[start:] {
		flat = n.flatten(by, o)
		if stringsx.Len(flat) <= o.Limit {
			break
		}
	}
	return flat
}

// Zip flattens unconditionally; by defaults to FlatMidLast.
func (n *Namefully) Zip(by Flat, withPeriod bool) string {
	if by == "" {
		by = FlatMidLast
	}
	return n.Flatten(FlattenOptions{Limit: 0, By: by, WithPeriod: withPeriod})
}

func (n *Namefully) flatten(by Flat, o FlattenOptions) string {
	sep := ""
	if o.WithPeriod {
		sep = "."
	}
	abbrev := func(initials []string) string {
		if len(initials) == 0 {
			return ""
		}
		return strings.Join(initials, sep+" ") + sep
	}

	fn := n.FirstName(o.WithMore)
	ln := n.LastName(o.Surname)
	mn := strings.Join(n.MiddleName(), " ")
	f := abbrev(initialsOf(n.fn.FirstName(), names.Flags{WithMore: o.WithMore}))
	l := abbrev(initialsOf(n.fn.LastName(), names.Flags{Surname: o.Surname}))
	var mids []string
	for _, m := range n.fn.MiddleName() {
		mids = append(mids, initialsOf(m, names.Flags{})...)
	}
	m := abbrev(mids)

	var first, middle, last string
	switch by {
	case FlatFirstName:
		first, middle, last = f, mn, ln
	case FlatLastName:
		first, middle, last = fn, mn, l
	case FlatFirstMid:
		first, middle, last = f, m, ln
	case FlatMidLast:
		first, middle, last = fn, m, l
	case FlatAll:
		first, middle, last = f, m, l
	default:
		first, middle, last = fn, m, ln
	}
	if n.cfg.OrderedBy() == config.ByLastName {
		return join(last, first, middle)
	}
	return join(first, middle, last)
}
