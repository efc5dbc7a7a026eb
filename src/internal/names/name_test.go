package names_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namefully/src/internal/config"
	"namefully/src/internal/nameerr"
	"namefully/src/internal/names"
)

func TestNew_RejectsShortTokens(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (names.Name, error)
	}{
		{"Prefix", func() (names.Name, error) { return names.Prefix("M") }},
		{"FirstBlank", func() (names.Name, error) { return names.First("  J ") }},
		{"FirstMore", func() (names.Name, error) { return names.First("John", "B") }},
		{"LastMother", func() (names.Name, error) { return names.Last("Smith", "D", config.Father) }},
		{"UnknownKind", func() (names.Name, error) { return names.New("John", names.Namon("nickname")) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, nameerr.ErrInput), "got %v", err)
		})
	}
}

func TestFirstName_RenderAndInitials(t *testing.T) {
	n, err := names.First("John", "Ben", "Carl")
	require.NoError(t, err)
	assert.Equal(t, "John", n.String())
	assert.Equal(t, "John Ben Carl", n.Render(names.Flags{WithMore: true}))
	assert.Equal(t, []string{"J"}, n.Initials(names.Flags{}))
	assert.Equal(t, []string{"J", "B", "C"}, n.Initials(names.Flags{WithMore: true}))
	assert.True(t, n.HasMore())
	assert.Equal(t, 4, n.Len())
}

func TestLastName_JoinStyles(t *testing.T) {
	n, err := names.Last("Garcia", "Lopez", config.Father)
	require.NoError(t, err)
	cases := []struct {
		style    config.Surname
		text     string
		initials []string
	}{
		{config.Father, "Garcia", []string{"G"}},
		{config.Mother, "Lopez", []string{"L"}},
		{config.Hyphenated, "Garcia-Lopez", []string{"G", "L"}},
		{config.All, "Garcia Lopez", []string{"G", "L"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.style), func(t *testing.T) {
			f := names.Flags{Surname: tc.style}
			assert.Equal(t, tc.text, n.Render(f))
			assert.Equal(t, tc.initials, n.Initials(f))
			assert.Equal(t, tc.text, n.WithSurname(tc.style).String())
		})
	}

	solo, err := names.Last("Smith", "", config.Mother)
	require.NoError(t, err)
	assert.Equal(t, "", solo.String())
	assert.Empty(t, solo.Initials(names.Flags{}))
	assert.Equal(t, "Smith", solo.Render(names.Flags{Surname: config.Hyphenated}))
}

func TestCaps_ReturnsNewValue(t *testing.T) {
	n, err := names.First("jOHN", "bEN")
	require.NoError(t, err)
	c := n.Caps(names.CapsInitial)
	assert.Equal(t, "John Ben", c.Render(names.Flags{WithMore: true}))
	assert.Equal(t, "jOHN", n.Value(), "original untouched")
	assert.Equal(t, "JOHN BEN", n.Caps(names.CapsAll).Render(names.Flags{WithMore: true}))
	assert.Equal(t, "john ben", n.Decaps(names.CapsAll).Render(names.Flags{WithMore: true}))
	assert.Equal(t, "john", c.Decaps(names.CapsInitial).Value())
	assert.Equal(t, "jOHN", n.Caps(names.CapsAll).Decaps(names.CapsInitial).Value())
	assert.Equal(t, n, n.Caps(names.CapsNone))

	l, err := names.Last("smith", "doe", config.All)
	require.NoError(t, err)
	assert.Equal(t, "Smith Doe", l.Caps(names.CapsInitial).String())
}

func TestEqual_IsStrict(t *testing.T) {
	a, _ := names.Middle("Ben")
	b, _ := names.Middle("Ben")
	c, _ := names.Middle("ben")
	d, _ := names.Suffix("Ben")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestPlaceholder(t *testing.T) {
	p := names.Placeholder(names.FirstNameKind)
	assert.True(t, p.IsPlaceholder())
	assert.True(t, p.IsFirstName())
	assert.Equal(t, names.ZeroWidthSpace, p.String())
	assert.Equal(t, p, p.Caps(names.CapsAll))
	assert.Equal(t, p, p.Caps(names.CapsInitial))
	assert.Equal(t, p, p.Decaps(names.CapsAll))
	assert.Equal(t, names.CapsNone, p.Caps(names.CapsAll).CapsRange())
}

func TestIndexFor(t *testing.T) {
	assert.Equal(t, names.Index{0, 1, 2, 3, 4}, names.IndexFor(config.ByFirstName, 5))
	assert.Equal(t, names.Index{0, 2, 3, 1, 4}, names.IndexFor(config.ByLastName, 5))
	assert.Equal(t, names.Index{-1, 1, 2, 0, -1}, names.IndexFor(config.ByLastName, 3))
	assert.Equal(t, names.BaseIndex(), names.IndexFor(config.ByFirstName, 9))
	assert.Equal(t, 3, names.IndexFor(config.ByFirstName, 4).Positions()[names.LastNameKind])
}

func TestParseNamon(t *testing.T) {
	k, ok := names.ParseNamon("MiddleName")
	assert.True(t, ok)
	assert.Equal(t, names.MiddleNameKind, k)
	_, ok = names.ParseNamon("nickname")
	assert.False(t, ok)
	assert.Len(t, names.Namons(), 5)
}
