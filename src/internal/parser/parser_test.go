package parser_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namefully/src/internal/config"
	"namefully/src/internal/fullname"
	"namefully/src/internal/nameerr"
	"namefully/src/internal/names"
	"namefully/src/internal/parser"
)

func values(ns []names.Name) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Value())
	}
	return out
}

func TestStringParser_FiveTokens(t *testing.T) {
	cfg := config.NewRegistry().Create("")
	f, err := parser.NewString("Mr John Ben Smith Ph.D").Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Mr", f.Prefix().Value())
	assert.Equal(t, "John", f.FirstName().Value())
	assert.Equal(t, []string{"Ben"}, values(f.MiddleName()))
	assert.Equal(t, "Smith", f.LastName().Value())
	assert.Equal(t, "Ph.D", f.Suffix().Value())
}

func TestStringParser_Separator(t *testing.T) {
	cfg := config.NewRegistry().Merge(config.Options{Separator: config.Comma, OrderedBy: config.ByLastName})
	f, err := parser.NewString("Smith,John,Ben").Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, "John", f.FirstName().Value())
	assert.Equal(t, "Smith", f.LastName().Value())
	assert.Equal(t, []string{"Ben"}, values(f.MiddleName()))
}

func TestArrayStringParser_Orders(t *testing.T) {
	reg := config.NewRegistry()
	byLast := reg.Merge(config.Options{Name: "last", OrderedBy: config.ByLastName})
	f, err := parser.NewStrings([]string{"Dr", "Smith", "John", "Ben", "Jr"}).Parse(byLast)
	require.NoError(t, err)
	assert.Equal(t, "Dr", f.Prefix().Value())
	assert.Equal(t, "Smith", f.LastName().Value())
	assert.Equal(t, "John", f.FirstName().Value())
	assert.Equal(t, []string{"Ben"}, values(f.MiddleName()))
	assert.Equal(t, "Jr", f.Suffix().Value())

	f, err = parser.NewStrings([]string{"John", "Ben Carl", "Smith"}).Parse(reg.Create(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ben", "Carl"}, values(f.MiddleName()))
}

func TestArrayStringParser_Arity(t *testing.T) {
	cfg := config.NewRegistry().Create("")
	for _, tokens := range [][]string{{"John"}, {"a1", "b2", "c3", "d4", "e5", "f6"}} {
		_, err := parser.NewStrings(tokens).Parse(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, nameerr.ErrInput), "%v", tokens)
	}
}

func TestArrayStringParser_Bypass(t *testing.T) {
	reg := config.NewRegistry()
	strict := reg.Merge(config.Options{Name: "strict", Bypass: config.Bool(false)})
	_, err := parser.NewStrings([]string{"J0hn", "Smith"}).Parse(strict)
	assert.True(t, errors.Is(err, nameerr.ErrValidation))
	_, err = parser.NewStrings([]string{"John", "Sm!th"}).Parse(strict)
	assert.True(t, errors.Is(err, nameerr.ErrValidation))

	f, err := parser.NewStrings([]string{"J0hn", "Smith"}).Parse(reg.Create("loose"))
	require.NoError(t, err)
	assert.Equal(t, "J0hn", f.FirstName().Value())
}

func TestArrayNameParser(t *testing.T) {
	cfg := config.NewRegistry().Merge(config.Options{Surname: config.All})
	first, _ := names.First("John", "Paul")
	m1, _ := names.Middle("Ben")
	m2, _ := names.Middle("Carl")
	last, _ := names.Last("Smith", "Doe", config.Father)
	suf, _ := names.Suffix("III")

	f, err := parser.NewNames([]names.Name{suf, m1, last, first, m2}).Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ben", "Carl"}, values(f.MiddleName()))
	assert.Equal(t, "Smith Doe", f.LastName().String(), "configured surname style wins")
	assert.Equal(t, []string{"Paul"}, f.FirstName().More())
	assert.Equal(t, "III", f.Suffix().Value())

	_, err = parser.NewNames([]names.Name{first, m1}).Parse(cfg)
	assert.True(t, errors.Is(err, nameerr.ErrInput))
	_, err = parser.NewNames([]names.Name{first}).Parse(cfg)
	assert.True(t, errors.Is(err, nameerr.ErrInput))
}

func TestNamaParser(t *testing.T) {
	reg := config.NewRegistry()
	f, err := parser.NewNama(parser.Nama{"prefix": "Ms", "firstName": " Jane ", "lastName": "Doe"}).Parse(reg.Create(""))
	require.NoError(t, err)
	assert.Equal(t, "Jane", f.FirstName().Value())
	assert.Equal(t, "Ms", f.Prefix().Value())

	_, err = parser.NewNama(parser.Nama{"firstName": "Jane"}).Parse(reg.Create(""))
	assert.True(t, errors.Is(err, nameerr.ErrInput))
	_, err = parser.NewNama(parser.Nama{"firstName": "Jane", "surname": "Doe"}).Parse(reg.Create(""))
	assert.True(t, errors.Is(err, nameerr.ErrInput))

	strict := reg.Merge(config.Options{Name: "strict", Bypass: config.Bool(false)})
	_, err = parser.NewNama(parser.Nama{"firstName": "Jane", "lastName": "D0e"}).Parse(strict)
	assert.True(t, errors.Is(err, nameerr.ErrValidation))
}

type fixedParser struct{ f fullname.Fullname }

func (p fixedParser) Parse(*config.Config) (fullname.Fullname, error) { return p.f, nil }
func (p fixedParser) Raw() any                                        { return nil }

func TestCustomParserAndContext(t *testing.T) {
	cfg := config.NewRegistry().Create("")
	want, err := parser.NewString("John Smith").Parse(cfg)
	require.NoError(t, err)
	var p parser.Parser = fixedParser{f: want}
	got, err := parser.ParseContext(context.Background(), p, cfg)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName().Value())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = parser.ParseContext(ctx, p, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild(t *testing.T) {
	cfg := config.NewRegistry().Create("")

	p, err := parser.Build("John Smith", nil)
	require.NoError(t, err)
	assert.IsType(t, &parser.StringParser{}, p)

	p, err = parser.Build("Mr John Ben Carl Smith Jr", nil)
	require.NoError(t, err)
	f, err := p.Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Mr", f.FirstName().Value(), "no prefix detection on this path")
	assert.Equal(t, []string{"John Ben Carl Smith"}, values(f.MiddleName()))
	assert.Equal(t, "Jr", f.LastName().Value())

	_, err = parser.Build("Plato", nil)
	assert.True(t, errors.Is(err, nameerr.ErrInput))
	assert.Nil(t, parser.TryBuild("Plato", nil))

	idx := names.Index{Prefix: -1, FirstName: 1, MiddleName: -1, LastName: 0, Suffix: 2}
	p, err = parser.Build("Smith John III", &idx)
	require.NoError(t, err)
	f, err = p.Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, "John", f.FirstName().Value())
	assert.Equal(t, "Smith", f.LastName().Value())
	assert.Equal(t, "III", f.Suffix().Value())
}
