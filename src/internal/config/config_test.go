package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namefully/src/internal/config"
)

func TestCreate_DefaultsAndIdentity(t *testing.T) {
	r := config.NewRegistry()
	c := r.Create("")
	require.Equal(t, config.DefaultName, c.Name())
	assert.Equal(t, config.ByFirstName, c.OrderedBy())
	assert.Equal(t, config.Space, c.Separator())
	assert.Equal(t, config.UK, c.Title())
	assert.False(t, c.Ending())
	assert.True(t, c.Bypass())
	assert.Equal(t, config.Father, c.Surname())

	assert.Same(t, c, r.Create(config.DefaultName))
	assert.Equal(t, 1, r.Len())
}

func TestMerge_WritesIntoCache(t *testing.T) {
	r := config.NewRegistry()
	c := r.Merge(config.Options{Name: "latin", OrderedBy: config.ByLastName, Bypass: config.Bool(false)})
	assert.Equal(t, config.ByLastName, c.OrderedBy())
	assert.False(t, c.Bypass())
	assert.Equal(t, config.UK, c.Title(), "unset fields keep defaults")

	again := r.Merge(config.Options{Name: "latin", Title: config.US})
	assert.Same(t, c, again)
	assert.Equal(t, config.ByLastName, again.OrderedBy())
	assert.Equal(t, config.US, again.Title())
}

func TestCopyWith_UniqueNames(t *testing.T) {
	r := config.NewRegistry()
	base := r.Merge(config.Options{Name: "base", Surname: config.Hyphenated})
	c1 := base.CopyWith(config.Options{OrderedBy: config.ByLastName})
	c2 := base.CopyWith(config.Options{})
	assert.Equal(t, "base_copy", c1.Name())
	assert.Equal(t, "base_copy_copy", c2.Name())
	assert.Equal(t, config.Hyphenated, c1.Surname())
	assert.Equal(t, config.ByLastName, c1.OrderedBy())
	assert.Equal(t, config.ByFirstName, base.OrderedBy(), "ancestor untouched")

	named := base.CopyWith(config.Options{Name: "base"})
	assert.Equal(t, "base_copy_copy_copy", named.Name())
	assert.ElementsMatch(t, []string{"base", "base_copy", "base_copy_copy", "base_copy_copy_copy"}, r.Names())
}

func TestUpdateAndReset(t *testing.T) {
	r := config.NewRegistry()
	c := r.Create("x")
	c.Update(config.UpdateOptions{OrderedBy: config.ByLastName, Title: config.US, Ending: config.Bool(true)})
	shared := r.Create("x")
	assert.Equal(t, config.ByLastName, shared.OrderedBy())
	assert.Equal(t, config.US, shared.Title())
	assert.True(t, shared.Ending())

	c.Reset()
	assert.Equal(t, config.Defaults("x"), shared.Values())

	r.Remove("x")
	c.Update(config.UpdateOptions{OrderedBy: config.ByLastName})
	assert.Equal(t, config.ByFirstName, c.OrderedBy(), "update is a no-op once the entry is gone")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := config.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := r.Create("shared")
			c.Update(config.UpdateOptions{OrderedBy: config.ByFirstName.Flip()})
			_ = c.OrderedBy()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, r.Len())
}

func TestParseEnums(t *testing.T) {
	o, err := config.ParseOrder("last")
	require.NoError(t, err)
	assert.Equal(t, config.ByLastName, o)
	_, err = config.ParseOrder("middle")
	assert.Error(t, err)

	s, err := config.ParseSeparator(",")
	require.NoError(t, err)
	assert.Equal(t, config.Comma, s)
	s, err = config.ParseSeparator("underscore")
	require.NoError(t, err)
	assert.Equal(t, "_", s.Token())

	ti, err := config.ParseTitle("us")
	require.NoError(t, err)
	assert.Equal(t, config.US, ti)

	sn, err := config.ParseSurname("Hyphenated")
	require.NoError(t, err)
	assert.Equal(t, config.Hyphenated, sn)
	_, err = config.ParseSurname("uncle")
	assert.Error(t, err)
}
