package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namefully/src/internal/config"
	"namefully/src/internal/nameerr"
	"namefully/src/internal/names"
	"namefully/src/internal/validate"
)

func TestNamon_Content(t *testing.T) {
	ok := []string{"John", "O'Connor", "Jean-Luc", "De la Cruz", "Ñuñez", "Иван", "Άλφα", "Zoë"}
	for _, v := range ok {
		assert.NoError(t, validate.Namon{}.Validate(v), v)
	}
	bad := []string{"John1", "Jo_hn", "J@ne", "-John", "John-", "Jo--hn", ""}
	for _, v := range bad {
		err := validate.Namon{}.Validate(v)
		require.Error(t, err, v)
		assert.True(t, errors.Is(err, nameerr.ErrValidation), v)
	}
}

func TestValidators_WrongShape(t *testing.T) {
	vs := []validate.Validator{validate.Namon{}, validate.Title{}, validate.FirstName{}, validate.MiddleName{}, validate.LastName{}}
	for _, v := range vs {
		err := v.Validate(map[string]string{"a": "b"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, nameerr.ErrInput))
	}
}

func TestTitle_AllowsPeriods(t *testing.T) {
	for _, v := range []string{"Mr", "Mr.", "Ph.D", "Ph.D.", "Jr."} {
		assert.NoError(t, validate.Title{}.Validate(v), v)
	}
	assert.Error(t, validate.Title{}.Validate("Dr.."))
	assert.Error(t, validate.Title{}.Validate("3rd"))
}

func TestTypedParts(t *testing.T) {
	first, _ := names.First("John", "B4n")
	err := validate.FirstName{}.Validate(first)
	require.Error(t, err)
	var ne *nameerr.Error
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "firstName", ne.NameType)

	last, _ := names.Last("Smith", "D0e", config.Father)
	assert.Error(t, validate.LastName{}.Validate(last))

	mid, _ := names.Middle("Ben")
	assert.NoError(t, validate.MiddleName{}.Validate([]names.Name{mid}))
	assert.NoError(t, validate.MiddleName{}.Validate([]string{"Ben", "Carl"}))
	assert.Error(t, validate.MiddleName{}.Validate([]string{"Ben", "C4rl"}))
	assert.Error(t, validate.MiddleName{}.Validate([]names.Name{first}), "wrong kind")
	assert.Error(t, validate.Name(first))
}

func TestArrayString(t *testing.T) {
	v := validate.ArrayString{Index: names.IndexFor(config.ByFirstName, 3)}
	assert.NoError(t, v.Validate([]string{"John", "Ben", "Smith"}))
	assert.True(t, errors.Is(v.Validate([]string{"John", "B3n", "Smith"}), nameerr.ErrValidation))
	assert.True(t, errors.Is(v.ValidateIndex([]string{"John"}), nameerr.ErrInput))
	assert.True(t, errors.Is(v.ValidateIndex([]string{"a", "b", "c", "d", "e", "f"}), nameerr.ErrInput))
	assert.NoError(t, v.ValidateIndex([]string{"J0hn", "Smith"}), "index check ignores content")
}

func TestArrayName(t *testing.T) {
	first, _ := names.First("John")
	last, _ := names.Last("Smith", "", config.Father)
	mid, _ := names.Middle("Ben")
	v := validate.ArrayName{}
	assert.NoError(t, v.Validate([]names.Name{first, mid, last}))
	assert.True(t, errors.Is(v.ValidateIndex([]names.Name{first, mid}), nameerr.ErrInput))
	assert.True(t, errors.Is(v.ValidateIndex([]names.Name{first}), nameerr.ErrInput))
	assert.True(t, errors.Is(v.ValidateIndex([]names.Name{first, mid, mid, mid, mid, last}), nameerr.ErrInput))
}

func TestNama(t *testing.T) {
	v := validate.Nama{}
	assert.NoError(t, v.Validate(map[string]any{"firstName": "John", "lastName": "Smith", "middleName": []any{"Ben"}}))
	assert.True(t, errors.Is(v.ValidateKeys(map[string]any{}), nameerr.ErrInput))
	assert.True(t, errors.Is(v.ValidateKeys(map[string]any{"firstName": "John"}), nameerr.ErrInput))
	assert.True(t, errors.Is(v.ValidateKeys(map[string]any{"firstName": "John", "suffix": "Jr"}), nameerr.ErrInput))
	assert.True(t, errors.Is(v.ValidateKeys(map[string]any{"firstName": "John", "lastName": "Smith", "nick": "Jo"}), nameerr.ErrInput))
	assert.True(t, errors.Is(v.Validate(map[string]any{"firstName": "J0hn", "lastName": "Smith"}), nameerr.ErrValidation))
	assert.True(t, errors.Is(v.Validate(map[string]any{"firstName": 42, "lastName": "Smith"}), nameerr.ErrInput))
}
