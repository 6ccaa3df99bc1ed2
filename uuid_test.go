package uuidcodec_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwnedgod/uuidcodec"
)

func TestFromHalves(t *testing.T) {
	cases := []struct {
		msb, lsb uint64
		expected string
	}{
		{0, 0, "00000000-0000-0000-0000-000000000000"},
		{9, 9, "00000000-0000-0009-0000-000000000009"},
		{0x550e8400e29b41d4, 0xa716446655440000, "550e8400-e29b-41d4-a716-446655440000"},
		{^uint64(0), ^uint64(0), "ffffffff-ffff-ffff-ffff-ffffffffffff"},
	}

	for _, c := range cases {
		u := uuidcodec.FromHalves(c.msb, c.lsb)
		assert.Equal(t, c.expected, u.String())

		msb, lsb := uuidcodec.Halves(u)
		assert.Equal(t, c.msb, msb)
		assert.Equal(t, c.lsb, lsb)
	}
}

func TestParseCanonical(t *testing.T) {
	u, err := uuidcodec.ParseCanonical(origText)
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse(origText), u)
	assert.Equal(t, origText, u.String())
}

func TestParseCanonicalRejectsAlternateForms(t *testing.T) {
	// All of these are accepted by uuid.Parse.
	inputs := []string{
		"550e8400e29b41d4a716446655440000",
		"{550e8400-e29b-41d4-a716-446655440000}",
		"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
	}

	for _, in := range inputs {
		_, err := uuid.Parse(in)
		require.NoError(t, err)

		_, err = uuidcodec.ParseCanonical(in)
		assert.ErrorIs(t, err, uuidcodec.ErrMalformedValue, in)
	}
}

func TestMalformedValueError(t *testing.T) {
	_, err := uuidcodec.ParseCanonical("not-a-uuid")

	var malformed *uuidcodec.MalformedValueError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "not-a-uuid", malformed.Input)
	assert.Equal(t, "length", malformed.Category())
	assert.Equal(t, `malformed uuid "not-a-uuid" (got 10 characters, want 36)`, err.Error())
	assert.NotErrorIs(t, err, uuidcodec.ErrConfigurationConflict)
}

func TestMalformedValueErrorUnwrapsCause(t *testing.T) {
	_, err := uuidcodec.ParseCanonical("550e8400-e29b-41d4-a716-44665544000g")
	require.Error(t, err)

	var malformed *uuidcodec.MalformedValueError
	require.ErrorAs(t, err, &malformed)
	assert.Error(t, malformed.Unwrap())
}

func TestMustParseCanonical(t *testing.T) {
	assert.NotPanics(t, func() { uuidcodec.MustParseCanonical(origText) })
	assert.Panics(t, func() { uuidcodec.MustParseCanonical("not-a-uuid") })
}
