package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFeatures_RoundTrip(t *testing.T) {
	in := []string{"a", "b", "c"}

	raw, err := encodeFeatures(in)
	require.NoError(t, err)
	assert.Equal(t, `["a","b","c"]`, raw)

	out, err := decodeFeatures(&raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFeatures_PreservesOrderAndContent(t *testing.T) {
	in := []string{"Private cabin", "Gourmet meals", "Private cabin", "24/7 \"butler\" service", "Zero-G ☄"}

	raw, err := encodeFeatures(in)
	require.NoError(t, err)

	out, err := decodeFeatures(&raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFeatures_EmptyValues(t *testing.T) {
	raw, err := encodeFeatures(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	raw, err = encodeFeatures([]string{})
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	for _, blob := range []*string{nil, strPtr(""), strPtr("  "), strPtr("[]"), strPtr("null")} {
		out, err := decodeFeatures(blob)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestFeatures_CorruptBlob(t *testing.T) {
	_, err := decodeFeatures(strPtr("Basic life support, Shared quarters"))
	assert.Error(t, err)
}
