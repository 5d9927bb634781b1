package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "something minty", domain.NormalizeText("  Something   MINTY \n"))
	require.Equal(t, "a b c", domain.NormalizeText("a\tb\nc"))
	require.Equal(t, "", domain.NormalizeText("   "))
}

func TestCacheKey(t *testing.T) {
	key := domain.CacheKey("embedding", "something minty")

	require.Contains(t, key, "cache:embedding:")
	// sha256 hex digest after the prefix.
	require.Len(t, key, len("cache:embedding:")+64)

	// Deterministic for identical inputs, distinct across purposes and texts.
	require.Equal(t, key, domain.CacheKey("embedding", "something minty"))
	require.NotEqual(t, key, domain.CacheKey("search", "something minty"))
	require.NotEqual(t, key, domain.CacheKey("embedding", "something sour"))
}

func TestVectorCodec_RoundTrip(t *testing.T) {
	original := []float64{0.12345, -0.98765, 0, 1, -1, 0.000001}

	decoded, err := domain.DecodeVector(domain.EncodeVector(original))
	require.NoError(t, err)
	require.Len(t, decoded, len(original))

	// Storage is float32, so equality holds only within float32 precision.
	for i := range original {
		require.InDelta(t, original[i], decoded[i], 1e-6)
	}
}

func TestDecodeVector_InvalidLength(t *testing.T) {
	_, err := domain.DecodeVector([]byte{1, 2, 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid vector payload length")
}

func TestDecodeVector_Empty(t *testing.T) {
	vec, err := domain.DecodeVector(nil)
	require.NoError(t, err)
	require.Empty(t, vec)
}
