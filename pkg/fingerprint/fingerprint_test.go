package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eldyj/lambis/pkg/fingerprint"
)

func TestOfIsStableAndLength16(t *testing.T) {
	got := fingerprint.Of("x = 1")
	require.Len(t, got, 16)
	require.Equal(t, got, fingerprint.Of("x = 1"))
}

func TestOfDiffersOnDifferentSource(t *testing.T) {
	require.NotEqual(t, fingerprint.Of("x = 1"), fingerprint.Of("x = 2"))
}
