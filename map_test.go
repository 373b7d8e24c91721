package contains

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	m := Keys[string, int]{"x": 1, "y": 2}
	require.Equal(t, 2, m.Size())
	require.Equal(t, true, m.Contains("x"))
	require.Equal(t, true, m.Contains("y"))
	require.Equal(t, false, m.Contains("z"))
}

func TestKeysNeverMatchValues(t *testing.T) {
	m := Keys[string, string]{"x": "1", "y": "2"}
	require.Equal(t, true, m.Contains("x"))
	require.Equal(t, false, m.Contains("1"))
	require.Equal(t, false, m.Contains("2"))
}
