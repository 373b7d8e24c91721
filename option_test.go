package contains

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	require.Equal(t, true, Some(3).Contains(3))
	require.Equal(t, false, Some(3).Contains(4))
	require.Equal(t, false, None[int]().Contains(3))
	require.Equal(t, false, None[int]().Contains(0))
}

func TestResult(t *testing.T) {
	require.Equal(t, true, Ok(3).Contains(3))
	require.Equal(t, false, Ok(3).Contains(4))
	e := Err[int](errors.New("boom"))
	require.Equal(t, false, e.Contains(3))
	require.Equal(t, false, e.Contains(0))
}
