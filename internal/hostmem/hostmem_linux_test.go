//go:build linux

package hostmem

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryReportsRAM(t *testing.T) {
	lim, err := Query()
	require.NoError(t, err)
	assert.NotZero(t, lim.TotalRAM)
}

func TestCheckRefusesAbsurdSize(t *testing.T) {
	err := Check(math.MaxUint64)
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}
