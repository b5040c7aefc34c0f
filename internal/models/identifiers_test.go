package models

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionID(t *testing.T) {
	t.Run("matches expected format", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			id := NewTransactionID()
			assert.Regexp(t, TransactionIDPattern, id)
			assert.Len(t, id, 19)
		}
	})

	t.Run("no duplicates across many generations", func(t *testing.T) {
		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			id := NewTransactionID()
			_, dup := seen[id]
			require.False(t, dup, "duplicate transaction id %s", id)
			seen[id] = struct{}{}
		}
	})
}

func TestNewTDTNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		num := NewTDTNumber(2025)
		parts := strings.Split(num, "-")
		require.Len(t, parts, 3)
		assert.Equal(t, "TDT", parts[0])
		assert.Equal(t, "2025", parts[1])
		require.Len(t, parts[2], 6)

		n, err := strconv.Atoi(parts[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
