package money

import (
	"testing"

	"github.com/minibank-ledger/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitConverter_ToMinorUnits(t *testing.T) {
	converter := NewMinorUnitConverter()

	t.Run("ConvertsWholeAmounts", func(t *testing.T) {
		minor, err := converter.ToMinorUnits(1500.00)
		require.NoError(t, err)
		assert.Equal(t, int64(150000), minor)
	})

	t.Run("RoundsToNearestMinorUnit", func(t *testing.T) {
		minor, err := converter.ToMinorUnits(10.005)
		require.NoError(t, err)
		assert.Equal(t, int64(1001), minor)

		minor, err = converter.ToMinorUnits(10.004)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), minor)
	})

	t.Run("RejectsZero", func(t *testing.T) {
		_, err := converter.ToMinorUnits(0)
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
	})

	t.Run("RejectsSubMinorUnitValues", func(t *testing.T) {
		_, err := converter.ToMinorUnits(0.004)
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
	})

	t.Run("PassesNegativeValuesThrough", func(t *testing.T) {
		// Negativity is rejected by the operation-specific validation
		// downstream, not by the converter.
		minor, err := converter.ToMinorUnits(-5.00)
		require.NoError(t, err)
		assert.Equal(t, int64(-500), minor)
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1500.00", Format(150000))
	assert.Equal(t, "0.42", Format(42))
	assert.Equal(t, "3.07", Format(307))
	assert.Equal(t, "-0.42", Format(-42))
	assert.Equal(t, "0.00", Format(0))
}
