package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
)

func entry(height, queried, vested uint64) domain.BlockTotal {
	return domain.BlockTotal{
		BlockHeight:  height,
		QueriedMicro: queried,
		VestedMicro:  vested,
		TotalMicro:   queried + vested,
	}
}

func TestCheckSeries_Valid(t *testing.T) {
	series := []domain.BlockTotal{
		entry(100, 1000, 0),
		entry(101, 1000, 0),
		entry(102, 1000, 500),
	}
	assert.NoError(t, CheckSeries(series, 100))
}

func TestCheckSeries_Empty(t *testing.T) {
	err := CheckSeries(nil, 100)
	var v *ViolationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, CheckNonEmpty, v.Check)
}

func TestCheckSeries_WrongStartHeight(t *testing.T) {
	series := []domain.BlockTotal{entry(101, 1000, 0)}

	err := CheckSeries(series, 100)
	var v *ViolationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, CheckStartHeight, v.Check)
	assert.Equal(t, 0, v.Index)
}

func TestCheckSeries_HeightGap(t *testing.T) {
	series := []domain.BlockTotal{
		entry(100, 1000, 0),
		entry(102, 1000, 0),
	}

	err := CheckSeries(series, 100)
	var v *ViolationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, CheckHeightStep, v.Check)
	assert.Equal(t, 1, v.Index)
}

func TestCheckSeries_DecreasingTotal(t *testing.T) {
	series := []domain.BlockTotal{
		entry(100, 1000, 0),
		entry(101, 900, 0),
	}

	err := CheckSeries(series, 100)
	var v *ViolationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, CheckMonotonic, v.Check)
}

func TestCheckSeries_TotalIdentity(t *testing.T) {
	broken := entry(100, 1000, 500)
	broken.TotalMicro = 1400

	err := CheckSeries([]domain.BlockTotal{broken}, 100)
	var v *ViolationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, CheckTotalIdentity, v.Check)
	assert.Contains(t, v.Error(), "total_identity")
}

func TestCheckPruned(t *testing.T) {
	assert.NoError(t, CheckPruned([]domain.BlockTotal{
		entry(100, 1000, 0),
		entry(105, 1000, 500),
	}))

	err := CheckPruned([]domain.BlockTotal{
		entry(100, 1000, 0),
		entry(105, 1000, 0),
	})
	var v *ViolationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, CheckMonotonic, v.Check)
}
