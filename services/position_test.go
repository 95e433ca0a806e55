package services

import (
	"testing"

	"picboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendPosition(t *testing.T) {
	t.Run("empty pool starts at one", func(t *testing.T) {
		assert.Equal(t, 1.0, AppendPosition(nil))
	})

	t.Run("appends go past the current maximum", func(t *testing.T) {
		max := 3.0
		assert.Equal(t, 4.0, AppendPosition(&max))
	})

	t.Run("fractional maximum is floored first", func(t *testing.T) {
		max := 2.5
		assert.Equal(t, 3.0, AppendPosition(&max))
	})
}

func TestMovePosition(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		oldIndex  int
		newIndex  int
		want      float64
	}{
		{
			name:      "move to front lands below the first",
			positions: []float64{1, 2, 3},
			oldIndex:  2,
			newIndex:  0,
			want:      0.5,
		},
		{
			name:      "move to back lands above the last",
			positions: []float64{1, 2, 3},
			oldIndex:  0,
			newIndex:  2,
			want:      4.0,
		},
		{
			name:      "move forward between neighbors",
			positions: []float64{1, 2, 3, 4},
			oldIndex:  0,
			newIndex:  2,
			want:      3.5,
		},
		{
			name:      "move backward between neighbors",
			positions: []float64{1, 2, 3, 4},
			oldIndex:  3,
			newIndex:  1,
			want:      1.5,
		},
		{
			name:      "same slot keeps the current position",
			positions: []float64{1, 2, 3},
			oldIndex:  1,
			newIndex:  1,
			want:      2.0,
		},
		{
			name:      "fractional neighbors bisect",
			positions: []float64{1, 1.5, 2},
			oldIndex:  2,
			newIndex:  1,
			want:      1.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MovePosition(tt.positions, tt.oldIndex, tt.newIndex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("moved rows stay ordered", func(t *testing.T) {
		positions := []float64{1, 2, 3}
		got, err := MovePosition(positions, 2, 0)
		require.NoError(t, err)
		assert.Less(t, got, positions[0])
	})

	t.Run("out of range indices are not found", func(t *testing.T) {
		for _, pair := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := MovePosition([]float64{1, 2, 3}, pair[0], pair[1])
			require.Error(t, err)
			assert.IsType(t, models.ErrorNotFound{}, err)
		}
	})
}
