// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromRows builds a board from three rows of '.', 'X' and 'O'.
func fromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, Size)

	board := New()
	for row, cells := range rows {
		cells = strings.ReplaceAll(cells, " ", "")
		require.Len(t, cells, Size)
		for col, cell := range cells {
			switch cell {
			case 'X':
				require.NoError(t, board.Set(col, row, X))
			case 'O':
				require.NoError(t, board.Set(col, row, O))
			}
		}
	}

	return board
}

func TestBoard_Get(t *testing.T) {
	board := fromRows(t, "X X X", "X X X", "X X X")

	assert.Equal(t, X, board.Get(0, 0))
	assert.Equal(t, X, board.Get(2, 2))
	for _, cell := range []Square{{-1, 0}, {0, -1}, {Size, 0}, {0, Size}, {5, 5}} {
		assert.Equal(t, Empty, board.Get(cell.Col, cell.Row), "cell %d,%d", cell.Col, cell.Row)
	}
}

func TestBoard_Set(t *testing.T) {
	t.Run("New board is empty", func(t *testing.T) {
		board := New()

		assert.Equal(t, Empty, board.Get(1, 1))
		assert.False(t, board.IsFull())
	})

	t.Run("Marks a cell", func(t *testing.T) {
		board := New()

		require.NoError(t, board.Set(1, 1, X))
		assert.Equal(t, X, board.Get(1, 1))
	})

	t.Run("Cell can be marked only once", func(t *testing.T) {
		board := New()
		require.NoError(t, board.Set(1, 1, X))

		assert.ErrorIs(t, board.Set(1, 1, X), ErrIllegalMove)
		assert.ErrorIs(t, board.Set(1, 1, O), ErrIllegalMove)
		assert.Equal(t, X, board.Get(1, 1))
	})

	t.Run("Only X or O can be placed", func(t *testing.T) {
		board := New()

		assert.ErrorIs(t, board.Set(1, 1, Empty), ErrIllegalMove)
		assert.ErrorIs(t, board.Set(1, 1, Mark(7)), ErrIllegalMove)
		assert.Equal(t, Empty, board.Get(1, 1))
	})

	t.Run("Cells outside the board are rejected", func(t *testing.T) {
		board := New()

		assert.ErrorIs(t, board.Set(3, 0, X), ErrIllegalMove)
		assert.ErrorIs(t, board.Set(0, -1, O), ErrIllegalMove)
	})

	t.Run("MakeMove places the move's mark", func(t *testing.T) {
		board := New()

		require.NoError(t, board.MakeMove(Move{Square{2, 0}, O}))
		assert.Equal(t, O, board.Get(2, 0))
	})
}

func TestBoard_IsFull(t *testing.T) {
	assert.False(t, fromRows(t, "XOX", ".O.", "..O").IsFull())
	assert.True(t, fromRows(t, "OXO", "XXO", "XOX").IsFull())
}

func TestBoard_String(t *testing.T) {
	board := fromRows(t, "XOX", ".O.", "..O")

	assert.Equal(t, "  X O X\n  . O .\n  . . O\n", board.String())
	assert.Regexp(t, `\A(\s*[.XO]){9}\s*\z`, board.String())
}

func TestMark(t *testing.T) {
	assert.Equal(t, O, X.Other())
	assert.Equal(t, X, O.Other())
	assert.Equal(t, Empty, Empty.Other())

	assert.Equal(t, 0, X.Index())
	assert.Equal(t, 1, O.Index())

	assert.Equal(t, ".", Empty.String())
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
}
