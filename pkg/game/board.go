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
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns of the board.
const Size = 3

var ErrIllegalMove = errors.New("game: illegal move")

// Square addresses a single cell of the board.
type Square struct {
	Col, Row int
}

func (square Square) valid() bool {
	return square.Col >= 0 && square.Col < Size &&
		square.Row >= 0 && square.Row < Size
}

// Move is a validated placement of a mark. Moves are produced from player
// input and consumed immediately by the match.
type Move struct {
	Square
	Mark Mark
}

// Board is a 3x3 tic-tac-toe board, stored in row-major order. The zero
// value is an empty board.
type Board struct {
	cells [Size][Size]Mark
}

// New returns a new empty board.
func New() *Board {
	return &Board{}
}

// Get returns the mark in the given cell. Cells outside the board are
// always Empty.
func (board *Board) Get(col, row int) Mark {
	if !(Square{col, row}).valid() {
		return Empty
	}

	return board.cells[row][col]
}

// Set places the given mark on the given cell. A cell can be marked only
// once, and only with X or O; anything else fails with ErrIllegalMove.
func (board *Board) Set(col, row int, mark Mark) error {
	if !(Square{col, row}).valid() {
		return fmt.Errorf("%w: cell %d,%d is outside the board", ErrIllegalMove, col, row)
	}

	if !mark.Valid() {
		return fmt.Errorf("%w: invalid mark %q", ErrIllegalMove, mark)
	}

	if board.cells[row][col] != Empty {
		return fmt.Errorf("%w: cell %d,%d is already marked", ErrIllegalMove, col, row)
	}

	board.cells[row][col] = mark
	return nil
}

// MakeMove places the given move on the board.
func (board *Board) MakeMove(move Move) error {
	return board.Set(move.Col, move.Row, move.Mark)
}

// IsFull reports whether no empty cell remains on the board.
func (board *Board) IsFull() bool {
	for _, row := range board.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// String renders the board as three lines, one per row, top to bottom.
// Every row is indented by two spaces with cells separated by a space.
func (board *Board) String() string {
	var b strings.Builder
	for _, row := range board.cells {
		b.WriteString(" ")
		for _, cell := range row {
			b.WriteString(" " + cell.String())
		}
		b.WriteString("\n")
	}

	return b.String()
}
