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

// Result represents the state of a match as derived from its board.
type Result uint8

const (
	InProgress Result = iota
	XWins
	OWins
	Draw
)

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case InProgress:
		return "in progress"
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}

// Winner returns the mark which won, or Empty if the result isn't a win.
func (result Result) Winner() Mark {
	switch result {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

// Terminal reports whether the result ends the match.
func (result Result) Terminal() bool {
	return result != InProgress
}

// WonBy returns the Result for a win by the given mark.
func WonBy(mark Mark) Result {
	switch mark {
	case X:
		return XWins
	case O:
		return OWins
	default:
		return InProgress
	}
}

// WinLines are the 8 lines whose uniform marking ends a match, in the order
// they are checked: rows top to bottom, columns left to right, the
// descending diagonal and then the ascending diagonal.
var WinLines = [8][Size]Square{
	{{0, 0}, {1, 0}, {2, 0}}, // row 1
	{{0, 1}, {1, 1}, {2, 1}}, // row 2
	{{0, 2}, {1, 2}, {2, 2}}, // row 3
	{{0, 0}, {0, 1}, {0, 2}}, // column a
	{{1, 0}, {1, 1}, {1, 2}}, // column b
	{{2, 0}, {2, 1}, {2, 2}}, // column c
	{{0, 0}, {1, 1}, {2, 2}}, // descending diagonal
	{{0, 2}, {1, 1}, {2, 0}}, // ascending diagonal
}

// Winner returns the mark filling the first complete line in WinLines, or
// Empty if there is no such line. If several lines are complete, which
// can't happen in a legal game, the first one decides.
func Winner(board *Board) Mark {
	for _, line := range WinLines {
		mark := board.Get(line[0].Col, line[0].Row)
		if mark == Empty {
			continue
		}

		if board.Get(line[1].Col, line[1].Row) == mark &&
			board.Get(line[2].Col, line[2].Row) == mark {
			return mark
		}
	}

	return Empty
}

// IsDraw reports whether the board is full without a winner.
func IsDraw(board *Board) bool {
	return Winner(board) == Empty && board.IsFull()
}

// Evaluate computes the Result of the given board. It is recomputed on every
// call and never cached.
func Evaluate(board *Board) Result {
	if winner := Winner(board); winner != Empty {
		return WonBy(winner)
	}

	if board.IsFull() {
		return Draw
	}

	return InProgress
}
