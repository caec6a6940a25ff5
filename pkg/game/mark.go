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

// Mark represents the contents of a single cell of the board.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// MarkN is the number of player marks.
const MarkN = 2

// String returns the single character representation of the mark, which
// is also used by the board renderer.
func (mark Mark) String() string {
	switch mark {
	case Empty:
		return "."
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "?"
	}
}

// Valid reports whether the mark can be placed by a player.
func (mark Mark) Valid() bool {
	return mark == X || mark == O
}

// Other returns the mark of the opponent.
func (mark Mark) Other() Mark {
	switch mark {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Index maps a player mark to 0 (X) or 1 (O). It is used to index arrays
// of per-player data, like the array of players in a match.
func (mark Mark) Index() int {
	return int(mark) - 1
}
