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

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/game"
)

func TestParseMove(t *testing.T) {
	t.Run("Accepts every cell in both cases", func(t *testing.T) {
		for col, letters := range []string{"aA", "bB", "cC"} {
			for _, letter := range letters {
				for row, digit := range "123" {
					square, err := ParseMove(string(letter) + string(digit))
					require.NoError(t, err)
					assert.Equal(t, game.Square{Col: col, Row: row}, square)
				}
			}
		}
	})

	t.Run("Allows surrounding whitespace", func(t *testing.T) {
		for _, input := range []string{"a2\n", "  a2", "\ta 2 \r\n", " A  2\n"} {
			square, err := ParseMove(input)
			require.NoError(t, err, "%q", input)
			assert.Equal(t, game.Square{Col: 0, Row: 1}, square)
		}
	})

	t.Run("Rejects everything else", func(t *testing.T) {
		for _, input := range []string{
			"", "\n", "z9", "a0", "a4", "d1", "2a", "a", "1",
			"a22", "aa2", "middle square", "invalid response", "a2 b3",
		} {
			_, err := ParseMove(input)
			assert.ErrorIs(t, err, ErrParse, "%q", input)
		}
	})
}

func TestFormatMove(t *testing.T) {
	assert.Equal(t, "a3", FormatMove(game.Square{Col: 0, Row: 2}))
	assert.Equal(t, "c1", FormatMove(game.Square{Col: 2, Row: 0}))

	square, err := ParseMove(FormatMove(game.Square{Col: 1, Row: 1}))
	require.NoError(t, err)
	assert.Equal(t, game.Square{Col: 1, Row: 1}, square)
}

func TestRenderPrompt(t *testing.T) {
	board := game.New()
	require.NoError(t, board.Set(0, 0, game.X))

	t.Run("Without a warning", func(t *testing.T) {
		prompt := RenderPrompt(board, game.O, "")

		assert.Equal(t, "BOARD:\n\n"+
			"  X . .\n  . . .\n  . . .\n\n"+
			"Specify column a, b, or c (left to right) and row 1, 2, or 3 (top to bottom).\n"+
			"For example, type 'a3' for the bottom-left corner.\n"+
			"Player O, what is your move?\n", prompt)
	})

	t.Run("With a warning", func(t *testing.T) {
		prompt := RenderPrompt(board, game.X, InvalidWarning("z9\n"))

		assert.Contains(t, prompt, "\n'z9' is not a valid move\n\n")
		assert.Regexp(t, `BOARD:(\s*[.XO]){9}`, prompt)
		assert.Regexp(t, `what is your move\?\n$`, prompt)
	})
}

func TestRenderResult(t *testing.T) {
	board := game.New()

	assert.Equal(t, "BOARD:\n\n  . . .\n  . . .\n  . . .\n\nDRAW!\n\n", RenderResult(board, game.Draw))
	assert.Contains(t, RenderResult(board, game.XWins), "PLAYER X WINS!")
	assert.Contains(t, RenderResult(board, game.OWins), "PLAYER O WINS!")
}

func TestWarnings(t *testing.T) {
	assert.Equal(t, "'z9' is not a valid move", InvalidWarning("z9\n"))
	assert.Equal(t, "'a1' is already occupied", OccupiedWarning("a1\r\n"))
}
