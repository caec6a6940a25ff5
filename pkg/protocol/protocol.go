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

// Package protocol implements the text protocol spoken between a match and
// its players: moves are read as "<column><row>" lines like "a3", and the
// board is sent as a multi-line prompt.
package protocol

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"laptudirm.com/x/tictactoe/pkg/game"
)

var ErrParse = errors.New("protocol: invalid move")

var moveRegexp = regexp.MustCompile(`(?i)^\s*([a-c])\s*([1-3])\s*$`)

// ParseMove parses a move line of the form "<column><row>", where column
// is one of a, b, or c (case-insensitive) and row is one of 1, 2, or 3.
// Surrounding whitespace is allowed.
func ParseMove(text string) (game.Square, error) {
	match := moveRegexp.FindStringSubmatch(text)
	if match == nil {
		return game.Square{}, fmt.Errorf("%w: %q", ErrParse, Chomp(text))
	}

	return game.Square{
		Col: int(strings.ToLower(match[1])[0] - 'a'),
		Row: int(match[2][0] - '1'),
	}, nil
}

// FormatMove is the inverse of ParseMove.
func FormatMove(square game.Square) string {
	return fmt.Sprintf("%c%d", 'a'+square.Col, square.Row+1)
}

// Chomp removes a trailing line terminator from the given text.
func Chomp(text string) string {
	return strings.TrimRight(text, "\r\n")
}

// InvalidWarning is the warning sent to a player whose input couldn't be
// parsed as a move.
func InvalidWarning(input string) string {
	return fmt.Sprintf("'%s' is not a valid move", Chomp(input))
}

// OccupiedWarning is the warning sent to a player who tried to mark an
// already marked cell.
func OccupiedWarning(input string) string {
	return fmt.Sprintf("'%s' is already occupied", Chomp(input))
}

var instructions = heredoc.Doc(`
	Specify column a, b, or c (left to right) and row 1, 2, or 3 (top to bottom).
	For example, type 'a3' for the bottom-left corner.
`)

// RenderPrompt renders the text asking the player with the given mark for
// a move. An empty warning is omitted.
func RenderPrompt(board *game.Board, mark game.Mark, warning string) string {
	var b strings.Builder
	b.WriteString(renderBoard(board))

	if warning != "" {
		b.WriteString(warning + "\n\n")
	}

	b.WriteString(instructions)
	fmt.Fprintf(&b, "Player %s, what is your move?\n", mark)
	return b.String()
}

// RenderResult renders the final board and the result of the match, which
// is broadcast to both players.
func RenderResult(board *game.Board, result game.Result) string {
	message := "DRAW!"
	if winner := result.Winner(); winner != game.Empty {
		message = fmt.Sprintf("PLAYER %s WINS!", winner)
	}

	return renderBoard(board) + message + "\n\n"
}

func renderBoard(board *game.Board) string {
	return "BOARD:\n\n" + board.String() + "\n"
}
