// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package readpars

import "strings"

// line is the transient per-line state of a Reader. It is fully
// overwritten at the start of every ReadLine call and never persists
// across lines.
type line struct {
	raw     string
	empty   bool
	comment bool
	tokens  []string
	pos     int
	name    string
}

func (l *line) reset() {
	*l = line{}
}

// set classifies raw text and prepares the token cursor. Comment and
// blank lines are never tokenized.
func (l *line) set(raw string) {
	l.raw = raw
	l.empty = len(raw) == 0
	l.comment = len(raw) > 0 && raw[0] == '#'
	if l.empty || l.comment {
		return
	}
	l.tokens = strings.Fields(raw)
}

// endOfLine reports whether no further token remains on the line.
func (l *line) endOfLine() bool {
	return l.pos >= len(l.tokens)
}

// next returns the next token and advances the cursor. It returns false
// if no token remains or the token contains a character outside the
// allowed set.
func (l *line) next() (string, bool) {
	if l.pos >= len(l.tokens) {
		return "", false
	}
	tok := l.tokens[l.pos]
	l.pos++
	if !validToken(tok) {
		return "", false
	}
	return tok, true
}

// validToken reports whether every byte of the token is alphanumeric, a
// dot or a minus. Anything else, including multi-byte runes, makes the
// token unreadable.
func validToken(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}
