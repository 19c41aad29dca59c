// SPDX-License-Identifier: MPL-2.0

package memory

import (
	"context"
	"strconv"
	"strings"

	"puzzlebox-cli/internal/puzzle"

	"github.com/charmbracelet/log"
)

const (
	// KindNoise is a run of bytes that form no instruction.
	KindNoise Kind = iota
	// KindMul is a mul(a,b) instruction.
	KindMul
	// KindDo re-enables multiplication.
	KindDo
	// KindDont disables multiplication.
	KindDont
)

const (
	mulPrefix = "mul("
	dontWord  = "don't"
	doWord    = "do"
)

type (
	// Kind identifies a token type.
	Kind int

	// Token is one element of the instruction stream.
	Token struct {
		Kind Kind
		// A and B are the operands of a KindMul token.
		A, B int
		// Offset is the byte offset of the token in the input.
		Offset int
		// Len is the number of bytes the token spans.
		Len int
	}

	// Solver implements puzzle.Solver for the corrupted memory scan.
	Solver struct{}
)

// String returns the token kind name.
func (k Kind) String() string {
	switch k {
	case KindMul:
		return "mul"
	case KindDo:
		return "do"
	case KindDont:
		return "don't"
	default:
		return "noise"
	}
}

// Tokenize scans text left to right. At each position it tries mul(a,b),
// then don't, then do; a byte matching none of them is noise. Consecutive
// noise bytes are merged into one token.
func Tokenize(text string) []Token {
	var tokens []Token
	noiseStart := -1
	flushNoise := func(end int) {
		if noiseStart >= 0 {
			tokens = append(tokens, Token{Kind: KindNoise, Offset: noiseStart, Len: end - noiseStart})
			noiseStart = -1
		}
	}

	for i := 0; i < len(text); {
		rest := text[i:]
		tok, ok := scanMul(rest)
		switch {
		case ok:
		case strings.HasPrefix(rest, dontWord):
			tok = Token{Kind: KindDont, Len: len(dontWord)}
		case strings.HasPrefix(rest, doWord):
			tok = Token{Kind: KindDo, Len: len(doWord)}
		default:
			if noiseStart < 0 {
				noiseStart = i
			}
			i++
			continue
		}
		flushNoise(i)
		tok.Offset = i
		tokens = append(tokens, tok)
		i += tok.Len
	}
	flushNoise(len(text))

	return tokens
}

// scanMul matches "mul(" digits "," digits ")" at the start of s.
func scanMul(s string) (Token, bool) {
	if !strings.HasPrefix(s, mulPrefix) {
		return Token{}, false
	}
	pos := len(mulPrefix)
	a, n, ok := scanNumber(s[pos:])
	if !ok {
		return Token{}, false
	}
	pos += n
	if pos >= len(s) || s[pos] != ',' {
		return Token{}, false
	}
	pos++
	b, n, ok := scanNumber(s[pos:])
	if !ok {
		return Token{}, false
	}
	pos += n
	if pos >= len(s) || s[pos] != ')' {
		return Token{}, false
	}
	return Token{Kind: KindMul, A: a, B: b, Len: pos + 1}, true
}

// scanNumber reads a run of ASCII digits. Runs that overflow int fail.
func scanNumber(s string) (value, width int, ok bool) {
	for width < len(s) && s[width] >= '0' && s[width] <= '9' {
		width++
	}
	if width == 0 {
		return 0, 0, false
	}
	value, err := strconv.Atoi(s[:width])
	if err != nil {
		return 0, 0, false
	}
	return value, width, true
}

// SumProducts adds up every mul instruction.
func SumProducts(tokens []Token) int {
	sum := 0
	for _, t := range tokens {
		if t.Kind == KindMul {
			sum += t.A * t.B
		}
	}
	return sum
}

// SumEnabledProducts adds up the mul instructions seen while enabled.
// Multiplication starts enabled; do and don't toggle it.
func SumEnabledProducts(tokens []Token) int {
	enabled := true
	sum := 0
	for _, t := range tokens {
		switch t.Kind {
		case KindMul:
			if enabled {
				sum += t.A * t.B
			}
		case KindDo:
			enabled = true
		case KindDont:
			enabled = false
		case KindNoise:
		}
	}
	return sum
}

// Day implements puzzle.Solver.
func (Solver) Day() int { return 3 }

// Name implements puzzle.Solver.
func (Solver) Name() string { return "memory" }

// Summary implements puzzle.Solver.
func (Solver) Summary() string {
	return "sum mul instructions in corrupted memory, honoring do and don't"
}

// Solve implements puzzle.Solver. Any text tokenizes, so Solve never fails.
func (Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	tokens := Tokenize(input)
	log.FromContext(ctx).Debug("tokenized memory", "tokens", len(tokens), "bytes", len(input))

	return puzzle.Answer{
		Part1: SumProducts(tokens),
		Part2: SumEnabledProducts(tokens),
	}, nil
}
