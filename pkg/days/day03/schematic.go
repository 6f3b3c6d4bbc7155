package day03

import (
	"fmt"

	"github.com/henderiw/aoc23/pkg/puzzle"
)

// Number is a part number candidate spanning columns [Start, End] of Row.
type Number struct {
	Value int64
	Row   int
	Start int
	End   int
}

type Symbol struct {
	Char rune
	Row  int
	Col  int
}

// Adjacent reports whether s touches n, diagonals included.
func (n Number) Adjacent(s Symbol) bool {
	return s.Row >= n.Row-1 && s.Row <= n.Row+1 &&
		s.Col >= n.Start-1 && s.Col <= n.End+1
}

type Schematic struct {
	Numbers []Number
	Symbols []Symbol
}

// Parse reads the engine schematic. Every character other than a digit
// or '.' is a symbol.
func Parse(input []byte) (*Schematic, error) {
	s := &Schematic{}
	for row, line := range puzzle.Lines(input) {
		for col := 0; col < len(line); col++ {
			c := line[col]
			switch {
			case c == '.':
			case isDigit(c):
				n := Number{Row: row, Start: col}
				for col < len(line) && isDigit(line[col]) {
					n.Value = 10*n.Value + int64(line[col]-'0')
					col++
				}
				n.End = col - 1
				col--
				s.Numbers = append(s.Numbers, n)
			case c < ' ' || c > '~':
				return nil, fmt.Errorf("%w: row %d col %d: unexpected byte %#x", puzzle.ErrParse, row, col, c)
			default:
				s.Symbols = append(s.Symbols, Symbol{Char: rune(c), Row: row, Col: col})
			}
		}
	}
	return s, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// PartNumbers returns the numbers adjacent to at least one symbol.
func (s *Schematic) PartNumbers() []Number {
	var parts []Number
	for _, n := range s.Numbers {
		for _, sym := range s.Symbols {
			if n.Adjacent(sym) {
				parts = append(parts, n)
				break
			}
		}
	}
	return parts
}

// GearRatios returns the product of the two numbers adjacent to every '*'
// that touches exactly two numbers.
func (s *Schematic) GearRatios() []int64 {
	var ratios []int64
	for _, sym := range s.Symbols {
		if sym.Char != '*' {
			continue
		}
		var adjacent []int64
		for _, n := range s.Numbers {
			if n.Adjacent(sym) {
				adjacent = append(adjacent, n.Value)
			}
		}
		if len(adjacent) == 2 {
			ratios = append(ratios, puzzle.Product(adjacent...))
		}
	}
	return ratios
}
