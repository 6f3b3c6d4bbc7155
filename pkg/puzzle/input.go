package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// DayDir is the directory name holding the inputs of a day.
func DayDir(day int) string {
	return fmt.Sprintf("day_%02d", day)
}

// InputPath returns <dir>/day_NN/<name>.txt.
func InputPath(dir string, day int, name string) string {
	return filepath.Join(dir, DayDir(day), name+".txt")
}

// ReadInput loads the named input of a day.
func ReadInput(dir string, day int, name string) ([]byte, error) {
	path := InputPath(dir, day, name)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	return b, nil
}

// Lines splits input into lines without their line endings. CR
// characters are dropped and a trailing newline does not produce an empty
// last line.
func Lines(input []byte) []string {
	s := strings.ReplaceAll(string(input), "\r", "")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits input into blank-line separated blocks.
func Blocks(input []byte) []string {
	s := strings.ReplaceAll(string(input), "\r", "")
	s = strings.Trim(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n\n")
}

// Ints parses the whitespace separated integers of s.
func Ints(s string) ([]int64, error) {
	fields := strings.Fields(s)
	ints := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrParse, f)
		}
		ints = append(ints, n)
	}
	return ints, nil
}

func Sum[T constraints.Integer | constraints.Float](values ...T) T {
	var sum T
	for _, v := range values {
		sum += v
	}
	return sum
}

func Product[T constraints.Integer | constraints.Float](values ...T) T {
	product := T(1)
	for _, v := range values {
		product *= v
	}
	return product
}
