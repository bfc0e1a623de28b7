// SPDX-License-Identifier: MIT

// Package pdt is the particle data table: a bidirectional map between
// particle names and signed particle codes.
//
// A table is read from a text file with one "name code" pair per line, from
// a database table (particles(name, lund)), or taken from the copy
// compiled into the binary (Default).
package pdt

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/decaygraph/lund"
)

var (
	// ErrEmpty is returned for a table without any particle.
	ErrEmpty = errors.New("pdt: empty table")

	// ErrMissingB0 is returned when the table does not map B0 to 511, which
	// identifies a table in the wrong convention.
	ErrMissingB0 = errors.New("pdt: table does not map B0 to 511")

	// ErrSyntax reports a line that is not "name code".
	ErrSyntax = errors.New("pdt: syntax error")
)

//go:embed default.pdt
var defaultTable string

// Table maps names to codes and back. When a name or a code appears more
// than once, the last occurrence wins.
type Table struct {
	byName map[string]int
	byCode map[int]string
}

func newTable() *Table {
	return &Table{byName: make(map[string]int), byCode: make(map[int]string)}
}

func (t *Table) add(name string, code int) {
	t.byName[name] = code
	t.byCode[code] = name
}

// Lund returns the code of name.
func (t *Table) Lund(name string) (int, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Name returns the name of code.
func (t *Table) Name(code int) (string, bool) {
	n, ok := t.byCode[code]
	return n, ok
}

// Label returns the name of code, or the code itself in decimal when the
// table does not know it.
func (t *Table) Label(code int) string {
	if t != nil {
		if n, ok := t.byCode[code]; ok {
			return n
		}
	}
	return strconv.Itoa(code)
}

// Codes returns every code in the table, ascending.
func (t *Table) Codes() []int {
	codes := make([]int, 0, len(t.byCode))
	for c := range t.byCode {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

// Len returns the number of names.
func (t *Table) Len() int { return len(t.byName) }

// validate applies the checks every loader shares.
func (t *Table) validate() error {
	if len(t.byName) == 0 {
		return ErrEmpty
	}
	if c, ok := t.byName["B0"]; !ok || c != lund.B0 {
		return ErrMissingB0
	}
	return nil
}

// Parse reads a table in text form. Each non-blank line holds the name up
// to the first whitespace character and the code in the remainder; lines
// starting with '#' are comments.
func Parse(r io.Reader) (*Table, error) {
	t := newTable()
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if line == "" || line[0] == '#' {
			continue
		}
		i := strings.IndexFunc(line, unicode.IsSpace)
		if i <= 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, n, line)
		}
		code, err := strconv.Atoi(strings.TrimSpace(line[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, n, err)
		}
		t.add(line[:i], code)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pdt: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile parses the table stored at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdt: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Default returns the table compiled into the binary.
func Default() *Table {
	t, err := Parse(strings.NewReader(defaultTable))
	if err != nil {
		panic(err) // default.pdt is part of the source tree
	}
	return t
}
