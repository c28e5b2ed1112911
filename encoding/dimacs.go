// Package encoding reads problem instances in the DIMACS CNF format and turns
// them into the intermediate representation consumed by the solver.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Instance is a parsed problem: a declared variable count and a sequence of
// clauses, each a list of signed integers (positive = variable true, negative
// = variable false).
type Instance struct {
	NumVars int
	Clauses [][]int
}

// ParseError describes malformed DIMACS input.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseDimacs reads a DIMACS CNF problem. Comment lines are skipped, the
// "p cnf <vars> <clauses>" header is honored when present, and clauses may
// span lines until their 0 terminator. When no header is present the variable
// count is inferred from the highest variable mentioned.
func ParseDimacs(in io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(in)
	inst := &Instance{}

	var (
		clause  []int
		sawProb bool
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		fields := bytes.Fields(scanner.Bytes())

		if len(fields) == 0 || string(fields[0]) == "c" {
			continue
		}
		if string(fields[0]) == "p" {
			if sawProb {
				return nil, &ParseError{lineNo, errors.New("duplicate problem line")}
			}
			if err := parseProblemLine(inst, fields); err != nil {
				return nil, &ParseError{lineNo, err}
			}
			sawProb = true
			continue
		}
		for _, field := range fields {
			p, err := strconv.Atoi(string(field))
			if err != nil {
				return nil, &ParseError{lineNo, errors.Wrap(err, "bad literal")}
			}
			if p == 0 {
				inst.Clauses = append(inst.Clauses, clause)
				clause = nil
				continue
			}
			v := p
			if v < 0 {
				v = -v
			}
			if sawProb && v > inst.NumVars {
				return nil, &ParseError{lineNo,
					errors.Errorf("variable %d exceeds declared count %d", v, inst.NumVars)}
			}
			if v > inst.NumVars {
				inst.NumVars = v
			}
			clause = append(clause, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{lineNo, errors.Wrap(err, "read")}
	}
	if len(clause) > 0 {
		// Final clause without its 0 terminator; conventional readers accept it.
		inst.Clauses = append(inst.Clauses, clause)
	}
	return inst, nil
}

func parseProblemLine(inst *Instance, fields [][]byte) error {
	if len(fields) != 4 || string(fields[1]) != "cnf" {
		return errors.Errorf("malformed problem line %q", bytes.Join(fields, []byte(" ")))
	}
	nVars, err := strconv.Atoi(string(fields[2]))
	if err != nil || nVars < 0 {
		return errors.Errorf("bad variable count %q", fields[2])
	}
	if _, err := strconv.Atoi(string(fields[3])); err != nil {
		return errors.Errorf("bad clause count %q", fields[3])
	}
	inst.NumVars = nVars

	return nil
}
