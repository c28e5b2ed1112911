package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimacs(t *testing.T) {
	in := `c a small instance
p cnf 3 2
1 -2 0
2 3 0
`
	inst, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, inst.NumVars)
	assert.Equal(t, [][]int{{1, -2}, {2, 3}}, inst.Clauses)
}

func TestParseDimacsClauseSpansLines(t *testing.T) {
	in := "p cnf 4 1\n1 2\n3 -4 0\n"

	inst, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 2, 3, -4}}, inst.Clauses)
}

func TestParseDimacsMissingTerminator(t *testing.T) {
	inst, err := ParseDimacs(strings.NewReader("p cnf 2 1\n1 2\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 2}}, inst.Clauses)
}

func TestParseDimacsNoHeader(t *testing.T) {
	inst, err := ParseDimacs(strings.NewReader("1 -5 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, inst.NumVars)
	assert.Equal(t, [][]int{{1, -5}}, inst.Clauses)
}

func TestParseDimacsBadLiteral(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("p cnf 2 1\n1 x 0\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}

func TestParseDimacsVarBeyondDeclared(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("p cnf 2 1\n1 3 0\n"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseDimacsMalformedHeader(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("p dnf 2 1\n"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestParseDimacsDuplicateHeader(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("p cnf 2 1\np cnf 2 1\n"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}
