package course

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tree := NewTree(nil, nil)
	require.NoError(t, tree.AddPrerequisite("Compilers", "Automata Theory"))

	var buf bytes.Buffer
	err := Render(&buf, tree.Root())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, RootLabel, lines[0])
	assert.Len(t, lines, tree.Size()+1)
	assert.Contains(t, lines[len(lines)-2], "Compilers")
	assert.Contains(t, lines[len(lines)-1], "Automata Theory")
	assert.Contains(t, buf.String(), "Linear Algebra")
}
