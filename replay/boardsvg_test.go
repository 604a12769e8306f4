package replay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todd-working/truncate/engine"
)

func TestWriteBoardSVGProducesWellFormedDocument(t *testing.T) {
	b, err := engine.ParseBoard("|0 __ __\n__ A0 __\n__ __ |1\n")
	require.NoError(t, err)

	var sb strings.Builder
	WriteBoardSVG(&sb, b)
	out := sb.String()

	assert.True(t, strings.Contains(out, "<svg"))
	assert.True(t, strings.Contains(out, "</svg>"))
	assert.True(t, strings.Contains(out, ">A<"), "occupied square letter should be drawn")
}
