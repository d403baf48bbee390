// SPDX-License-Identifier: MIT

package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolwidth/builder"
)

func TestBacktrack(t *testing.T) {
	g := builder.MustBuild(builder.Path(4))
	m := newMemo(g)
	all := g.Vertices()
	m.solveLinear(all)
	bound := m.width[all.Key()]
	require.Equal(t, 2, bound)

	seq, err := m.backtrack(all, bound)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, seq)

	_, err = m.backtrack(all, bound-1)
	assert.ErrorIs(t, err, ErrSearchExhausted)
}
