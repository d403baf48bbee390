// SPDX-License-Identifier: MIT

package interchange

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
)

func writeComments(bw *bufio.Writer, comments []string) {
	for _, c := range comments {
		for _, part := range strings.Split(c, "\n") {
			bw.WriteString("c ")
			bw.WriteString(part)
			bw.WriteByte('\n')
		}
	}
}

func writeNode(bw *bufio.Writer, node fixedset.FixedSet) {
	first := true
	for v := range node.All() {
		if !first {
			bw.WriteByte(' ')
		}
		first = false
		bw.WriteString(strconv.Itoa(v + 1))
	}
	bw.WriteByte('\n')
}

// WriteTree writes t in pre-order, preceded by one comment line per entry
// of comments.
func WriteTree(w io.Writer, t *decomposition.Tree, comments ...string) error {
	bw := bufio.NewWriter(w)
	writeComments(bw, comments)
	for _, node := range t.PreOrder() {
		writeNode(bw, node)
	}

	return bw.Flush()
}

// WriteLinear writes the sequence of l, one id per line.
func WriteLinear(w io.Writer, l *decomposition.Linear, comments ...string) error {
	bw := bufio.NewWriter(w)
	writeComments(bw, comments)
	for _, v := range l.Sequence() {
		bw.WriteString(strconv.Itoa(v + 1))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
