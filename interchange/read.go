// SPDX-License-Identifier: MIT

package interchange

import (
	"fmt"
	"io"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

// parse reads the whole input and returns the id lines, converted to
// 0-based vertices, plus the comments in order.
func parse(r io.Reader, g *graph.Graph) (rows [][]int, comments []string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	doc, err := parseFile.ParseBytes("", data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	n := g.Size()
	for i, l := range doc.Lines {
		switch {
		case l.Comment != nil:
			comments = append(comments, l.text())
		case len(l.IDs) > 0:
			row := make([]int, len(l.IDs))
			for j, id := range l.IDs {
				if id < 1 || id > n {
					return nil, nil, fmt.Errorf("%w: line %d: id %d not in [1,%d]", ErrVertexOutOfRange, i+1, id, n)
				}
				row[j] = id - 1
			}
			rows = append(rows, row)
		}
	}

	return rows, comments, nil
}

// ReadTree parses a tree file for g and rebuilds the decomposition by
// positional insertion. The result is validated.
func ReadTree(r io.Reader, g *graph.Graph) (*decomposition.Tree, error) {
	rows, _, err := parse(r, g)
	if err != nil {
		return nil, fmt.Errorf("ReadTree: %w", err)
	}
	tree := decomposition.NewTree(g)
	for i, row := range rows {
		node := fixedset.New(0, g.Size(), row...)
		if err = tree.Insert(node); err != nil {
			return nil, fmt.Errorf("ReadTree: node %d: %w", i+1, err)
		}
	}
	if err = tree.Validate(); err != nil {
		return nil, fmt.Errorf("ReadTree: %w", err)
	}

	return tree, nil
}

// ReadLinear parses a linear file for g.
func ReadLinear(r io.Reader, g *graph.Graph) (*decomposition.Linear, error) {
	rows, _, err := parse(r, g)
	if err != nil {
		return nil, fmt.Errorf("ReadLinear: %w", err)
	}
	seq := make([]int, 0, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return nil, fmt.Errorf("ReadLinear: %w: entry %d has %d ids", ErrMalformed, i+1, len(row))
		}
		seq = append(seq, row[0])
	}
	lin, err := decomposition.NewLinear(g, seq)
	if err != nil {
		return nil, fmt.Errorf("ReadLinear: %w", err)
	}

	return lin, nil
}

// ReadComments returns the comment lines of a file without building
// anything from it.
func ReadComments(r io.Reader, g *graph.Graph) ([]string, error) {
	_, comments, err := parse(r, g)
	if err != nil {
		return nil, fmt.Errorf("ReadComments: %w", err)
	}

	return comments, nil
}
