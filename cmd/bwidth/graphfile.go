// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boolwidth/decomposition"
	"github.com/katalvlaran/boolwidth/graph"
	"github.com/katalvlaran/boolwidth/interchange"
)

var errNoGraph = errors.New("--graph is required")

// graphDoc is the YAML form of a graph.
type graphDoc struct {
	Vertices int     `yaml:"vertices"`
	Edges    [][]int `yaml:"edges"`
}

func parseGraph(data []byte) (*graph.Graph, error) {
	var doc graphDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, 0, len(doc.Edges))
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edge %d: want 2 endpoints, got %d", i+1, len(e))
		}
		edges = append(edges, graph.Edge{U: e[0] - 1, V: e[1] - 1})
	}

	return graph.FromEdges(doc.Vertices, edges)
}

func loadGraph(path string) (*graph.Graph, error) {
	if path == "" {
		return nil, errNoGraph
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := parseGraph(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func loadTree(path string, g *graph.Graph) (*decomposition.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tree, err := interchange.ReadTree(f, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tree, nil
}

func loadLinear(path string, g *graph.Graph) (*decomposition.Linear, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lin, err := interchange.ReadLinear(f, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lin, nil
}

// loadDecomposition reads either a tree or a linear file, linear files
// becoming their prefix chain.
func loadDecomposition(g *graph.Graph, treePath, linearPath string) (*decomposition.Tree, error) {
	switch {
	case treePath != "" && linearPath != "":
		return nil, errors.New("--tree and --linear are mutually exclusive")
	case treePath != "":
		return loadTree(treePath, g)
	case linearPath != "":
		lin, err := loadLinear(linearPath, g)
		if err != nil {
			return nil, err
		}

		return lin.Tree(), nil
	default:
		return nil, errors.New("one of --tree or --linear is required")
	}
}
