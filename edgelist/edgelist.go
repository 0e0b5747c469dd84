// Package edgelist loads the tab-separated edge-list format used by the
// SNAP road-network datasets (roadNet-CA.txt, roadNet-TX.txt, …) into a
// core.Graph.
//
// Each record is two vertex items separated by a single tab. Lines
// starting with '#' and blank lines are skipped. Endpoints are added to
// the graph on first sight; every record then drives one AddEdge call.
// The adapter knows nothing about the graph beyond that contract:
// unique items and a sequence of pairs.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/roadgraph/core"
)

// commentPrefix marks dataset header lines to be skipped.
const commentPrefix = "#"

// ErrBadRecord indicates a data line that is not two non-empty
// tab-separated fields. The wrapped message carries the line number and
// the offending content.
var ErrBadRecord = errors.New("edgelist: malformed record")

// Parse reads an edge list from r into a fresh graph.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Into(g, r); err != nil {
		return nil, err
	}

	return g, nil
}

// Load reads the edge-list file at path into a fresh graph.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Into appends every record from r into an existing graph g.
// Core errors (e.g. core.ErrSelfLoop on a degenerate record) propagate.
func Into(g *core.Graph, r io.Reader) error {
	sc := bufio.NewScanner(r)

	lineNo := 0
	var line, a, b string
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: %q", ErrBadRecord, lineNo, line)
		}
		a, b = strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if a == "" || b == "" {
			return fmt.Errorf("%w: line %d: %q", ErrBadRecord, lineNo, line)
		}

		if !g.HasVertex(a) {
			if err := g.AddVertex(a); err != nil {
				return err
			}
		}
		if !g.HasVertex(b) {
			if err := g.AddVertex(b); err != nil {
				return err
			}
		}
		if err := g.AddEdge(a, b); err != nil {
			return fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("edgelist: read: %w", err)
	}

	return nil
}
