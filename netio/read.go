// SPDX-License-Identifier: MIT
// Package: hypernet/netio
//
// read.go: hypergraph text reader.
//
// Format:
//
//	# comment
//	*Vertices
//	1 "a"
//	2 "b"
//	*Hyperedges
//	1 1 2 10          edge id, member ids..., omega
//	*Weights
//	1 1 0.5           edge id, vertex id, gamma
//
// Section headers are case-insensitive and may carry trailing tokens (a Pajek
// style count), which are ignored. Blank lines and lines starting with '#'
// are skipped. Everything after the syntax is validated by core.NewHypergraph.

package netio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypernet/core"
)

type section int

const (
	sectionNone section = iota
	sectionVertices
	sectionHyperedges
	sectionWeights
)

// minHyperedgeFields is "edgeID v omega".
const minHyperedgeFields = 3

// maxLineBytes bounds a single input line; hyperedges with many members are long.
const maxLineBytes = 16 << 20

type parser struct {
	vertices []core.Vertex
	edges    []core.HyperEdge
	weights  []core.VertexWeight
}

// Read parses a hypergraph from r.
//
// Errors:
//   - ErrSyntax (wrapped with the line number) for unparsable lines.
//   - core.ErrMalformedHypergraph and friends from core.NewHypergraph.
//   - I/O errors from r.
func Read(r io.Reader, opts ...Option) (*core.Hypergraph, error) {
	cfg := newReadConfig(opts...)

	var p parser
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	cur := sectionNone
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "*") {
			s, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", n, err)
			}
			cur = s
			continue
		}

		var err error
		switch cur {
		case sectionVertices:
			err = p.vertex(line)
		case sectionHyperedges:
			err = p.hyperedge(line)
		case sectionWeights:
			err = p.weight(line)
		default:
			err = fmt.Errorf("data before any section header: %w", ErrSyntax)
		}
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	if cfg.defaultGamma != nil {
		filled := p.fillWeights(*cfg.defaultGamma)
		cfg.logger.Debug("filled missing weights",
			slog.Int("count", filled),
			slog.Float64("gamma", *cfg.defaultGamma))
	}

	h, err := core.NewHypergraph(p.vertices, p.edges, p.weights)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return h, nil
}

func parseHeader(line string) (section, error) {
	name := strings.ToLower(strings.Fields(line)[0])
	switch name {
	case "*vertices":
		return sectionVertices, nil
	case "*hyperedges":
		return sectionHyperedges, nil
	case "*weights":
		return sectionWeights, nil
	default:
		return sectionNone, fmt.Errorf("unknown section %q: %w", name, ErrSyntax)
	}
}

func (p *parser) vertex(line string) error {
	idText := strings.Fields(line)[0]
	id, err := atoi("vertex id", idText)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(line[len(idText):])
	if strings.HasPrefix(name, `"`) {
		quoted := name
		if name, err = strconv.Unquote(quoted); err != nil {
			return fmt.Errorf("vertex %d: bad quoted name %s: %w", id, quoted, ErrSyntax)
		}
	}
	p.vertices = append(p.vertices, core.Vertex{ID: id, Name: name})

	return nil
}

func (p *parser) hyperedge(line string) error {
	f := strings.Fields(line)
	if len(f) < minHyperedgeFields {
		return fmt.Errorf("hyperedge needs id, members and omega, got %d field(s): %w", len(f), ErrSyntax)
	}
	id, err := atoi("hyperedge id", f[0])
	if err != nil {
		return err
	}
	omega, err := atof("omega", f[len(f)-1])
	if err != nil {
		return err
	}
	members := make([]int, 0, len(f)-2)
	for _, s := range f[1 : len(f)-1] {
		v, err := atoi("member id", s)
		if err != nil {
			return err
		}
		members = append(members, v)
	}
	p.edges = append(p.edges, core.HyperEdge{ID: id, Vertices: members, Omega: omega})

	return nil
}

func (p *parser) weight(line string) error {
	f := strings.Fields(line)
	if len(f) != 3 {
		return fmt.Errorf("weight needs edge id, vertex id and gamma, got %d field(s): %w", len(f), ErrSyntax)
	}
	e, err := atoi("edge id", f[0])
	if err != nil {
		return err
	}
	v, err := atoi("vertex id", f[1])
	if err != nil {
		return err
	}
	g, err := atof("gamma", f[2])
	if err != nil {
		return err
	}
	p.weights = append(p.weights, core.VertexWeight{Edge: e, Vertex: v, Gamma: g})

	return nil
}

// fillWeights appends γ = g for every incident pair without a weight line,
// in edge then member order, and reports how many it added.
func (p *parser) fillWeights(g float64) int {
	type pair struct{ e, v int }
	have := make(map[pair]bool, len(p.weights))
	for _, w := range p.weights {
		have[pair{w.Edge, w.Vertex}] = true
	}

	filled := 0
	for _, e := range p.edges {
		for _, v := range e.Vertices {
			k := pair{e.ID, v}
			if have[k] {
				continue
			}
			have[k] = true
			p.weights = append(p.weights, core.VertexWeight{Edge: e.ID, Vertex: v, Gamma: g})
			filled++
		}
	}

	return filled
}

func atoi(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, s, ErrSyntax)
	}

	return n, nil
}

func atof(what, s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, s, ErrSyntax)
	}

	return x, nil
}
