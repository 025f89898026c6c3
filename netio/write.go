// SPDX-License-Identifier: MIT
// Package: hypernet/netio
//
// write.go: representation writer in the engine's network text format.
//
// Layout per Kind:
//
//	all        *Vertices, then `id "name"` for vertices followed by features
//	Bipartite  *Bipartite <start id>, then `source target weight`
//	State      *States `state physical`, then *Links `source target weight`
//	Multilayer *Multilayer, then `layer node layer node weight`, intra before inter
//	Clique     *Links (directed) or *Edges (undirected), `source target weight`
//
// Weights use the shortest decimal that round-trips (strconv 'g', -1).

package netio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hypernet/builder"
	"github.com/katalvlaran/hypernet/core"
)

// Write serialises rep to w.
//
// Errors: ErrNilInput, ErrUnsupportedKind, or the first write error.
func Write(w io.Writer, rep *builder.Representation) error {
	if rep == nil {
		return fmt.Errorf("Write: %w", ErrNilInput)
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "*Vertices")
	for _, n := range rep.AllNodes() {
		fmt.Fprintf(bw, "%d %s\n", n.ID, strconv.Quote(n.Name))
	}

	switch rep.Kind {
	case builder.KindBipartite:
		fmt.Fprintf(bw, "*Bipartite %d\n", rep.BipartiteStartID)
		writeLinks(bw, rep.Links)
	case builder.KindState:
		fmt.Fprintln(bw, "*States")
		for _, s := range rep.States {
			fmt.Fprintf(bw, "%d %d\n", s.ID, s.Physical)
		}
		fmt.Fprintln(bw, "*Links")
		writeLinks(bw, rep.Links)
	case builder.KindMultilayer:
		fmt.Fprintln(bw, "*Multilayer")
		for _, block := range [][]builder.MultilayerLink{rep.Intra, rep.Inter} {
			for _, l := range block {
				fmt.Fprintf(bw, "%d %d %d %d %s\n",
					l.SourceLayer, l.Source, l.TargetLayer, l.Target, formatWeight(l.Weight))
			}
		}
	case builder.KindClique:
		if rep.Directed {
			fmt.Fprintln(bw, "*Links")
		} else {
			fmt.Fprintln(bw, "*Edges")
		}
		writeLinks(bw, rep.Links)
	default:
		return fmt.Errorf("Write(%v): %w", rep.Kind, ErrUnsupportedKind)
	}

	// bufio.Writer keeps the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteHypergraph serialises h in the format Read accepts.
func WriteHypergraph(w io.Writer, h *core.Hypergraph) error {
	if h == nil {
		return fmt.Errorf("WriteHypergraph: %w", ErrNilInput)
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "*Vertices")
	for _, v := range h.Vertices() {
		fmt.Fprintf(bw, "%d %s\n", v.ID, strconv.Quote(v.Name))
	}
	fmt.Fprintln(bw, "*Hyperedges")
	for _, e := range h.Edges() {
		fmt.Fprint(bw, e.ID)
		for _, v := range e.Vertices {
			fmt.Fprintf(bw, " %d", v)
		}
		fmt.Fprintf(bw, " %s\n", formatWeight(e.Omega))
	}
	fmt.Fprintln(bw, "*Weights")
	for _, wt := range h.Weights() {
		fmt.Fprintf(bw, "%d %d %s\n", wt.Edge, wt.Vertex, formatWeight(wt.Gamma))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteHypergraph: %w", err)
	}

	return nil
}

func writeLinks(w io.Writer, ls []builder.Link) {
	for _, l := range ls {
		fmt.Fprintf(w, "%d %d %s\n", l.Source, l.Target, formatWeight(l.Weight))
	}
}

func formatWeight(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
