// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// impl_multilayer.go: (hyperedge, vertex) layered representation.
//
// Contract:
//   • Each WeightedLink (e1,u,e2,v,w) yields exactly one MultilayerLink
//     ((e1,u) → (e2,v), w). No deduplication.
//   • e1 = e2 goes to Intra, e1 ≠ e2 to Inter; each block is stable-sorted by
//     source layer, so ties keep enumeration order.
//
// Complexity: O(#links · log #links) time, O(#links) space.

package builder

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/hypernet/links"
)

// Multilayer returns a Constructor for the multilayer representation.
// Reads selfLinks, shifted, workers.
func Multilayer() Constructor {
	return func(src Source, cfg builderConfig) (*Representation, error) {
		ls, err := src.enumerate(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodMultilayer, err)
		}
		rep := MultilayerFromLinks(ls)
		rep.Nodes = vertexNodes(src.Graph.Vertices())
		cfg.logger.Debug("multilayer split",
			slog.Int("intra", len(rep.Intra)),
			slog.Int("inter", len(rep.Inter)))

		return rep, nil
	}
}

// MultilayerFromLinks partitions ls into sorted intra- and inter-layer blocks.
// The returned Representation has no Nodes; Multilayer fills them in.
func MultilayerFromLinks(ls []links.WeightedLink) *Representation {
	var intra, inter []MultilayerLink
	for _, l := range ls {
		ml := MultilayerLink{
			SourceLayer: l.SourceEdge,
			Source:      l.Source,
			TargetLayer: l.TargetEdge,
			Target:      l.Target,
			Weight:      l.Weight,
		}
		if l.Intra() {
			intra = append(intra, ml)
		} else {
			inter = append(inter, ml)
		}
	}
	sortBySourceLayer(intra)
	sortBySourceLayer(inter)

	return &Representation{
		Kind:     KindMultilayer,
		Directed: true,
		Intra:    intra,
		Inter:    inter,
	}
}

func sortBySourceLayer(ls []MultilayerLink) {
	sort.SliceStable(ls, func(i, j int) bool {
		return ls[i].SourceLayer < ls[j].SourceLayer
	})
}
