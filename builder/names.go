package builder

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/hypernet/core"
)

// NameFn names the synthetic feature node that stands for a hyperedge.
// It must be pure: the same edge id always yields the same name.
type NameFn func(edgeID int) string

// DefaultFeatureName returns "Hyperedge <id>", e.g. 7→"Hyperedge 7".
func DefaultFeatureName(edgeID int) string {
	return featureNamePrefix + strconv.Itoa(edgeID)
}

// PrefixedFeatureName returns prefix + decimal edge id, e.g. "e7".
func PrefixedFeatureName(prefix string) NameFn {
	return func(edgeID int) string {
		return prefix + strconv.Itoa(edgeID)
	}
}

// MemberFeatureName names a feature after the vertex names it joins,
// e.g. "{a,b,c}". Unknown edge ids fall back to DefaultFeatureName.
func MemberFeatureName(members map[int][]string) NameFn {
	return func(edgeID int) string {
		names, ok := members[edgeID]
		if !ok {
			return DefaultFeatureName(edgeID)
		}
		return "{" + strings.Join(names, ",") + "}"
	}
}

// WithFeaturePrefix sets the feature naming scheme to PrefixedFeatureName(prefix).
func WithFeaturePrefix(prefix string) BuilderOption {
	return WithFeatureName(PrefixedFeatureName(prefix))
}

// featureNodes allocates one feature node per hyperedge id, in the order of
// ids, starting at start.
func featureNodes(ids []int, start int, name NameFn) ([]Node, map[int]int) {
	nodes := make([]Node, len(ids))
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		nodes[i] = Node{ID: start + i, Name: name(id)}
		index[id] = start + i
	}

	return nodes, index
}

// vertexNodes projects the hypergraph vertices into output nodes. Unnamed
// vertices get their decimal id as name.
func vertexNodes(vs []core.Vertex) []Node {
	out := make([]Node, len(vs))
	for i, v := range vs {
		name := v.Name
		if name == "" {
			name = strconv.Itoa(v.ID)
		}
		out[i] = Node{ID: v.ID, Name: name}
	}

	return out
}
