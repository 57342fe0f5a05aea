// Package dtree builds classification trees over categorical data
// using entropy-based greedy splitting. It has no dependency on the
// inference engine.
package dtree

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// Row is one tabular record: attribute name → categorical value.
type Row map[string]string

// Node is a decision tree node. Leaves carry a Decision; internal
// nodes carry the Feature they split on and one child per seen value.
type Node struct {
	Feature  string
	Decision string
	Children map[string]*Node
}

// IsLeaf reports whether the node carries a final decision.
func (n *Node) IsLeaf() bool {
	return n.Decision != ""
}

// Entropy computes the Shannon entropy of the decision attribute over
// the rows.
func Entropy(rows []Row, decision string) float64 {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row[decision]]++
	}
	total := float64(len(rows))
	ent := 0.0
	for _, count := range counts {
		p := float64(count) / total
		ent -= p * math.Log2(p)
	}
	return ent
}

// InformationGain computes the entropy reduction achieved by
// splitting the rows on the given feature.
func InformationGain(rows []Row, feature, decision string) float64 {
	original := Entropy(rows, decision)
	total := float64(len(rows))

	subsets := splitBy(rows, feature)
	weighted := 0.0
	for _, subset := range subsets {
		p := float64(len(subset)) / total
		weighted += p * Entropy(subset, decision)
	}
	return original - weighted
}

// Build grows a tree greedily: at each node it splits on the feature
// with the highest information gain, recursing until a subset is pure
// or the features run out, in which case the majority decision wins.
func Build(rows []Row, decision string) (*Node, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", internalerr.ErrInvalidInput)
	}
	if _, ok := rows[0][decision]; !ok {
		return nil, fmt.Errorf("rows lack decision attribute %q: %w", decision, internalerr.ErrInvalidInput)
	}

	var features []string
	for name := range rows[0] {
		if name != decision {
			features = append(features, name)
		}
	}
	sort.Strings(features) // deterministic tie-breaking
	return build(rows, features, decision), nil
}

func build(rows []Row, features []string, decision string) *Node {
	if allSameDecision(rows, decision) {
		return &Node{Decision: rows[0][decision]}
	}
	if len(features) == 0 {
		return &Node{Decision: majorityDecision(rows, decision)}
	}

	best := ""
	bestGain := -1.0
	for _, f := range features {
		if gain := InformationGain(rows, f, decision); gain > bestGain {
			bestGain = gain
			best = f
		}
	}
	if best == "" {
		return &Node{Decision: majorityDecision(rows, decision)}
	}

	remaining := make([]string, 0, len(features)-1)
	for _, f := range features {
		if f != best {
			remaining = append(remaining, f)
		}
	}

	node := &Node{Feature: best, Children: make(map[string]*Node)}
	for value, subset := range splitBy(rows, best) {
		node.Children[value] = build(subset, remaining, decision)
	}
	return node
}

// Classify walks the tree with the row's attribute values. The second
// return is false when the row carries a value the tree never saw.
func (n *Node) Classify(row Row) (string, bool) {
	for !n.IsLeaf() {
		child, ok := n.Children[row[n.Feature]]
		if !ok {
			return "", false
		}
		n = child
	}
	return n.Decision, true
}

// Fprint pretty-prints the tree.
func Fprint(w io.Writer, n *Node) {
	fprint(w, n, "")
}

func fprint(w io.Writer, n *Node, indent string) {
	if n.IsLeaf() {
		fmt.Fprintf(w, "%sDecision: %s\n", indent, n.Decision)
		return
	}
	fmt.Fprintf(w, "%sFeature: %s\n", indent, n.Feature)
	values := make([]string, 0, len(n.Children))
	for v := range n.Children {
		values = append(values, v)
	}
	sort.Strings(values)
	for _, v := range values {
		fmt.Fprintf(w, "%s  Value: %s\n", indent, v)
		fprint(w, n.Children[v], indent+"    ")
	}
}

func splitBy(rows []Row, feature string) map[string][]Row {
	subsets := make(map[string][]Row)
	for _, row := range rows {
		subsets[row[feature]] = append(subsets[row[feature]], row)
	}
	return subsets
}

func allSameDecision(rows []Row, decision string) bool {
	if len(rows) == 0 {
		return true
	}
	first := rows[0][decision]
	for _, row := range rows[1:] {
		if row[decision] != first {
			return false
		}
	}
	return true
}

// majorityDecision breaks count ties lexicographically so tree shape
// is reproducible.
func majorityDecision(rows []Row, decision string) string {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row[decision]]++
	}
	best := ""
	bestCount := -1
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best = value
			bestCount = count
		}
	}
	return best
}
