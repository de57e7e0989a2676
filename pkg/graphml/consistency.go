package graphml

import (
	"errors"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
)

var (
	// ErrEmptyID is returned when a node or edge has an empty id attribute.
	ErrEmptyID = errors.New("id must not be empty")

	// ErrDuplicateNodeID is returned when two nodes share an id and the
	// loader rejects duplicates.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrDuplicateEdgeID is returned when two edges share an id and the
	// loader rejects duplicates.
	ErrDuplicateEdgeID = errors.New("duplicate edge id")

	// ErrUnknownSourceNode is returned when an edge source names no node.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned when an edge target names no node.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrUndeclaredKey is returned under strict key checking when a node
	// payload refers to a key no node key declares.
	ErrUndeclaredKey = errors.New("undeclared data key")

	// ErrGraphCount is returned when a document holds zero or several graphs.
	ErrGraphCount = errors.New("document must contain exactly one graph")

	// ErrTrailingContent is returned when anything but whitespace, comments
	// or processing instructions follows the root element.
	ErrTrailingContent = errors.New("content after root element")

	// ErrConsumed is returned when a graph is used after [Graph.IntoIndexed].
	ErrConsumed = errors.New("graph has been consumed")
)

// EnsureConsistency checks the invariants every loaded document satisfies.
// It does not modify doc. The first violation is returned as a
// CONSISTENCY_ERROR whose cause is one of the sentinel errors above.
//
// Checks, in order: empty ids, duplicate ids (only with [DuplicatesReject]),
// edge endpoints, and declared keys (only with Options.StrictKeys).
func EnsureConsistency[P any](doc *Document[P], opts Options) error {
	g := doc.graph
	if g.consumed {
		return gmlerrors.Wrap(gmlerrors.ErrCodeConsumed, ErrConsumed, "graph %q", g.id)
	}

	for n := range g.nodes.Values() {
		if n.ID == "" {
			return inconsistent(ErrEmptyID, "node")
		}
	}
	for e := range g.edges.Values() {
		if e.ID == "" {
			return inconsistent(ErrEmptyID, "edge %s -> %s", e.Source, e.Target)
		}
	}

	if opts.Duplicates == DuplicatesReject {
		if ids := g.nodes.Collapsed(); len(ids) > 0 {
			return inconsistent(ErrDuplicateNodeID, "node %q", ids[0])
		}
		if ids := g.edges.Collapsed(); len(ids) > 0 {
			return inconsistent(ErrDuplicateEdgeID, "edge %q", ids[0])
		}
	}

	for e := range g.edges.Values() {
		if !g.nodes.Has(e.Source) {
			return inconsistent(ErrUnknownSourceNode, "edge %q: source %q", e.ID, e.Source)
		}
		if !g.nodes.Has(e.Target) {
			return inconsistent(ErrUnknownTargetNode, "edge %q: target %q", e.ID, e.Target)
		}
	}

	if opts.StrictKeys {
		if err := checkKeys(doc); err != nil {
			return err
		}
	}
	return nil
}

func checkKeys[P any](doc *Document[P]) error {
	declared := make(map[string]bool)
	for _, k := range doc.AllKeys() {
		if k.For.Applies(KeyForNode) {
			declared[k.ID] = true
		}
	}
	for n := range doc.graph.nodes.Values() {
		if n.Data == nil {
			continue
		}
		dk, ok := any(*n.Data).(DataKeyer)
		if !ok {
			continue
		}
		if key := dk.DataKey(); key != "" && !declared[key] {
			return inconsistent(ErrUndeclaredKey, "node %q: key %q", n.ID, key)
		}
	}
	return nil
}

func inconsistent(sentinel error, format string, args ...any) error {
	return gmlerrors.Wrap(gmlerrors.ErrCodeConsistency, sentinel, format, args...)
}
