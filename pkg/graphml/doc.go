// Package graphml reads and writes single-graph GraphML documents and
// converts them into indexed graphs.
//
// # Model
//
// A [Document] holds exactly one [Graph]. The graph keeps its nodes and edges
// in document order behind an id-keyed collection, so lookups by id are O(1)
// and serialization reproduces the original order. Nodes carry an optional
// payload of caller-chosen type P that nests inside <data>; use [NoData]
// when the payload is irrelevant and [DataString] to carry each
// <data key="..."> body through unchanged as raw XML.
//
// Each [Edge] may carry a <directed>true|false</directed> marker, modeled as
// [EdgeDirection]. Edges without a marker stay unmarked through a load and
// serialize round trip.
//
// # Loading
//
//	doc, err := graphml.LoadFile[graphml.NoData]("graph.graphml")
//	if err != nil {
//	    return err
//	}
//
// Loading is all or nothing. Read failures are IO_ERROR, malformed XML and
// documents that do not hold exactly one graph are PARSE_ERROR, and
// documents that break an invariant are CONSISTENCY_ERROR (see
// [EnsureConsistency]). Use a [Loader] to change the duplicate id policy,
// enable strict key checking, or attach a logger.
//
// # Serializing
//
// [Document.Serialize] writes the XML declaration followed by the document
// indented with two spaces. Output is always UTF-8, whatever the input
// encoding was.
//
// # Conversion
//
// [Graph.IntoIndexed] moves the graph into an [indexed.Graph]. Vertex i is
// the i-th node, edge j the j-th edge. The source graph is emptied and
// reports itself consumed.
package graphml
