package graphml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/minigraphml/pkg/collection"
)

// NoData is the payload type for graphs whose nodes carry no data.
// A <data> element decodes to an empty value and is written back empty.
type NoData struct{}

// DataString is the <data key="...">...</data> payload. Value holds the raw
// inner XML, so nested elements and entity references are written back
// exactly as they were read.
type DataString struct {
	Key   string `xml:"key,attr,omitempty"`
	Value string `xml:",innerxml"`
}

// DataKey returns the attribute key the payload refers to.
func (d DataString) DataKey() string { return d.Key }

// DataKeyer is implemented by payloads that expose the attribute key they
// refer to. Only such payloads take part in strict key validation.
type DataKeyer interface {
	DataKey() string
}

// Node is a graph vertex with an optional caller-defined payload.
// The payload nests inside <data> and its layout is owned by P.
type Node[P any] struct {
	ID   string `xml:"id,attr"`
	Data *P     `xml:"data,omitempty"`
}

// ErrRepeatedData is returned when a node holds more than one <data>
// element. A node payload occupies a single slot.
var ErrRepeatedData = errors.New("node has more than one <data> element")

// Identity returns the node id.
func (n Node[P]) Identity() string { return n.ID }

// UnmarshalXML decodes a <node> element. Unlike the default decoder it
// fails on a second <data> child instead of overwriting the first.
// Other child elements are skipped.
func (n *Node[P]) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Space == "" && a.Name.Local == "id" {
			n.ID = a.Value
		}
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "data" {
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			if n.Data != nil {
				return fmt.Errorf("node %q: %w", n.ID, ErrRepeatedData)
			}
			var p P
			if err := dec.DecodeElement(&p, &t); err != nil {
				return fmt.Errorf("node %q: data: %w", n.ID, err)
			}
			n.Data = &p
		case xml.EndElement:
			return nil
		}
	}
}

// Edge connects two nodes by id.
type Edge struct {
	ID        string        `xml:"id,attr"`
	Source    string        `xml:"source,attr"`
	Target    string        `xml:"target,attr"`
	Direction EdgeDirection `xml:"directed,omitempty"`
}

// Identity returns the edge id.
func (e Edge) Identity() string { return e.ID }

// Graph holds the nodes and edges of a document in document order.
//
// Graphs are read-only. [Graph.IntoIndexed] moves the contents out; after
// that the graph is empty and reports [Graph.Consumed].
type Graph[P any] struct {
	id          string
	edgeDefault string
	keys        []Key
	nodes       *collection.Ordered[Node[P]]
	edges       *collection.Ordered[Edge]
	consumed    bool
	logger      *log.Logger
}

// ID returns the graph id attribute.
func (g *Graph[P]) ID() string { return g.id }

// EdgeDefault returns the edgedefault attribute verbatim.
func (g *Graph[P]) EdgeDefault() string { return g.edgeDefault }

// Keys returns the keys declared inside <graph>.
func (g *Graph[P]) Keys() []Key { return slices.Clone(g.keys) }

// Node returns the node with the given id.
func (g *Graph[P]) Node(id string) (Node[P], bool) { return g.nodes.Get(id) }

// Edge returns the edge with the given id.
func (g *Graph[P]) Edge(id string) (Edge, bool) { return g.edges.Get(id) }

// Nodes returns the nodes in document order.
func (g *Graph[P]) Nodes() []Node[P] { return g.nodes.Slice() }

// Edges returns the edges in document order.
func (g *Graph[P]) Edges() []Edge { return g.edges.Slice() }

// AllNodes iterates over the nodes in document order.
func (g *Graph[P]) AllNodes() iter.Seq[Node[P]] { return g.nodes.Values() }

// AllEdges iterates over the edges in document order.
func (g *Graph[P]) AllEdges() iter.Seq[Edge] { return g.edges.Values() }

// NodeCount returns the number of nodes.
func (g *Graph[P]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of edges.
func (g *Graph[P]) EdgeCount() int { return g.edges.Len() }

// Consumed reports whether the graph was moved into an indexed graph.
func (g *Graph[P]) Consumed() bool { return g.consumed }

func (g *Graph[P]) release() {
	g.nodes = collection.New[Node[P]](g.nodes.Policy())
	g.edges = collection.New[Edge](g.edges.Policy())
	g.keys = nil
	g.consumed = true
}

// Document is a parsed GraphML file holding exactly one graph.
// Documents are only created by the load functions and are always
// consistent when returned.
type Document[P any] struct {
	namespace string
	keys      []Key
	graph     *Graph[P]
}

// Graph returns the document's graph.
func (d *Document[P]) Graph() *Graph[P] { return d.graph }

// Keys returns the keys declared directly under <graphml>.
func (d *Document[P]) Keys() []Key { return slices.Clone(d.keys) }

// Namespace returns the namespace of the root element, if any.
func (d *Document[P]) Namespace() string { return d.namespace }

// AllKeys returns document-level keys followed by graph-level keys.
func (d *Document[P]) AllKeys() []Key {
	return slices.Concat(d.keys, d.graph.keys)
}
