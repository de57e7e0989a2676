package graphml

import (
	"encoding/xml"

	"github.com/matzehuels/minigraphml/pkg/collection"
)

// xmlDocument is the wire form of a document. Node and edge storage is a
// plain sequence here and a keyed collection in [Graph].
//
// XMLName carries no tag name so the encoder writes the stored namespace
// back; the loader checks the root name itself.
type xmlDocument[P any] struct {
	XMLName xml.Name
	Keys    []Key         `xml:"key"`
	Graphs  []xmlGraph[P] `xml:"graph"`
}

const rootElement = "graphml"

type xmlGraph[P any] struct {
	ID          string    `xml:"id,attr,omitempty"`
	EdgeDefault string    `xml:"edgedefault,attr,omitempty"`
	Keys        []Key     `xml:"key"`
	Nodes       []Node[P] `xml:"node"`
	Edges       []Edge    `xml:"edge"`
}

// fold converts the single wire graph into a Document. Callers check the
// graph count first.
func (raw *xmlDocument[P]) fold(policy collection.Policy) *Document[P] {
	wg := raw.Graphs[0]
	return &Document[P]{
		namespace: raw.XMLName.Space,
		keys:      raw.Keys,
		graph: &Graph[P]{
			id:          wg.ID,
			edgeDefault: wg.EdgeDefault,
			keys:        wg.Keys,
			nodes:       collection.FromSliceWith(wg.Nodes, policy),
			edges:       collection.FromSliceWith(wg.Edges, policy),
		},
	}
}

// unfold is the inverse of fold.
func (d *Document[P]) unfold() xmlDocument[P] {
	g := d.graph
	return xmlDocument[P]{
		XMLName: xml.Name{Space: d.namespace, Local: rootElement},
		Keys:    d.keys,
		Graphs: []xmlGraph[P]{{
			ID:          g.id,
			EdgeDefault: g.edgeDefault,
			Keys:        g.keys,
			Nodes:       g.nodes.Slice(),
			Edges:       g.edges.Slice(),
		}},
	}
}
