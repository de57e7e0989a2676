package graphml

import (
	"encoding/xml"
	"fmt"
)

// EdgeDirection is the directedness of a single edge.
//
// On the wire it is the optional <directed> child of <edge>. A missing
// element decodes to DirectionUnspecified, and DirectionUnspecified is never
// written back, so documents without markers never gain one.
type EdgeDirection int

const (
	DirectionUnspecified EdgeDirection = iota
	DirectionDirected
	DirectionUndirected
)

// DirectionFromBool maps an optional boolean to a direction:
// nil is unspecified, true is directed, false is undirected.
func DirectionFromBool(b *bool) EdgeDirection {
	switch {
	case b == nil:
		return DirectionUnspecified
	case *b:
		return DirectionDirected
	default:
		return DirectionUndirected
	}
}

// Bool is the inverse of [DirectionFromBool].
func (d EdgeDirection) Bool() *bool {
	var b bool
	switch d {
	case DirectionDirected:
		b = true
	case DirectionUndirected:
		b = false
	default:
		return nil
	}
	return &b
}

// IsUnspecified reports whether d carries no directedness marker.
func (d EdgeDirection) IsUnspecified() bool { return d == DirectionUnspecified }

func (d EdgeDirection) String() string {
	switch d {
	case DirectionDirected:
		return "directed"
	case DirectionUndirected:
		return "undirected"
	case DirectionUnspecified:
		return "unspecified"
	default:
		return fmt.Sprintf("EdgeDirection(%d)", int(d))
	}
}

// MarshalXML writes <directed>true|false</directed>, or nothing when unspecified.
func (d EdgeDirection) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	b := d.Bool()
	if b == nil {
		return nil
	}
	return e.EncodeElement(*b, start)
}

// UnmarshalXML reads the boolean body of a <directed> element.
func (d *EdgeDirection) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var b bool
	if err := dec.DecodeElement(&b, &start); err != nil {
		return fmt.Errorf("directed: %w", err)
	}
	*d = DirectionFromBool(&b)
	return nil
}
