package graphml

import (
	"encoding/xml"
	"fmt"
)

// KeyFor names the kind of element a [Key] applies to.
type KeyFor string

const (
	KeyForNode  KeyFor = "node"
	KeyForEdge  KeyFor = "edge"
	KeyForGraph KeyFor = "graph"
	KeyForAll   KeyFor = "all"
)

// UnmarshalXMLAttr rejects owner kinds GraphML does not define.
func (k *KeyFor) UnmarshalXMLAttr(attr xml.Attr) error {
	switch v := KeyFor(attr.Value); v {
	case KeyForNode, KeyForEdge, KeyForGraph, KeyForAll:
		*k = v
		return nil
	}
	return fmt.Errorf("key: unknown for=%q", attr.Value)
}

// Applies reports whether a key declared for k may be used on elements of kind.
// An absent for attribute means all, as in GraphML.
func (k KeyFor) Applies(kind KeyFor) bool {
	return k == kind || k == KeyForAll || k == ""
}

// AttrType is the declared value type of a [Key].
type AttrType string

const (
	AttrBoolean AttrType = "boolean"
	AttrInt     AttrType = "int"
	AttrLong    AttrType = "long"
	AttrFloat   AttrType = "float"
	AttrDouble  AttrType = "double"
	AttrString  AttrType = "string"
)

// UnmarshalXMLAttr rejects value types GraphML does not define.
func (t *AttrType) UnmarshalXMLAttr(attr xml.Attr) error {
	switch v := AttrType(attr.Value); v {
	case AttrBoolean, AttrInt, AttrLong, AttrFloat, AttrDouble, AttrString:
		*t = v
		return nil
	}
	return fmt.Errorf("key: unknown attr.type=%q", attr.Value)
}

// Key declares one named, typed attribute that nodes or edges may carry.
// Keys are kept verbatim; attribute values are never coerced to Type.
type Key struct {
	ID      string   `xml:"id,attr"`
	For     KeyFor   `xml:"for,attr,omitempty"`
	Name    string   `xml:"attr.name,attr,omitempty"`
	Type    AttrType `xml:"attr.type,attr,omitempty"`
	Default *string  `xml:"default,omitempty"`
}
