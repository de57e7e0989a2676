package graphml

import (
	"encoding/xml"
	"io"
	"strings"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
)

// Serialize returns the document as UTF-8 GraphML: the XML declaration, the
// body indented by two spaces, and a trailing newline. Nodes and edges are
// written in document order and edges without a direction marker stay
// without one, so loading the output yields an equal document.
func (d *Document[P]) Serialize() (string, error) {
	var sb strings.Builder
	if err := d.Write(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write is like [Document.Serialize] but streams to w.
func (d *Document[P]) Write(w io.Writer) error {
	if d.graph.consumed {
		return gmlerrors.Wrap(gmlerrors.ErrCodeConsumed, ErrConsumed, "serialize graph %q", d.graph.id)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return gmlerrors.Wrap(gmlerrors.ErrCodeIO, err, "write header")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	raw := d.unfold()
	if err := enc.Encode(&raw); err != nil {
		return gmlerrors.Wrap(gmlerrors.ErrCodeEncode, err, "encode graph %q", d.graph.id)
	}
	if err := enc.Close(); err != nil {
		return gmlerrors.Wrap(gmlerrors.ErrCodeEncode, err, "flush graph %q", d.graph.id)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return gmlerrors.Wrap(gmlerrors.ErrCodeIO, err, "write trailer")
	}
	return nil
}
