package graphml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/matzehuels/minigraphml/pkg/collection"
	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
	"github.com/matzehuels/minigraphml/pkg/observability"
)

// DuplicatePolicy decides how the loader treats repeated node or edge ids.
type DuplicatePolicy int

const (
	// DuplicatesReject fails the load with ErrDuplicateNodeID or
	// ErrDuplicateEdgeID.
	DuplicatesReject DuplicatePolicy = iota
	// DuplicatesLastWins keeps one entry per id, at the position of its first
	// occurrence, holding the value of its last occurrence.
	DuplicatesLastWins
	// DuplicatesFirstWins keeps the first occurrence of each id and drops
	// the later ones.
	DuplicatesFirstWins
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatesReject:
		return "reject"
	case DuplicatesLastWins:
		return "last-wins"
	case DuplicatesFirstWins:
		return "first-wins"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy parses the configuration spelling of a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "reject":
		return DuplicatesReject, nil
	case "last-wins":
		return DuplicatesLastWins, nil
	case "first-wins":
		return DuplicatesFirstWins, nil
	}
	return 0, fmt.Errorf("unknown duplicate policy %q", s)
}

// Options configures loading.
type Options struct {
	// Duplicates selects the duplicate id policy. The zero value rejects.
	Duplicates DuplicatePolicy
	// StrictKeys requires every data key used by a node payload to be
	// declared by a node (or all) key. Payloads must implement [DataKeyer]
	// to be checked.
	StrictKeys bool
	// Logger receives debug output for each stage. Nil discards it.
	Logger *log.Logger
}

// DefaultOptions returns the options used by the package-level load functions.
func DefaultOptions() Options {
	return Options{Duplicates: DuplicatesReject}
}

// Loader loads documents whose nodes carry payload type P.
// A Loader holds no per-document state and may be reused.
type Loader[P any] struct {
	opts   Options
	logger *log.Logger
}

// NewLoader returns a loader using opts.
func NewLoader[P any](opts Options) *Loader[P] {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader[P]{opts: opts, logger: logger}
}

// LoadFile reads the whole file at path and loads it with default options.
func LoadFile[P any](path string) (*Document[P], error) {
	return NewLoader[P](DefaultOptions()).LoadFile(path)
}

// LoadString loads a document from text with default options.
func LoadString[P any](text string) (*Document[P], error) {
	return NewLoader[P](DefaultOptions()).LoadString(text)
}

// Read loads a document from r with default options. Read does not close r.
func Read[P any](r io.Reader) (*Document[P], error) {
	return NewLoader[P](DefaultOptions()).Read(r)
}

// LoadFile reads the whole file at path and loads it.
// An unreadable file is an IO_ERROR; everything else behaves like
// [Loader.LoadString].
func (l *Loader[P]) LoadFile(path string) (*Document[P], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeIO, err, "read %s", path)
	}
	return l.load(bytes.NewReader(data), path)
}

// LoadString decodes text and runs [EnsureConsistency] on the result.
// Malformed XML, a payload that does not fit P, or a document without
// exactly one graph is a PARSE_ERROR; a failed consistency pass is a
// CONSISTENCY_ERROR. No partial document is ever returned.
func (l *Loader[P]) LoadString(text string) (*Document[P], error) {
	return l.load(strings.NewReader(text), "<string>")
}

// Read is like [Loader.LoadString] but consumes r.
func (l *Loader[P]) Read(r io.Reader) (*Document[P], error) {
	return l.load(r, "<reader>")
}

func (l *Loader[P]) load(r io.Reader, source string) (*Document[P], error) {
	hooks := observability.Load()

	start := time.Now()
	doc, err := l.decode(r, source)
	if err != nil {
		hooks.OnParseComplete(source, 0, 0, time.Since(start), err)
		l.logger.Debug("parse failed", "source", source, "err", err)
		return nil, err
	}
	g := doc.graph
	hooks.OnParseComplete(source, g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
	l.logger.Debug("parsed graph",
		"source", source,
		"graph", g.id,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))

	start = time.Now()
	err = EnsureConsistency(doc, l.opts)
	hooks.OnValidateComplete(source, time.Since(start), err)
	if err != nil {
		l.logger.Debug("validation failed", "source", source, "err", err)
		return nil, err
	}
	l.logger.Debug("validated graph", "source", source, "duration", time.Since(start))
	doc.graph.logger = l.logger
	return doc, nil
}

func (l *Loader[P]) decode(r io.Reader, source string) (*Document[P], error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var raw xmlDocument[P]
	if err := dec.Decode(&raw); err != nil {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeParse, err, "decode %s", source)
	}
	if err := ensureEOF(dec); err != nil {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeParse, err, "decode %s", source)
	}
	if raw.XMLName.Local != rootElement {
		return nil, gmlerrors.New(gmlerrors.ErrCodeParse, "%s: root element <%s>, want <%s>", source, raw.XMLName.Local, rootElement)
	}
	if n := len(raw.Graphs); n != 1 {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeParse, ErrGraphCount, "%s has %d graphs", source, n)
	}
	return raw.fold(l.opts.Duplicates.collectionPolicy()), nil
}

// collectionPolicy picks the value the fold keeps for a repeated id.
// Under DuplicatesReject the choice is irrelevant: the collapsed ids fail
// the consistency pass.
func (p DuplicatePolicy) collectionPolicy() collection.Policy {
	if p == DuplicatesFirstWins {
		return collection.FirstWriteWins
	}
	return collection.LastWriteWins
}

// ensureEOF consumes what follows the root element. Only whitespace,
// comments and processing instructions may remain.
func ensureEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("%w: text %q", ErrTrailingContent, bytes.TrimSpace(t))
			}
		case xml.StartElement:
			return fmt.Errorf("%w: element <%s>", ErrTrailingContent, t.Name.Local)
		default:
			return fmt.Errorf("%w: %T", ErrTrailingContent, tok)
		}
	}
}

// charsetReader lets the decoder accept prologs such as
// encoding="ISO-8859-1". Output is always written as UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q: unsupported", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
