package graphml

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
)

func TestConsistencyErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		sentinel error
		mention  []string
	}{
		{
			name:     "UnknownSource",
			in:       `<graphml><graph id="G"><node id="a"/><edge id="e0" source="ghost" target="a"/></graph></graphml>`,
			sentinel: ErrUnknownSourceNode,
			mention:  []string{"e0", "ghost"},
		},
		{
			name:     "UnknownTarget",
			in:       `<graphml><graph id="G"><node id="a"/><edge id="e0" source="a" target="ghost"/></graph></graphml>`,
			sentinel: ErrUnknownTargetNode,
			mention:  []string{"e0", "ghost"},
		},
		{
			name:     "DuplicateNode",
			in:       `<graphml><graph id="G"><node id="a"/><node id="b"/><node id="a"/></graph></graphml>`,
			sentinel: ErrDuplicateNodeID,
			mention:  []string{`"a"`},
		},
		{
			name:     "DuplicateEdge",
			in:       `<graphml><graph id="G"><node id="a"/><edge id="e" source="a" target="a"/><edge id="e" source="a" target="a"/></graph></graphml>`,
			sentinel: ErrDuplicateEdgeID,
			mention:  []string{`"e"`},
		},
		{
			name:     "EmptyNodeID",
			in:       `<graphml><graph id="G"><node id=""/></graph></graphml>`,
			sentinel: ErrEmptyID,
			mention:  []string{"node"},
		},
		{
			name:     "MissingEdgeID",
			in:       `<graphml><graph id="G"><node id="a"/><edge source="a" target="a"/></graph></graphml>`,
			sentinel: ErrEmptyID,
			mention:  []string{"edge"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := LoadString[NoData](tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if doc != nil {
				t.Error("document returned alongside error")
			}
			if !gmlerrors.Is(err, gmlerrors.ErrCodeConsistency) {
				t.Errorf("code = %v, want %v", gmlerrors.GetCode(err), gmlerrors.ErrCodeConsistency)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want %v", err, tt.sentinel)
			}
			for _, m := range tt.mention {
				if !strings.Contains(err.Error(), m) {
					t.Errorf("error %q does not mention %s", err, m)
				}
			}
		})
	}
}

func TestConsistencyDanglingFile(t *testing.T) {
	_, err := LoadFile[NoData](filepath.Join("testdata", "dangling.graphml"))
	if !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("error = %v, want ErrUnknownTargetNode", err)
	}
}

func TestDuplicatesLastWins(t *testing.T) {
	in := `<graphml><graph id="G">
		<node id="a"><data key="d0">first</data></node>
		<node id="b"/>
		<node id="a"><data key="d0">second</data></node>
		<edge id="e" source="a" target="b"/>
		<edge id="e" source="b" target="a"/>
	</graph></graphml>`

	l := NewLoader[DataString](Options{Duplicates: DuplicatesLastWins})
	doc, err := l.LoadString(in)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	g := doc.Graph()
	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount = %d, want 2", g.NodeCount())
	}
	nodes := g.Nodes()
	if nodes[0].ID != "a" || nodes[1].ID != "b" {
		t.Errorf("order = [%s %s], want [a b]", nodes[0].ID, nodes[1].ID)
	}
	if nodes[0].Data == nil || nodes[0].Data.Value != "second" {
		t.Errorf("a.Data = %+v, want second", nodes[0].Data)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if e, _ := g.Edge("e"); e.Source != "b" || e.Target != "a" {
		t.Errorf("e = %s -> %s, want b -> a", e.Source, e.Target)
	}
}

func TestDuplicatesFirstWins(t *testing.T) {
	in := `<graphml><graph id="G">
		<node id="a"><data key="d0">first</data></node>
		<node id="b"/>
		<node id="a"><data key="d0">second</data></node>
	</graph></graphml>`

	doc, err := NewLoader[DataString](Options{Duplicates: DuplicatesFirstWins}).LoadString(in)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	nodes := doc.Graph().Nodes()
	if len(nodes) != 2 || nodes[0].ID != "a" || nodes[1].ID != "b" {
		t.Fatalf("nodes = %v, want [a b]", nodeIDs(doc.Graph()))
	}
	if nodes[0].Data == nil || nodes[0].Data.Value != "first" {
		t.Errorf("a.Data = %+v, want first", nodes[0].Data)
	}
}

func TestStrictKeys(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{
			name: "DocumentLevelKey",
			in: `<graphml><key id="d0" for="node" attr.type="string"/><graph id="G">
				<node id="a"><data key="d0">x</data></node></graph></graphml>`,
		},
		{
			name: "GraphLevelKeyForAll",
			in: `<graphml><graph id="G"><key id="d0" for="all"/>
				<node id="a"><data key="d0">x</data></node></graph></graphml>`,
		},
		{
			name: "NoDataIgnored",
			in:   `<graphml><graph id="G"><node id="a"/></graph></graphml>`,
		},
		{
			name: "Undeclared",
			in: `<graphml><graph id="G">
				<node id="a"><data key="d9">x</data></node></graph></graphml>`,
			wantErr: true,
		},
		{
			name: "EdgeKeyOnNode",
			in: `<graphml><key id="d0" for="edge"/><graph id="G">
				<node id="a"><data key="d0">x</data></node></graph></graphml>`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader[DataString](Options{StrictKeys: true})
			_, err := l.LoadString(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUndeclaredKey) {
				t.Errorf("error = %v, want ErrUndeclaredKey", err)
			}
		})
	}

	// Without StrictKeys undeclared keys are accepted.
	if _, err := LoadString[DataString](tests[3].in); err != nil {
		t.Errorf("lenient load: %v", err)
	}
}

func TestEnsureConsistencyConsumed(t *testing.T) {
	doc, err := LoadString[NoData](simpleDoc)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if err := EnsureConsistency(doc, DefaultOptions()); err != nil {
		t.Fatalf("EnsureConsistency on loaded document: %v", err)
	}
	if _, err := doc.IntoIndexed(); err != nil {
		t.Fatalf("IntoIndexed: %v", err)
	}
	err = EnsureConsistency(doc, DefaultOptions())
	if !gmlerrors.Is(err, gmlerrors.ErrCodeConsumed) {
		t.Errorf("code = %v, want %v", gmlerrors.GetCode(err), gmlerrors.ErrCodeConsumed)
	}
}
