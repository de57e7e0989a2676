package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
	"github.com/matzehuels/minigraphml/pkg/indexed"
)

// Options configures DOT generation.
type Options struct {
	// EdgeLabels prints each edge's label next to its arrow.
	EdgeLabels bool
	// RankDir is the Graphviz rankdir (TB, LR, BT or RL). Empty means TB.
	RankDir string
}

// ValidRankDir reports whether dir is a rankdir Graphviz accepts.
// The empty string is valid and selects the default.
func ValidRankDir(dir string) bool {
	switch strings.ToUpper(dir) {
	case "", "TB", "LR", "BT", "RL":
		return true
	}
	return false
}

// ToDOT converts an indexed graph to Graphviz DOT source.
func ToDOT(g *indexed.Graph, opts Options) string {
	rankdir := strings.ToUpper(opts.RankDir)
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  v%d [label=%q];\n", v.Index, v.Label)
	}

	if g.EdgeCount() > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.Edges() {
		if opts.EdgeLabels && e.Label != "" {
			fmt.Fprintf(&buf, "  v%d -> v%d [label=%q];\n", e.Source, e.Target, e.Label)
			continue
		}
		fmt.Fprintf(&buf, "  v%d -> v%d;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeRender, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing starts at the origin
// and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
