package wikipedia

import (
	"strings"

	"golang.org/x/net/html"
)

// Node helpers shared by the three extractors. The rendered pages carry no
// schema contract, so everything downstream works on shape, not on class
// names or ids.

func parseDocument(markup string) (*html.Node, error) {
	return html.Parse(strings.NewReader(markup))
}

func isElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// collectSequence returns the nodes matching any of the given tags in
// document order. Nested matches are not descended into, which keeps one
// table from appearing twice in the sequence.
func collectSequence(root *html.Node, tags ...string) []*html.Node {
	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	var out []*html.Node
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && wanted[n.Data] {
			out = append(out, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(root)
	return out
}

func collectTables(root *html.Node) []*html.Node {
	return collectSequence(root, "table")
}

func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if isElement(n, "tr") {
			rows = append(rows, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(table)
	return rows
}

func rowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for child := row.FirstChild; child != nil; child = child.NextSibling {
		if isElement(child, "td") || isElement(child, "th") {
			cells = append(cells, child)
		}
	}
	return cells
}

func allHeaderCells(cells []*html.Node) bool {
	for _, cell := range cells {
		if !isElement(cell, "th") {
			return false
		}
	}
	return len(cells) > 0
}

// cellText flattens a cell to text. Flag images and footnote superscripts
// are dropped, <br> becomes a newline so multi-line medalist cells split
// into segments, and non-breaking spaces become plain spaces.
func cellText(n *html.Node) string {
	var b strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "img", "sup", "style", "script":
				return
			case "br":
				b.WriteByte('\n')
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return strings.ReplaceAll(b.String(), " ", " ")
}

// headingText flattens a heading, dropping the "[edit]" span the render
// endpoint leaves behind.
func headingText(n *html.Node) string {
	text := cellText(n)
	if idx := strings.Index(text, "[edit]"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
