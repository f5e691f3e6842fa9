package resume

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry in a document outline.
type Heading struct {
	Level int
	Title string
}

// Outline extracts the heading structure of a markdown document in document
// order. It is an analysis helper for inspection output; it does not attempt
// to re-render markdown.
func Outline(doc string) []Heading {
	source := []byte(doc)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			headings = append(headings, Heading{
				Level: h.Level,
				Title: headingTitle(h, source),
			})
		}
		return gmast.WalkContinue, nil
	})

	return headings
}

func headingTitle(h *gmast.Heading, source []byte) string {
	var sb strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return strings.TrimSpace(sb.String())
}
