// ABOUTME: Rich text to HTML rendering for article bodies
// ABOUTME: Builds an html.Node tree from the document and renders it escaped

package view

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"

	"catcare-web/core/domain"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Block and inline node types mapped to a single element
var blockElements = map[string]atom.Atom{
	domain.NodeParagraph:     atom.P,
	domain.NodeHeading1:      atom.H1,
	domain.NodeHeading2:      atom.H2,
	domain.NodeHeading3:      atom.H3,
	domain.NodeHeading4:      atom.H4,
	domain.NodeHeading5:      atom.H5,
	domain.NodeHeading6:      atom.H6,
	domain.NodeUnorderedList: atom.Ul,
	domain.NodeOrderedList:   atom.Ol,
	domain.NodeListItem:      atom.Li,
	domain.NodeQuote:         atom.Blockquote,
}

// Text marks, applied innermost first in document order
var markElements = map[string]atom.Atom{
	domain.MarkBold:      atom.Strong,
	domain.MarkItalic:    atom.Em,
	domain.MarkUnderline: atom.U,
	domain.MarkCode:      atom.Code,
}

// Link schemes allowed in hyperlink hrefs; relative links are always allowed
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// RenderRichText renders a rich text document as HTML. Node types without a
// mapping render their children only; a nil document renders nothing.
func RenderRichText(doc *domain.RichTextNode) template.HTML {
	if doc == nil {
		return ""
	}

	var buf bytes.Buffer
	for _, node := range convert(doc) {
		// Rendering into a bytes.Buffer cannot fail
		_ = html.Render(&buf, node)
	}

	return template.HTML(buf.String())
}

// convert maps one rich text node to zero or more sibling HTML nodes
func convert(n *domain.RichTextNode) []*html.Node {
	if n == nil {
		return nil
	}

	switch n.NodeType {
	case domain.NodeText:
		return []*html.Node{textNode(n)}
	case domain.NodeHR:
		return []*html.Node{element(atom.Hr)}
	case domain.NodeHyperlink:
		return []*html.Node{hyperlink(n)}
	}

	if a, ok := blockElements[n.NodeType]; ok {
		el := element(a)
		appendChildren(el, n.Content)
		return []*html.Node{el}
	}

	// document and unrecognized types: keep the children, drop the wrapper
	var nodes []*html.Node
	for _, child := range n.Content {
		nodes = append(nodes, convert(child)...)
	}
	return nodes
}

// textNode wraps a text leaf in its mark elements
func textNode(n *domain.RichTextNode) *html.Node {
	node := &html.Node{Type: html.TextNode, Data: n.Value}

	for _, mark := range n.Marks {
		a, ok := markElements[mark.Type]
		if !ok {
			continue
		}
		wrapper := element(a)
		wrapper.AppendChild(node)
		node = wrapper
	}

	return node
}

// hyperlink renders a link that opens in a new tab. Unsafe hrefs are dropped.
func hyperlink(n *domain.RichTextNode) *html.Node {
	el := element(atom.A)
	if href, ok := safeHref(n.Data.URI); ok {
		el.Attr = append(el.Attr, html.Attribute{Key: "href", Val: href})
	}
	el.Attr = append(el.Attr,
		html.Attribute{Key: "target", Val: "_blank"},
		html.Attribute{Key: "rel", Val: "noopener noreferrer"},
	)
	appendChildren(el, n.Content)
	return el
}

func safeHref(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" && !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "", false
	}
	return raw, true
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func appendChildren(parent *html.Node, children []*domain.RichTextNode) {
	for _, child := range children {
		for _, node := range convert(child) {
			parent.AppendChild(node)
		}
	}
}
