// ABOUTME: Rich text document model mirrors the CMS structured text tree
// ABOUTME: Nodes are blocks, inlines or text leaves with optional marks

package domain

import "strings"

// Rich text node types
const (
	NodeDocument      = "document"
	NodeParagraph     = "paragraph"
	NodeHeading1      = "heading-1"
	NodeHeading2      = "heading-2"
	NodeHeading3      = "heading-3"
	NodeHeading4      = "heading-4"
	NodeHeading5      = "heading-5"
	NodeHeading6      = "heading-6"
	NodeUnorderedList = "unordered-list"
	NodeOrderedList   = "ordered-list"
	NodeListItem      = "list-item"
	NodeQuote         = "blockquote"
	NodeHR            = "hr"
	NodeHyperlink     = "hyperlink"
	NodeText          = "text"
)

// Text mark types
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkCode      = "code"
)

// RichTextNode is one node of a rich text document tree
type RichTextNode struct {
	NodeType string          `json:"nodeType"`
	Value    string          `json:"value,omitempty"`
	Marks    []Mark          `json:"marks,omitempty"`
	Data     NodeData        `json:"data"`
	Content  []*RichTextNode `json:"content,omitempty"`
}

// Mark is a text decoration applied to a text node
type Mark struct {
	Type string `json:"type"`
}

// NodeData carries node-specific attributes
type NodeData struct {
	// URI is set on hyperlink nodes
	URI string `json:"uri,omitempty"`
}

// PlainText concatenates the text values below the node
func (n *RichTextNode) PlainText() string {
	if n == nil {
		return ""
	}
	if n.NodeType == NodeText {
		return n.Value
	}
	var b strings.Builder
	for _, child := range n.Content {
		b.WriteString(child.PlainText())
	}
	return b.String()
}
