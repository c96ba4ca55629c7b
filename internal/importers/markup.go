package importers

import (
	"encoding/xml"
	"strings"
)

// xmlNode is a generic markup element tree. Concrete parsers walk it by
// tag name instead of declaring per-vendor document structs, since the
// formats are only loosely specified by their vendors.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlNode  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// parseXML parses raw text as a markup document. Returns nil when the
// parser reports a structural error, so callers can fail fast with a
// format error.
func parseXML(raw string) *xmlNode {
	var root xmlNode
	decoder := xml.NewDecoder(strings.NewReader(raw))
	decoder.Strict = false
	if err := decoder.Decode(&root); err != nil {
		return nil
	}
	return &root
}

// attr returns the named attribute's value, or "" when absent.
func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}

// child returns the first direct child with the given tag name.
func (n *xmlNode) child(name string) *xmlNode {
	for i := range n.Children {
		if strings.EqualFold(n.Children[i].XMLName.Local, name) {
			return &n.Children[i]
		}
	}
	return nil
}

// children returns all direct children with the given tag name.
func (n *xmlNode) children(name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		if strings.EqualFold(n.Children[i].XMLName.Local, name) {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// text returns the node's character data with surrounding whitespace
// removed.
func (n *xmlNode) text() string {
	return strings.TrimSpace(n.Text)
}

// childText returns the trimmed text of the first child with the given
// tag name, or "" when the child is absent.
func (n *xmlNode) childText(name string) string {
	if c := n.child(name); c != nil {
		return c.text()
	}
	return ""
}

// find walks the tree depth-first and returns the first descendant with
// the given tag name.
func (n *xmlNode) find(name string) *xmlNode {
	for i := range n.Children {
		c := &n.Children[i]
		if strings.EqualFold(c.XMLName.Local, name) {
			return c
		}
		if found := c.find(name); found != nil {
			return found
		}
	}
	return nil
}
