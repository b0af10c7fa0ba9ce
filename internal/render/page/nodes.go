package page

import (
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...nethtml.Attribute) *nethtml.Node {
	return &nethtml.Node{
		Type:     nethtml.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) nethtml.Attribute {
	return nethtml.Attribute{Key: key, Val: val}
}

func text(s string) *nethtml.Node {
	return &nethtml.Node{Type: nethtml.TextNode, Data: s}
}

func appendAll(parent *nethtml.Node, children ...*nethtml.Node) *nethtml.Node {
	for _, child := range children {
		if child != nil {
			parent.AppendChild(child)
		}
	}
	return parent
}

// rawFragment parses s as HTML in the context of parent, so markup in s is
// inserted rather than escaped. Unparseable input becomes a text node.
func rawFragment(parent *nethtml.Node, s string) {
	context := element(parent.DataAtom)
	nodes, err := nethtml.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		parent.AppendChild(text(s))
		return
	}
	appendAll(parent, nodes...)
}

// FindByID returns the first element below n with the given id attribute.
func FindByID(n *nethtml.Node, id string) *nethtml.Node {
	if n == nil {
		return nil
	}
	if n.Type == nethtml.ElementNode && nodeAttr(n, "id") == id {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := FindByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

func nodeAttr(node *nethtml.Node, name string) string {
	for _, a := range node.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func collectText(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == nethtml.TextNode {
		return node.Data
	}
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(collectText(child))
	}
	return b.String()
}
