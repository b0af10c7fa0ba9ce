// Package description turns product description markup into Markdown for
// terminal rendering.
package description

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markdown converts a description, which may be plain text or an HTML
// fragment, into Markdown. Scripts and styles are dropped.
func Markdown(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	body := &nethtml.Node{Type: nethtml.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := nethtml.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return normalizeInline(html.UnescapeString(raw))
	}
	r := markdownWriter{}
	blocks := r.blocks(nodes, 0)
	return strings.Join(blocks, "\n\n")
}

type markdownWriter struct{}

func (r markdownWriter) blocks(nodes []*nethtml.Node, depth int) []string {
	out := make([]string, 0, len(nodes))
	inline := make([]string, 0, 4)
	flush := func() {
		text := normalizeInline(strings.Join(inline, ""))
		inline = inline[:0]
		if text != "" {
			out = append(out, text)
		}
	}
	for _, node := range nodes {
		if node.Type == nethtml.ElementNode && isBlock(node.DataAtom) {
			flush()
			if block := r.block(node, depth); block != "" {
				out = append(out, block)
			}
			continue
		}
		inline = append(inline, r.inline(node))
	}
	flush()
	return out
}

func (r markdownWriter) block(node *nethtml.Node, depth int) string {
	switch node.DataAtom {
	case atom.Script, atom.Style, atom.Noscript:
		return ""
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(node.Data[1] - '0')
		text := normalizeInline(r.inlineChildren(node))
		if text == "" {
			return ""
		}
		return strings.Repeat("#", level) + " " + text
	case atom.Ul, atom.Ol:
		return r.list(node, node.DataAtom == atom.Ol, depth)
	case atom.Blockquote:
		inner := strings.Join(r.blocks(children(node), depth), "\n\n")
		if inner == "" {
			return ""
		}
		lines := strings.Split(inner, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight("> "+line, " ")
		}
		return strings.Join(lines, "\n")
	case atom.Pre:
		return "```\n" + strings.Trim(collectRaw(node), "\r\n") + "\n```"
	case atom.Hr:
		return "---"
	default:
		return strings.Join(r.blocks(children(node), depth), "\n\n")
	}
}

func (r markdownWriter) list(node *nethtml.Node, ordered bool, depth int) string {
	indent := strings.Repeat("  ", depth)
	lines := make([]string, 0, 4)
	n := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode || child.DataAtom != atom.Li {
			continue
		}
		n++
		marker := "- "
		if ordered {
			marker = strconv.Itoa(n) + ". "
		}
		var text []string
		var nested []string
		for grand := child.FirstChild; grand != nil; grand = grand.NextSibling {
			if grand.Type == nethtml.ElementNode && (grand.DataAtom == atom.Ul || grand.DataAtom == atom.Ol) {
				nested = append(nested, r.list(grand, grand.DataAtom == atom.Ol, depth+1))
				continue
			}
			text = append(text, r.inline(grand))
		}
		lines = append(lines, indent+marker+normalizeInline(strings.Join(text, "")))
		lines = append(lines, nested...)
	}
	return strings.Join(lines, "\n")
}

func (r markdownWriter) inlineChildren(node *nethtml.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(r.inline(child))
	}
	return b.String()
}

func (r markdownWriter) inline(node *nethtml.Node) string {
	switch node.Type {
	case nethtml.TextNode:
		return Escape(node.Data)
	case nethtml.ElementNode:
	default:
		return ""
	}
	switch node.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Img:
		return ""
	case atom.Br:
		return "  \n"
	case atom.Strong, atom.B:
		return wrapNonEmpty("**", normalizeInline(r.inlineChildren(node)))
	case atom.Em, atom.I:
		return wrapNonEmpty("_", normalizeInline(r.inlineChildren(node)))
	case atom.Code, atom.Kbd, atom.Samp:
		return wrapNonEmpty("`", strings.TrimSpace(collectRaw(node)))
	case atom.A:
		text := normalizeInline(r.inlineChildren(node))
		href := strings.TrimSpace(attrValue(node, "href"))
		switch {
		case href == "":
			return text
		case text == "":
			return "<" + href + ">"
		default:
			return "[" + text + "](" + href + ")"
		}
	default:
		return r.inlineChildren(node)
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Blockquote, atom.Pre, atom.Hr,
		atom.Script, atom.Style, atom.Noscript, atom.Table, atom.Figure:
		return true
	}
	return false
}

// normalizeInline collapses whitespace inside each line while keeping hard
// breaks produced by <br>.
func normalizeInline(s string) string {
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		hardBreak := strings.HasSuffix(part, "  ")
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		if hardBreak {
			part += "  "
		}
		out = append(out, part)
	}
	return strings.TrimRight(strings.Join(out, "\n"), " ")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

// lineStartMarker matches text at the start of a line that Markdown would
// read as an ordered list item, bullet or block quote.
var lineStartMarker = regexp.MustCompile(`(?m)^(\s*)(\d+\.|[-+>])`)

// Escape makes s render as literal text in Markdown.
func Escape(s string) string {
	s = markdownEscaper.Replace(s)
	return lineStartMarker.ReplaceAllStringFunc(s, func(m string) string {
		return m[:len(m)-1] + `\` + m[len(m)-1:]
	})
}

func wrapNonEmpty(mark, s string) string {
	if s == "" {
		return ""
	}
	return mark + s + mark
}

func children(node *nethtml.Node) []*nethtml.Node {
	out := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, child)
	}
	return out
}

func attrValue(node *nethtml.Node, name string) string {
	for _, a := range node.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func collectRaw(node *nethtml.Node) string {
	if node.Type == nethtml.TextNode {
		return node.Data
	}
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(collectRaw(child))
	}
	return b.String()
}
