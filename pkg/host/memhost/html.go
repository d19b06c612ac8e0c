package memhost

import (
	"io"
	"strconv"
	"strings"

	"github.com/vango-dev/tessera/pkg/vdom"
)

// voidElements are elements that have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// HTMLOptions configures HTML snapshots.
type HTMLOptions struct {
	// IDAttribute, when set, adds the host ID of every element under this
	// attribute name (e.g. "data-tid").
	IDAttribute string
}

// HTML returns the markup of n and its descendants.
func HTML(n *Node) string {
	var sb strings.Builder
	WriteHTML(&sb, n, HTMLOptions{})
	return sb.String()
}

// WriteHTML writes the markup of n to w.
func WriteHTML(w io.Writer, n *Node, opts HTMLOptions) error {
	sw := &stickyWriter{w: w}
	writeNode(sw, n, opts)
	return sw.err
}

// stickyWriter keeps the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) str(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

func writeNode(w *stickyWriter, n *Node, opts HTMLOptions) {
	switch n.kind {
	case vdom.KindText:
		w.str(escapeHTML(n.text))
	case vdom.KindRawText:
		w.str(n.text)
	case vdom.KindComment:
		w.str("<!--")
		w.str(strings.ReplaceAll(n.text, "--", "- -"))
		w.str("-->")
	case vdom.KindElement:
		w.str("<")
		w.str(n.tag)
		if opts.IDAttribute != "" {
			w.str(" ")
			w.str(opts.IDAttribute)
			w.str(`="`)
			w.str(strconv.FormatUint(n.id, 10))
			w.str(`"`)
		}
		for _, a := range n.attrs {
			w.str(" ")
			w.str(a.Key)
			w.str(`="`)
			w.str(escapeAttr(a.Value))
			w.str(`"`)
		}
		w.str(">")
		if voidElements[n.tag] {
			return
		}
		for _, c := range n.children {
			writeNode(w, c, opts)
		}
		w.str("</")
		w.str(n.tag)
		w.str(">")
	}
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for an attribute value. Whitespace control
// characters are escaped too so they survive attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteString(escapeHTML(string(r)))
		}
	}

	return buf.String()
}
