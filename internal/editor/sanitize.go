// Package editor is the server half of the rich text editor: it normalizes
// the HTML fragments the admin editor submits (blog bodies, specialty
// content, the about bio) to the editor's fixed extension set, and replaces
// embedded data-URI images with uploaded URLs.
package editor

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// The extension set the editor is configured with: headings 2-3, links,
// images, tables, text alignment, highlight, underline.
var allowedTags = map[string]bool{
	"h2": true, "h3": true,
	"p": true, "br": true, "blockquote": true,
	"a": true, "img": true,
	"strong": true, "b": true, "em": true, "i": true,
	"u": true, "mark": true, "s": true,
	"ul": true, "ol": true, "li": true,
	"table": true, "thead": true, "tbody": true,
	"tr": true, "th": true, "td": true,
}

// demotedTags are heading levels outside the configured range; their text
// survives as a paragraph.
var demotedTags = map[string]bool{
	"h1": true, "h4": true, "h5": true, "h6": true,
}

// droppedTags are removed with their entire subtree.
var droppedTags = map[string]bool{
	"script": true, "style": true, "iframe": true,
	"object": true, "embed": true, "form": true,
}

// Sanitize reduces an HTML fragment to the editor's extension set. Unknown
// elements are unwrapped (their children survive), dangerous ones are
// dropped wholesale, and attributes are filtered per element.
func Sanitize(fragment string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nodes {
		if err := renderClean(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func parseFragment(fragment string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(fragment), ctx)
}

func renderClean(sb *strings.Builder, n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(html.EscapeString(n.Data))
		return nil
	case html.ElementNode:
		// handled below
	default:
		return nil
	}

	tag := strings.ToLower(n.Data)
	if droppedTags[tag] {
		return nil
	}
	if demotedTags[tag] {
		tag = "p"
	} else if !allowedTags[tag] {
		// Unwrap: children survive, the element itself does not.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := renderClean(sb, c); err != nil {
				return err
			}
		}
		return nil
	}

	attrs := cleanAttributes(tag, n.Attr)
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteByte('"')
	}
	if tag == "br" || tag == "img" {
		sb.WriteString("/>")
		return nil
	}
	sb.WriteByte('>')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := renderClean(sb, c); err != nil {
			return err
		}
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
	return nil
}

func cleanAttributes(tag string, attrs []html.Attribute) []html.Attribute {
	var out []html.Attribute
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		key := strings.ToLower(a.Key)
		switch {
		case tag == "a" && key == "href" && safeLinkURL(a.Val):
			out = append(out, html.Attribute{Key: key, Val: a.Val})
		case tag == "a" && (key == "target" || key == "rel"):
			out = append(out, html.Attribute{Key: key, Val: a.Val})
		case tag == "img" && key == "src" && safeImageURL(a.Val):
			out = append(out, html.Attribute{Key: key, Val: a.Val})
		case tag == "img" && (key == "alt" || key == "title"):
			out = append(out, html.Attribute{Key: key, Val: a.Val})
		case (tag == "th" || tag == "td") && (key == "colspan" || key == "rowspan"):
			out = append(out, html.Attribute{Key: key, Val: a.Val})
		case key == "style":
			if style := cleanStyle(tag, a.Val); style != "" {
				out = append(out, html.Attribute{Key: key, Val: style})
			}
		}
	}
	return out
}

// cleanStyle keeps exactly the two inline declarations the editor writes:
// a manual width on images and text-align on blocks.
func cleanStyle(tag, style string) string {
	var kept []string
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		switch {
		case tag == "img" && name == "width" && safeStyleValue(value):
			kept = append(kept, "width: "+value)
		case name == "text-align" && safeTextAlign(value):
			kept = append(kept, "text-align: "+value)
		}
	}
	return strings.Join(kept, "; ")
}

func safeTextAlign(v string) bool {
	switch strings.ToLower(v) {
	case "left", "right", "center", "justify":
		return true
	}
	return false
}

func safeStyleValue(v string) bool {
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '%',
			r == 'p', r == 'x', r == 'e', r == 'm', r == 'r', r == 'v', r == 'w', r == 'h':
		default:
			return false
		}
	}
	return v != ""
}

func safeLinkURL(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "data:") || strings.HasPrefix(v, "vbscript:") {
		return false
	}
	return true
}

// safeImageURL admits http(s), relative and data URLs; data URLs only exist
// transiently between sanitizing and the upload rewrite.
func safeImageURL(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "vbscript:") {
		return false
	}
	if strings.HasPrefix(v, "data:") {
		return strings.HasPrefix(v, "data:image/")
	}
	return true
}
