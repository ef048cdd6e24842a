package xmlutil

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// NodePath returns the slash separated element path of n, from the
// document root down. Elements sharing their name with a sibling carry a
// 1-based position, e.g. /Model/Modes/Mode[3]/Extras.
func NodePath(n *xmlquery.Node) string {
	var parts []string
	for ; n != nil && n.Type != xmlquery.DocumentNode; n = n.Parent {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		parts = append(parts, step(n))
	}
	if len(parts) == 0 {
		return "/"
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// ChildPath returns the path of a (possibly absent) child element name of n.
func ChildPath(n *xmlquery.Node, name string) string {
	p := NodePath(n)
	if p == "/" {
		return p + name
	}
	return p + "/" + name
}

func step(n *xmlquery.Node) string {
	pos, total := 0, 0
	if n.Parent == nil {
		return n.Data
	}
	for it := n.Parent.FirstChild; it != nil; it = it.NextSibling {
		if it.Type != xmlquery.ElementNode || it.Data != n.Data {
			continue
		}
		total++
		if it == n {
			pos = total
		}
	}
	if total < 2 {
		return n.Data
	}
	return n.Data + "[" + strconv.Itoa(pos) + "]"
}
