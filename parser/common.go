package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/dlstool/vcf/schema"
	"github.com/dlstool/vcf/vcferr"
	"github.com/dlstool/vcf/xmlutil"
	"github.com/pkg/errors"
)

// decoder reads typed values from a parsed document. The first error
// encountered is kept and later reads return zero values.
type decoder struct {
	err error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = errors.WithStack(err)
	}
}

// load parses r and returns the document and its root element, checking
// that the root is the wanted version's root tag.
func load(r io.Reader, want schema.Version) (*xmlquery.Node, *xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, nil, errors.WithStack(vcferr.MalformedDocument(
			vcferr.WithMessage(err.Error()), vcferr.WithCause(err)))
	}
	name := rootName(want)
	root := schema.Root(doc)
	if root == nil {
		return nil, nil, errors.WithStack(vcferr.MissingElement(name.Local,
			vcferr.WithPath(xmlutil.ChildPath(doc, name.Local)), vcferr.WithMessage("document has no root element")))
	}
	// the root tag must match exactly; marker children or a vehicles
	// attribute on another root are not enough
	if !xmlutil.Is(root, name) {
		return nil, nil, errors.WithStack(vcferr.WrongRoot(root.Data,
			vcferr.WithPath(xmlutil.NodePath(root)),
			vcferr.WithMessage(fmt.Sprintf("want a %s <%s> document, found <%s>", want, name.Local, root.Data))))
	}
	return doc, root, nil
}

func rootName(v schema.Version) xml.Name {
	if v == schema.V2 {
		return schema.RootV2
	}
	return schema.RootV1
}

// child returns the first child element of n called name.
func child(n *xmlquery.Node, name string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for it := n.FirstChild; it != nil; it = it.NextSibling {
		if it.Type == xmlquery.ElementNode && it.Data == name {
			return it
		}
	}
	return nil
}

// children returns the child elements of n called name, in document order.
func children(n *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	if n == nil {
		return out
	}
	for it := n.FirstChild; it != nil; it = it.NextSibling {
		if it.Type == xmlquery.ElementNode && it.Data == name {
			out = append(out, it)
		}
	}
	return out
}

// lookup follows path below n and returns the value of the element found.
func lookup(n *xmlquery.Node, path ...string) (*xmlquery.Node, string, bool) {
	if n == nil {
		return nil, "", false
	}
	for _, name := range path {
		if n = child(n, name); n == nil {
			return nil, "", false
		}
	}
	if v, ok := attr(n, "value"); ok {
		return n, v, true
	}
	return n, strings.TrimSpace(n.InnerText()), true
}

func attr(n *xmlquery.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (d *decoder) text(n *xmlquery.Node, path ...string) string {
	_, v, _ := lookup(n, path...)
	return v
}

// textOr returns def when the element is absent.
func (d *decoder) textOr(def string, n *xmlquery.Node, path ...string) string {
	if _, v, ok := lookup(n, path...); ok {
		return v
	}
	return def
}

func parseBool(s string) bool { return strings.EqualFold(strings.TrimSpace(s), "true") }

func (d *decoder) bool(n *xmlquery.Node, path ...string) bool {
	_, v, _ := lookup(n, path...)
	return parseBool(v)
}

func (d *decoder) int(n *xmlquery.Node, path ...string) int {
	el, v, ok := lookup(n, path...)
	if !ok || v == "" {
		return 0
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		d.invalid(el, v, "an integer", err)
	}
	return i
}

func (d *decoder) uint32(n *xmlquery.Node, path ...string) uint32 {
	el, v, ok := lookup(n, path...)
	if !ok || v == "" {
		return 0
	}
	base := 10
	if s := strings.ToLower(v); strings.HasPrefix(s, "0x") {
		v, base = v[2:], 16
	}
	u, err := strconv.ParseUint(v, base, 32)
	if err != nil {
		d.invalid(el, v, "an unsigned 32 bit integer", err)
	}
	return uint32(u)
}

func (d *decoder) float(n *xmlquery.Node, path ...string) float64 {
	el, v, ok := lookup(n, path...)
	if !ok || v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d.invalid(el, v, "a number", err)
	}
	return f
}

func (d *decoder) attrInt(n *xmlquery.Node, name string) int {
	v, ok := attr(n, name)
	if v = strings.TrimSpace(v); !ok || v == "" {
		return 0
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		d.fail(vcferr.InvalidValue(n.Data,
			vcferr.WithPath(xmlutil.NodePath(n)+"/@"+name),
			vcferr.WithMessage(fmt.Sprintf("%q is not an integer", v)),
			vcferr.WithCause(err)))
	}
	return i
}

func (d *decoder) attrBool(n *xmlquery.Node, name string) bool {
	v, _ := attr(n, name)
	return parseBool(v)
}

// required returns the non-blank value of a mandatory attribute.
func (d *decoder) required(n *xmlquery.Node, name string) string {
	v, _ := attr(n, name)
	if v = strings.TrimSpace(v); v == "" {
		d.fail(vcferr.MissingAttribute(name, n.Data, vcferr.WithPath(xmlutil.NodePath(n))))
	}
	return v
}

func (d *decoder) invalid(el *xmlquery.Node, v, what string, err error) {
	d.fail(vcferr.InvalidValue(el.Data,
		vcferr.WithPath(xmlutil.NodePath(el)),
		vcferr.WithMessage(fmt.Sprintf("%q is not %s", v, what)),
		vcferr.WithCause(err)))
}
