package xmlutil

import (
	"encoding/xml"

	"github.com/antchfx/xmlquery"
)

// Is reports whether n is an element called name. The match is exact and
// case sensitive; an element in a namespace only matches a name with the
// same Space.
func Is(n *xmlquery.Node, name xml.Name) bool {
	return n != nil && n.Type == xmlquery.ElementNode &&
		n.Data == name.Local && n.NamespaceURI == name.Space
}
