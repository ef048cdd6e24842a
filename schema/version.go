package schema

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/dlstool/vcf/xmlutil"
)

// Version is a VCF schema generation.
type Version int

const (
	// Unknown is a document that belongs to neither generation
	Unknown Version = iota
	// V1 is the fixed five-stage schema
	V1
	// V2 is the mode based schema
	V2
)

func (v Version) String() string {
	switch v {
	case Unknown:
		return "unknown"
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

func (v *Version) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(bytes.ToLower(b)) {
	case "unknown":
		*v = Unknown
	case "v1":
		*v = V1
	case "v2":
		*v = V2
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (v Version) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// AttrVehicles is the v2 root attribute listing the vehicle models.
const AttrVehicles = "vehicles"

var (
	RootV1 = xml.Name{Local: "CONFIG"}
	RootV2 = xml.Name{Local: "Model"}

	xpV1Sections = xpath.MustCompile(`/*/StageSettings|/*/SoundSettings`)
	xpV2Sections = xpath.MustCompile(`/*/Audio|/*/Modes`)
)

// Root returns the document element of doc, or nil.
func Root(doc *xmlquery.Node) *xmlquery.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == xmlquery.ElementNode {
		return doc
	}
	for it := doc.FirstChild; it != nil; it = it.NextSibling {
		if it.Type == xmlquery.ElementNode {
			return it
		}
	}
	return nil
}

// DetectNode resolves the version of a parsed document.
func DetectNode(doc *xmlquery.Node) Version {
	root := Root(doc)
	if root == nil {
		return Unknown
	}
	switch {
	case xmlutil.Is(root, RootV1):
		return V1
	case xmlutil.Is(root, RootV2), hasAttr(root, AttrVehicles):
		return V2
	case xmlquery.QuerySelector(doc, xpV1Sections) != nil:
		return V1
	case xmlquery.QuerySelector(doc, xpV2Sections) != nil:
		return V2
	}
	return Unknown
}

// Detect reads a document from r and resolves its version. Unreadable or
// malformed input is Unknown.
func Detect(r io.Reader) Version {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return Unknown
	}
	return DetectNode(doc)
}

// DetectBytes is Detect over an in-memory document.
func DetectBytes(b []byte) Version { return Detect(bytes.NewReader(b)) }

func hasAttr(n *xmlquery.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return true
		}
	}
	return false
}
