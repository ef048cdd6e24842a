package vcf

import (
	"bytes"

	"github.com/dlstool/vcf/analyzer"
	"github.com/dlstool/vcf/convert"
	"github.com/dlstool/vcf/model"
	"github.com/dlstool/vcf/parser"
	"github.com/dlstool/vcf/schema"
	"github.com/dlstool/vcf/vcfio"
	"github.com/dlstool/vcf/writer"
	"github.com/pkg/errors"
)

// DetectVersion resolves the schema version of an XML document. Malformed
// or unrecognised documents are schema.Unknown.
func DetectVersion(xml []byte) schema.Version { return schema.DetectBytes(xml) }

func ParseV1(xml []byte) (*model.V1, error) { return parser.V1(bytes.NewReader(xml)) }
func ParseV2(xml []byte) (*model.V2, error) { return parser.V2(bytes.NewReader(xml)) }

func AnalyzeV1(m *model.V1) analyzer.V1Summary { return analyzer.V1(m) }
func AnalyzeV2(m *model.V2) analyzer.V2Summary { return analyzer.V2(m) }

func ConvertV1ToV2(m *model.V1) (*model.V2, model.LossReport) { return convert.V1ToV2(m) }
func ConvertV2ToV1(m *model.V2) (*model.V1, model.LossReport) { return convert.V2ToV1(m) }

func WriteV1(m *model.V1, opts ...writer.Option) ([]byte, error) { return writer.MarshalV1(m, opts...) }
func WriteV2(m *model.V2, opts ...writer.Option) ([]byte, error) { return writer.MarshalV2(m, opts...) }

// Document is a parsed configuration of either version. Exactly one of V1
// and V2 is set, matching Version.
type Document struct {
	Version schema.Version
	V1      *model.V1
	V2      *model.V2
}

// Parse detects the version of xml and parses it.
func Parse(xml []byte) (*Document, error) {
	doc := &Document{Version: DetectVersion(xml)}
	var err error
	switch doc.Version {
	case schema.V1:
		doc.V1, err = ParseV1(xml)
	case schema.V2:
		doc.V2, err = ParseV2(xml)
	default:
		// parse as v1 to surface the malformed-document or wrong-root error
		_, err = ParseV1(xml)
		if err == nil {
			err = errors.New("unrecognised document")
		}
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Document, error) {
	b, err := vcfio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return doc, nil
}

// Marshal writes doc in its own version.
func (doc *Document) Marshal(opts ...writer.Option) ([]byte, error) {
	switch {
	case doc.Version == schema.V1 && doc.V1 != nil:
		return WriteV1(doc.V1, opts...)
	case doc.Version == schema.V2 && doc.V2 != nil:
		return WriteV2(doc.V2, opts...)
	}
	return nil, errors.Errorf("cannot write a %s document", doc.Version)
}

// Convert returns doc converted to the other version.
func (doc *Document) Convert() (*Document, model.LossReport, error) {
	switch {
	case doc.Version == schema.V1 && doc.V1 != nil:
		m, loss := ConvertV1ToV2(doc.V1)
		return &Document{Version: schema.V2, V2: m}, loss, nil
	case doc.Version == schema.V2 && doc.V2 != nil:
		m, loss := ConvertV2ToV1(doc.V2)
		return &Document{Version: schema.V1, V1: m}, loss, nil
	}
	return nil, nil, errors.Errorf("cannot convert a %s document", doc.Version)
}

// Save writes doc to path, replacing any existing file atomically.
func Save(path string, doc *Document, opts ...writer.Option) error {
	b, err := doc.Marshal(opts...)
	if err != nil {
		return err
	}
	return vcfio.WriteFile(path, b, 0o644)
}
