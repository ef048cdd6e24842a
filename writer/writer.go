package writer

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/dlstool/vcf/vcferr"
	"github.com/pkg/errors"
)

// DefaultIndent is the indentation used unless WithIndent is given.
const DefaultIndent = "  "

type options struct {
	indent string
}

// Option is a writer option function
type Option func(*options)

// WithIndent sets the per level indentation. An empty string writes the
// document on a single line.
func WithIndent(indent string) Option { return func(o *options) { o.indent = indent } }

func newOptions(opts []Option) options {
	o := options{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func encode(w io.Writer, doc any, opts []Option) error {
	o := newOptions(opts)
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", o.indent)
	if err := enc.Encode(doc); err != nil {
		return errors.WithStack(vcferr.WriteFailed("", err, vcferr.WithMessage("encoding document")))
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return errors.WithStack(vcferr.WriteFailed("", err))
	}
	return nil
}

// value is a carcols style <name value="..."/> element.
type value struct {
	Value string `xml:"value,attr"`
}

func float(f float64) value { return value{formatFloat(f)} }
func integer(i int) value   { return value{strconv.Itoa(i)} }
func boolean(b bool) value  { return value{strconv.FormatBool(b)} }
func seq(u uint32) value    { return value{strconv.FormatUint(uint64(u), 10)} }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
