package vcferr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the stage of the pipeline an error originated in
type Kind int

const (
	// KindParse is a document parsing error: malformed XML, wrong root
	// element or a missing or invalid mandatory field
	KindParse Kind = iota
	// KindWrite is an I/O error writing an output document
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "parse":
		*k = KindParse
	case "write":
		*k = KindWrite
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error tags
const (
	TagMalformedDocument = "malformed-document"
	TagWrongRoot         = "wrong-root"
	TagMissingElement    = "missing-element"
	TagMissingAttribute  = "missing-attribute"
	TagInvalidValue      = "invalid-value"
	TagWriteFailed       = "write-failed"
)

// Error is a VCF pipeline error.
//
// Path is the slash separated element path of the offending node, for
// example /Model/Modes/Mode[3]/Extras/Extra[1]. Err holds the underlying
// cause, if any, and is reported verbatim.
type Error struct {
	Kind         Kind   `json:"kind" yaml:"kind"`
	Tag          string `json:"tag" yaml:"tag"`
	Path         string `json:"path,omitempty" yaml:"path,omitempty"`
	Message      string `json:"message,omitempty" yaml:"message,omitempty"`
	BadElement   string `json:"bad-element,omitempty" yaml:"bad-element,omitempty"`
	BadAttribute string `json:"bad-attribute,omitempty" yaml:"bad-attribute,omitempty"`
	Err          error  `json:"-" yaml:"-"`
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s error tag:%s", e.Kind, e.Tag)
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if e.BadAttribute != "" {
		s += " bad-attribute:" + e.BadAttribute
	}
	if e.BadElement != "" {
		s += " bad-element:" + e.BadElement
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, tag string, opts []Option) *Error {
	e := &Error{Kind: kind, Tag: tag}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MalformedDocument(opts ...Option) *Error {
	return newError(KindParse, TagMalformedDocument, opts)
}

// WrongRoot reports a document whose root element does not belong to
// the expected schema version.
func WrongRoot(rootName string, opts ...Option) *Error {
	e := newError(KindParse, TagWrongRoot, opts)
	e.BadElement = rootName
	return e
}

func MissingElement(elementName string, opts ...Option) *Error {
	e := newError(KindParse, TagMissingElement, opts)
	e.BadElement = elementName
	return e
}

func MissingAttribute(attributeName, elementName string, opts ...Option) *Error {
	e := newError(KindParse, TagMissingAttribute, opts)
	e.BadAttribute = attributeName
	e.BadElement = elementName
	return e
}

func InvalidValue(elementName string, opts ...Option) *Error {
	e := newError(KindParse, TagInvalidValue, opts)
	e.BadElement = elementName
	return e
}

// WriteFailed reports an output I/O failure. The underlying error is kept
// unmodified in Err.
func WriteFailed(path string, err error, opts ...Option) *Error {
	e := newError(KindWrite, TagWriteFailed, opts)
	e.Path = path
	e.Err = err
	return e
}

// IsParseError reports whether err is, or wraps, a parse error.
func IsParseError(err error) (*Error, bool) { return isKind(err, KindParse) }

// IsWriteError reports whether err is, or wraps, a write error.
func IsWriteError(err error) (*Error, bool) { return isKind(err, KindWrite) }

func isKind(err error, k Kind) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == k {
		return e, true
	}
	return nil, false
}
