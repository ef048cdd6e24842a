// Package parser reads DLS vehicle configuration documents into models.
//
// Parsing is tolerant of absent optional elements, which take neutral
// values (disabled stages, empty siren lists, zero BPM), and strict about
// structure: malformed XML, a root element of the wrong generation, a
// missing mandatory attribute or an unparseable number is reported as a
// vcferr parse error carrying the offending element path. Unknown
// elements are ignored.
//
// Scalar fields are read carcols style: the value attribute of the
// element if present, otherwise its trimmed text.
package parser
