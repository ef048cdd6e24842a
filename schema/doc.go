// Package schema describes the two DLS vehicle configuration file
// generations and resolves which one a document belongs to.
//
// # Version detection
//
// A document's version is resolved once, from its root element, and
// then routed to the version specific parser. Rules are applied in order:
//
//	root element <CONFIG>                        v1
//	root element <Model>, or a vehicles attribute v2
//	a <StageSettings> or <SoundSettings> child    v1
//	an <Audio> or <Modes> child                   v2
//
// Anything else, including malformed XML, is Unknown.
package schema
