/*
Package vcf converts and analyses DLS vehicle lighting and siren
configuration files.

Two incompatible schema generations exist. Version 1 documents (root
<CONFIG>) describe five fixed stages with a shared set of sound slots;
version 2 documents (root <Model>) describe an open list of named light
modes and audio modes. This package is a thin facade over the pipeline:

	parser   XML to model, per version
	analyzer model to summary statistics
	convert  model to model across versions, with a loss report
	writer   model to XML, per version

Load and Save add file handling, detecting the version of a document
before parsing it and writing output atomically.

Conversions never fail. Everything the target version cannot represent
is listed in the returned model.LossReport, and callers are expected to
show it to the user and obtain confirmation before saving a lossy result.
*/
package vcf
