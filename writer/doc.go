// Package writer serialises vehicle configuration models to XML.
//
// Output is deterministic: the same model always produces the same bytes,
// with elements in a fixed order and numbers in their shortest exact
// decimal form, so that parsing a written document yields the model it
// was written from. Carcols style siren values are written as value
// attributes.
package writer
