// Package buffer implements the pure, grapheme-accurate document model used by
// the Rheia editor.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// Offsets count grapheme clusters across the whole document, with each line
// break counting as one.
package buffer
