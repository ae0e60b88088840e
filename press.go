// The pack package holds the match-finding half of the command-based LZ
// codecs used for ROM graphics.
//
// Those formats are built from two logically separate parts:
//   - Something that looks for earlier copies of the bytes at each position
//   - An encoder that chooses between back-references and cheaper
//     run-length commands, and writes the final format
//
// This package defines the interface between the two, so that an encoder
// (see the lzrom package) can be driven by any matcher that answers
// "what is the longest earlier copy of the data starting here?"
package pack

// An AbsoluteMatch stores indexes into the byte stream instead of lengths.
type AbsoluteMatch struct {
	// Start is the index of the first byte.
	Start int

	// End is the index of the byte after the last byte
	// (so that End - Start = Length).
	End int

	// Match is the index of the previous data that matches.
	// It is always less than Start, but the matched region may overlap
	// [Start, End).
	Match int
}

// Length returns the number of matched bytes.
func (m AbsoluteMatch) Length() int {
	return m.End - m.Start
}

// A Searcher is the Match Finder an encoder consults. It looks for matches
// at one position at a time.
type Searcher interface {
	// Search looks for matches at pos and appends them to dst.
	// In each match, Start == pos, End falls within (pos,max],
	// and min <= Match < Start.
	Search(dst []AbsoluteMatch, pos, min, max int) []AbsoluteMatch
}
