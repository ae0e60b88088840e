package pack

import (
	"encoding/binary"
	"math/bits"
)

// HashChain is an implementation of the Searcher interface that indexes a
// whole buffer with hash chains, so that it can report the longest earlier
// copy of the data at any position.
//
// Unlike a streaming matcher it has no sliding window: sources are absolute
// offsets into the buffer passed to Reset, and only offsets up to MaxOffset
// can be referenced.
type HashChain struct {
	// SearchLen is how many entries to examine on the hash chain.
	// The default (0) examines every entry, which finds the longest match.
	SearchLen int

	// MaxOffset is the largest source offset a match may use.
	// Matches are also shortened so that no byte they copy from lies past
	// MaxOffset. The default is 65535.
	MaxOffset int

	table [maxTableSize]int32

	src   []byte
	chain []int32
}

const (
	maxTableSize = 1 << 14
	shift        = 32 - 14
	// tableMask is redundant, but helps the compiler eliminate bounds
	// checks.
	tableMask = maxTableSize - 1

	defaultMaxOffset = 0xffff
)

// Reset indexes src. The HashChain keeps a reference to src until the next
// call to Reset; pass nil to release it.
func (q *HashChain) Reset(src []byte) {
	if q.MaxOffset == 0 {
		q.MaxOffset = defaultMaxOffset
	}
	q.table = [maxTableSize]int32{}
	q.src = src

	// chain[i] is the previous position with the same hash as i, or -1.
	// table holds the latest position for each hash, plus one.
	chain := q.chain[:0]
	for i := 0; i+3 < len(src); i++ {
		h := hash4(binary.LittleEndian.Uint32(src[i:])) & tableMask
		chain = append(chain, q.table[h]-1)
		q.table[h] = int32(i + 1)
	}
	q.chain = chain
}

const hashMul32 = 0x1e35a7bd

func hash4(u uint32) uint32 {
	return (u * hashMul32) >> shift
}

// extendMatch returns the largest k such that k <= len(src) and that
// src[i:i+k-j] and src[j:k] have the same contents.
//
// It assumes that:
//
//	0 <= i && i < j && j <= len(src)
func extendMatch(src []byte, i, j int) int {
	// Compare 8 bytes at a time while we can. The regions may overlap,
	// which is fine since we only read.
	for j+8 <= len(src) {
		iBytes := binary.LittleEndian.Uint64(src[i:])
		jBytes := binary.LittleEndian.Uint64(src[j:])
		if iBytes != jBytes {
			return j + bits.TrailingZeros64(iBytes^jBytes)>>3
		}
		i, j = i+8, j+8
	}
	for ; j < len(src) && src[i] == src[j]; i, j = i+1, j+1 {
	}
	return j
}

// Search appends to dst a sequence of matches at pos, each longer than or as
// long as the one before it and with an earlier source. Only matches of 4
// bytes or more are reported.
func (q *HashChain) Search(dst []AbsoluteMatch, pos, min, max int) []AbsoluteMatch {
	src := q.src
	if max > len(src) {
		max = len(src)
	}
	if pos < 0 || pos >= len(q.chain) || pos+4 > max {
		return dst
	}
	searchSeq := binary.LittleEndian.Uint32(src[pos:])

	var length int
	examined := 0
	for candidate := int(q.chain[pos]); candidate >= 0 && candidate >= min; candidate = int(q.chain[candidate]) {
		if q.SearchLen > 0 && examined == q.SearchLen {
			break
		}
		examined++

		if candidate > q.MaxOffset {
			continue
		}
		if binary.LittleEndian.Uint32(src[candidate:]) != searchSeq {
			continue
		}

		limit := max
		if capped := pos + q.MaxOffset + 1 - candidate; capped < limit {
			limit = capped
		}
		if limit < pos+4 {
			continue
		}

		end := extendMatch(src[:limit], candidate+4, pos+4)

		// The chain runs from newest to oldest, so >= keeps the
		// earliest source among equally long matches.
		if end-pos >= length {
			dst = append(dst, AbsoluteMatch{
				Start: pos,
				End:   end,
				Match: candidate,
			})
			length = end - pos
		}
	}

	return dst
}
