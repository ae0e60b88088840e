package lzrom

// Optimize merges short commands that sit between two DirectCopy commands
// into one larger DirectCopy, when the merged form is no larger. It works in
// place and returns the shortened slice.
//
// Only the pattern DirectCopy, X, DirectCopy is considered, where X is any
// other kind. A DirectCopy produced by a merge can take part in the next
// merge as the left side.
func Optimize(cmds []Command) []Command {
	out := cmds[:0]
	for i := 0; i < len(cmds); i++ {
		c := cmds[i]
		if c.Kind != DirectCopy && len(out) > 0 && i+1 < len(cmds) {
			a, b := out[len(out)-1], cmds[i+1]
			if a.Kind == DirectCopy && b.Kind == DirectCopy && shouldMerge(a, c, b) {
				out[len(out)-1].Length = b.End() - a.Index
				i++
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// shouldMerge decides whether literal runs a and b should swallow x.
//
// Keeping x costs its header and payload, plus a header for b. Merging costs
// x's bytes as literals, plus whatever a's header grows by. With short
// headers on both sides that comes out even at 3 bytes for a 1-byte payload
// and 4 bytes for a 2-byte payload. Two long literal headers make keeping x
// one byte dearer; two short literal runs that only need a long header once
// merged make merging one byte dearer.
func shouldMerge(a, x, b Command) bool {
	limit := 3
	if x.Kind == RepeatedWord || x.Kind == CopySection {
		limit = 4
	}

	aLong := a.Length > MaxShortLength
	bLong := b.Length > MaxShortLength
	switch {
	case aLong && bLong:
		limit++
	case !aLong && !bLong && b.End()-a.Index > MaxShortLength:
		limit--
	}

	return x.Length <= limit
}
