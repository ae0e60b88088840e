package lzrom

import "fmt"

// appendHeader appends the header for a chunk of n bytes (1 <= n <= MaxLength).
func appendHeader(dst []byte, k Kind, n int) []byte {
	n--
	if n < MaxShortLength {
		return append(dst, byte(k)<<5|byte(n))
	}
	return append(dst, byte(LongCommand)<<5|byte(k)<<2|byte(n>>8), byte(n))
}

// AppendCommands appends the encoded form of cmds, followed by the
// terminator, to dst. src is the uncompressed data the commands describe;
// DirectCopy commands take their literal bytes from it.
func AppendCommands(dst, src []byte, cmds []Command) []byte {
	for _, c := range cmds {
		for off := 0; off < c.Length; off += MaxLength {
			n := c.Length - off
			if n > MaxLength {
				n = MaxLength
			}
			dst = appendHeader(dst, c.Kind, n)

			switch c.Kind {
			case DirectCopy:
				dst = append(dst, src[c.Index+off:c.Index+off+n]...)
			case RepeatedByte:
				dst = append(dst, byte(c.Value))
			case IncrementingByte:
				dst = append(dst, byte(int(c.Value)+off))
			case RepeatedWord:
				// off is a multiple of MaxLength, which is even, so the
				// pair never needs swapping.
				dst = append(dst, byte(c.Value), byte(c.Value>>8))
			case CopySection:
				from := int(c.Value) + off
				dst = append(dst, byte(from), byte(from>>8))
			}
		}
	}
	return append(dst, Terminator)
}

// EncodedLen returns the size of the stream AppendCommands would produce.
func EncodedLen(cmds []Command) int {
	n := 1
	for _, c := range cmds {
		n += c.Cost()
	}
	return n
}

// Write encodes cmds into dst and returns the number of bytes used. If dst
// is nil, nothing is written and Write only reports the size. If dst is too
// small, Write returns an error matching ErrCapacity and dst must be
// discarded.
func Write(dst, src []byte, cmds []Command) (int, error) {
	n := EncodedLen(cmds)
	if dst == nil {
		return n, nil
	}
	if n > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrDestinationFull, n, len(dst))
	}
	AppendCommands(dst[:0], src, cmds)
	return n, nil
}
