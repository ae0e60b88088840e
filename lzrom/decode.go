package lzrom

import "fmt"

// A Decoder decodes compressed streams. The zero value is ready to use. A
// Decoder holds no state, so one value may be shared by any number of
// goroutines.
//
// Every method works on the window src[start:start+length]. Decoding stops at
// the first terminator found at a command boundary; bytes after it are
// ignored.
type Decoder struct{}

// window checks start and length against src and returns the slice they
// describe.
func window(src []byte, start, length int) ([]byte, error) {
	if start < 0 || length < 0 {
		return nil, fmt.Errorf("%w: start=%d length=%d", ErrNegativeArgument, start, length)
	}
	if start > len(src) || length > len(src)-start {
		return nil, fmt.Errorf("%w: start=%d length=%d input=%d", ErrRange, start, length, len(src))
	}
	return src[start : start+length], nil
}

// Measure returns the decompressed length of the stream without writing it.
func (Decoder) Measure(src []byte, start, length int) (int, error) {
	in, err := window(src, start, length)
	if err != nil {
		return 0, err
	}
	n, _, err := run(nil, in, true)
	return n, err
}

// Span returns the number of compressed bytes the stream occupies, including
// its terminator.
func (Decoder) Span(src []byte, start, length int) (int, error) {
	in, err := window(src, start, length)
	if err != nil {
		return 0, err
	}
	_, consumed, err := run(nil, in, true)
	return consumed, err
}

// DecodeTo decompresses the stream into dst and returns the number of bytes
// written. If dst is too small it returns an error matching ErrCapacity; the
// contents of dst are then unspecified.
func (Decoder) DecodeTo(dst, src []byte, start, length int) (int, error) {
	in, err := window(src, start, length)
	if err != nil {
		return 0, err
	}
	n, _, err := run(dst, in, false)
	return n, err
}

// Decode decompresses the stream into a new buffer of exactly the right
// size.
func (d Decoder) Decode(src []byte, start, length int) ([]byte, error) {
	n, err := d.Measure(src, start, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := d.DecodeTo(out, src, start, length); err != nil {
		return nil, err
	}
	return out, nil
}

// DecompressedLen returns the decompressed length of the stream at the start
// of src.
func DecompressedLen(src []byte) (int, error) {
	return Decoder{}.Measure(src, 0, len(src))
}

// Decompress decompresses the stream at the start of src.
func Decompress(src []byte) ([]byte, error) {
	return Decoder{}.Decode(src, 0, len(src))
}

// DecompressTo decompresses the stream at the start of src into dst.
func DecompressTo(dst, src []byte) (int, error) {
	return Decoder{}.DecodeTo(dst, src, 0, len(src))
}

// DecompressBlock decompresses the stream at the start of src and also
// returns how many bytes of src it used, so that a caller walking a ROM image
// knows where the block ends.
func DecompressBlock(src []byte) ([]byte, int, error) {
	n, consumed, err := run(nil, src, true)
	if err != nil {
		return nil, consumed, err
	}
	out := make([]byte, n)
	if _, _, err := run(out, src, false); err != nil {
		return nil, consumed, err
	}
	return out, consumed, nil
}

// run is the decoder state machine. With measure set, nothing is written to
// dst, but the stream is still fully validated. It returns the output length
// and the number of input bytes consumed.
func run(dst, src []byte, measure bool) (int, int, error) {
	in, out := 0, 0

	for {
		if in >= len(src) {
			return out, in, fmt.Errorf("%w (offset %d)", ErrMissingTerminator, in)
		}
		h := src[in]
		if h == Terminator {
			return out, in + 1, nil
		}

		kind := Kind(h >> 5)
		var length int
		if kind == LongCommand {
			kind = Kind(h>>2) & 7
			if kind == LongCommand {
				return out, in, fmt.Errorf("%w: header $%02X at offset %d", ErrNestedLong, h, in)
			}
			if in+1 >= len(src) {
				return out, in, fmt.Errorf("%w: extended header at offset %d", ErrTruncated, in)
			}
			length = (int(h&3)<<8 | int(src[in+1])) + 1
			in += 2
		} else {
			length = int(h&0x1f) + 1
			in++
		}

		if !kind.valid() {
			return out, in, fmt.Errorf("%w: %v at offset %d", ErrUnknownKind, kind, in)
		}

		payload := kind.payloadSize()
		if in+payload > len(src) {
			return out, in, fmt.Errorf("%w: %v payload at offset %d", ErrTruncated, kind, in)
		}
		if !measure && length > len(dst)-out {
			return out, in, fmt.Errorf("%w: need %d bytes, have %d", ErrDestinationFull, out+length, len(dst))
		}

		switch kind {
		case DirectCopy:
			if length > len(src)-in {
				return out, in, fmt.Errorf("%w: %d literal bytes at offset %d", ErrTruncated, length, in)
			}
			if !measure {
				copy(dst[out:out+length], src[in:in+length])
			}
			in += length

		case RepeatedByte:
			b := src[in]
			in++
			if !measure {
				fill := dst[out : out+length]
				for i := range fill {
					fill[i] = b
				}
			}

		case RepeatedWord:
			pair := [2]byte{src[in], src[in+1]}
			in += 2
			if !measure {
				fill := dst[out : out+length]
				for i := range fill {
					fill[i] = pair[i&1]
				}
			}

		case IncrementingByte:
			b := src[in]
			in++
			if !measure {
				fill := dst[out : out+length]
				for i := range fill {
					fill[i] = b + byte(i)
				}
			}

		case CopySection:
			from := int(src[in]) | int(src[in+1])<<8
			if from >= out {
				return out, in, fmt.Errorf("%w: source %d at output offset %d", ErrForwardCopy, from, out)
			}
			in += 2
			if !measure {
				// Byte by byte, low to high: the source may overlap the
				// bytes being written.
				for i := 0; i < length; i++ {
					dst[out+i] = dst[from+i]
				}
			}
		}

		out += length
	}
}
