/*
Package lzrom implements the command-based LZ format used to pack graphics
and tile data in 16-bit cartridge images.

A stream is a sequence of commands ended by a $FF byte. Each command starts
with a header:

	short form  kkklllll            kind k, length l+1 (1..32)
	long form   111kkkll llllllll   kind k, length l+1 (1..1024)

and is followed by its payload:

	0 DirectCopy        length literal bytes
	1 RepeatedByte      1 byte, repeated length times
	2 RepeatedWord      2 bytes, alternating for length bytes
	3 IncrementingByte  1 byte b; writes b, b+1, b+2, ... (mod 256)
	4 CopySection       2-byte little-endian absolute output offset; copies
	                    length bytes from there, low to high, so the
	                    source may overlap the bytes being written

There is no header or magic number, and the decompressed length is not
stored; Measure (or DecompressedLen) finds it by walking the commands.

The encoder is greedy. At each position it weighs byte, word and
incrementing runs against the longest earlier copy reported by a
pack.HashChain, then a second pass folds short commands sitting between two
DirectCopy commands back into a single DirectCopy when that is no larger.

# Examples

Round trip:

	enc := lzrom.Compress(tiles)
	dec, err := lzrom.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals tiles

Decode a block found in a ROM image and learn where it ends:

	out, consumed, err := lzrom.DecompressBlock(rom[offset:])
	if err != nil {
		return err
	}
	next := offset + consumed

Decode into a buffer the caller owns, retrying on ErrCapacity:

	n, err := lzrom.DecompressTo(buf, enc)
	if errors.Is(err, lzrom.ErrCapacity) {
		size, _ := lzrom.DecompressedLen(enc)
		buf = make([]byte, size)
		n, err = lzrom.DecompressTo(buf, enc)
	}

A Decoder is stateless and may be shared. A Compressor is not; give each
goroutine its own, or share a Cache.
*/
package lzrom
