package lzrom

import "github.com/romkit/pack"

// A Compressor holds the working state of the encoder: the match index, the
// parser, and the command list. The zero value is ready to use. Reusing a
// Compressor saves allocations, but it must not be used by more than one
// goroutine at a time.
type Compressor struct {
	// SearchLen limits how many earlier positions the match finder
	// examines at each position. The default (0) examines all of them.
	SearchLen int

	// DisableMerge skips the pass that folds short commands back into the
	// surrounding DirectCopy commands.
	DisableMerge bool

	finder pack.HashChain
	parser Parser
	cmds   []Command
}

// Commands returns the commands the compressor would encode src with. The
// returned slice is only valid until the next call on c.
func (c *Compressor) Commands(src []byte) []Command {
	c.finder.SearchLen = c.SearchLen
	c.finder.MaxOffset = MaxOffset
	c.finder.Reset(src)
	cmds := c.parser.Parse(c.cmds[:0], src, &c.finder)
	c.finder.Reset(nil)

	if !c.DisableMerge {
		cmds = Optimize(cmds)
	}
	c.cmds = cmds
	return cmds
}

// Compress returns the compressed form of src.
func (c *Compressor) Compress(src []byte) []byte {
	cmds := c.Commands(src)
	return AppendCommands(make([]byte, 0, EncodedLen(cmds)), src, cmds)
}

// CompressedLen returns the size Compress would produce, without building
// the output.
func (c *Compressor) CompressedLen(src []byte) int {
	return EncodedLen(c.Commands(src))
}

// CompressTo compresses src into dst and returns the number of bytes used.
// If dst is too small it returns an error matching ErrCapacity.
func (c *Compressor) CompressTo(dst, src []byte) (int, error) {
	if dst == nil {
		dst = []byte{}
	}
	return Write(dst, src, c.Commands(src))
}

// Compress returns the compressed form of src.
func Compress(src []byte) []byte {
	return new(Compressor).Compress(src)
}

// CompressedLen returns the size Compress(src) would produce.
func CompressedLen(src []byte) int {
	return new(Compressor).CompressedLen(src)
}

// CompressTo compresses src into dst, which must be large enough to hold the
// result.
func CompressTo(dst, src []byte) (int, error) {
	return new(Compressor).CompressTo(dst, src)
}
