package lzrom

import "fmt"

// A Command is one unit of the compressed format, before it is split into
// chunks of at most MaxLength bytes.
type Command struct {
	Kind Kind

	// Value is the payload. Its meaning depends on Kind:
	//   - RepeatedByte, IncrementingByte: the (first) byte, in the low 8 bits
	//   - RepeatedWord: the first fill byte in the low 8 bits, the second in
	//     the high 8 bits
	//   - CopySection: the absolute output offset to copy from
	//   - DirectCopy: unused
	Value uint16

	// Index is the output offset where the command's bytes begin.
	Index int

	// Length is the number of output bytes the command produces. It is
	// never less than 1.
	Length int
}

// End returns the output offset just past the command's bytes.
func (c Command) End() int {
	return c.Index + c.Length
}

// chunks returns how many headers the command needs.
func (c Command) chunks() int {
	return (c.Length + MaxLength - 1) / MaxLength
}

// HeaderCost is the total size of the command's headers.
func (c Command) HeaderCost() int {
	n := c.chunks()
	cost := n
	// Every chunk but the last is MaxLength bytes, so it needs the long form.
	if n > 1 {
		cost += n - 1
	}
	if last := c.Length - (n-1)*MaxLength; last > MaxShortLength {
		cost++
	}
	return cost
}

// PayloadCost is the total size of the command's payload bytes, excluding
// DirectCopy literals.
func (c Command) PayloadCost() int {
	return c.chunks() * c.Kind.payloadSize()
}

// Cost is the number of bytes the command occupies in the compressed stream.
func (c Command) Cost() int {
	cost := c.HeaderCost() + c.PayloadCost()
	if c.Kind == DirectCopy {
		cost += c.Length
	}
	return cost
}

func (c Command) String() string {
	switch c.Kind {
	case DirectCopy:
		return fmt.Sprintf("%v[%d:%d]", c.Kind, c.Index, c.End())
	case RepeatedWord, CopySection:
		return fmt.Sprintf("%v[%d:%d] $%04X", c.Kind, c.Index, c.End(), c.Value)
	}
	return fmt.Sprintf("%v[%d:%d] $%02X", c.Kind, c.Index, c.End(), c.Value)
}
