package lzrom

import "strconv"

// Format constants.
const (
	Terminator     = 0xFF   // Ends the stream when found at a command boundary.
	MaxShortLength = 0x20   // Longest chunk that fits a 1-byte header.
	MaxLength      = 0x400  // Longest chunk any header can describe.
	MaxOffset      = 0xFFFF // Largest CopySection source offset.
)

// Kind is the 3-bit command selector stored in a header byte.
type Kind uint8

// Command kinds. Values 5 and 6 are unassigned.
const (
	DirectCopy       Kind = 0 // Literal bytes follow the header.
	RepeatedByte     Kind = 1 // One byte, repeated.
	RepeatedWord     Kind = 2 // Two bytes, alternating.
	IncrementingByte Kind = 3 // A byte, then that byte plus one, and so on.
	CopySection      Kind = 4 // Copy from an absolute offset in the output.
	LongCommand      Kind = 7 // Header marker: the real kind and a 10-bit length follow.
)

var kindNames = [...]string{
	DirectCopy:       "DirectCopy",
	RepeatedByte:     "RepeatedByte",
	RepeatedWord:     "RepeatedWord",
	IncrementingByte: "IncrementingByte",
	CopySection:      "CopySection",
	LongCommand:      "LongCommand",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// valid reports whether k is one of the five payload kinds.
func (k Kind) valid() bool {
	return k <= CopySection
}

// payloadSize is the number of bytes between a header and the next header,
// not counting the literal bytes of a DirectCopy.
func (k Kind) payloadSize() int {
	switch k {
	case RepeatedByte, IncrementingByte:
		return 1
	case RepeatedWord, CopySection:
		return 2
	}
	return 0
}
