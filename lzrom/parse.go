package lzrom

import "github.com/romkit/pack"

// Shortest runs worth a command of their own.
const (
	minByteRun = 3
	minWordRun = 4
	minIncRun  = 3
	minCopy    = 4
)

// A Parser chooses, position by position, which command covers the input.
// It is greedy: at each position it takes the best-looking command and moves
// past it. Bytes no command claims become DirectCopy commands.
//
// A Parser keeps a match buffer between calls and must not be shared by
// concurrent callers.
type Parser struct {
	matchCache []pack.AbsoluteMatch
}

// Parse appends to dst the commands covering src, using s to find earlier
// copies of the data. s must already be indexing src. Command indexes start
// at 0.
func (p *Parser) Parse(dst []Command, src []byte, s pack.Searcher) []Command {
	matches := p.matchCache[:0]
	nextEmit := 0

	// emit appends c, preceded by a DirectCopy for any bytes skipped since
	// the last command.
	emit := func(c Command) {
		if c.Index > nextEmit {
			dst = append(dst, Command{Kind: DirectCopy, Index: nextEmit, Length: c.Index - nextEmit})
		}
		dst = append(dst, c)
		nextEmit = c.End()
	}

	for i := 0; i < len(src); {
		var m pack.AbsoluteMatch
		m, matches = pack.LongestAt(s, matches, i, len(src))
		copyLen := m.Length()
		copyCmd := Command{Kind: CopySection, Value: uint16(m.Match), Index: i, Length: copyLen}

		var run Command
		switch {
		case isWordRun(src, i):
			run = Command{Kind: RepeatedWord, Value: uint16(src[i]) | uint16(src[i+1])<<8, Index: i, Length: wordRun(src, i)}
		case isByteRun(src, i):
			run = Command{Kind: RepeatedByte, Value: uint16(src[i]), Index: i, Length: byteRun(src, i)}
		case isIncRun(src, i):
			run = Command{Kind: IncrementingByte, Value: uint16(src[i]), Index: i, Length: incRun(src, i)}
		case copyLen >= minCopy:
			emit(copyCmd)
			i += copyLen
			continue
		default:
			i++
			continue
		}

		if matchBeats(copyLen, run.Length) {
			run = copyCmd
		}
		emit(run)
		i += run.Length
	}

	if nextEmit < len(src) {
		dst = append(dst, Command{Kind: DirectCopy, Index: nextEmit, Length: len(src) - nextEmit})
	}
	p.matchCache = matches[:0]
	return dst
}

// matchBeats reports whether a back-reference of length match should be
// used instead of a run of length run. The match has to be strictly longer;
// a single extra byte isn't enough if it is what pushes the match into a
// long header while the run still fits a short one.
func matchBeats(match, run int) bool {
	if match <= run {
		return false
	}
	if match == run+1 && run <= MaxShortLength && match > MaxShortLength {
		return false
	}
	return true
}

// The is*Run functions look at the next few bytes only. The *Run functions
// then measure the whole run.

func isWordRun(src []byte, i int) bool {
	return i+minWordRun <= len(src) &&
		src[i] != src[i+1] &&
		src[i+2] == src[i] &&
		src[i+3] == src[i+1]
}

func isByteRun(src []byte, i int) bool {
	return i+minByteRun <= len(src) &&
		src[i+1] == src[i] &&
		src[i+2] == src[i]
}

func isIncRun(src []byte, i int) bool {
	return i+minIncRun <= len(src) &&
		src[i+1] == src[i]+1 &&
		src[i+2] == src[i]+2
}

func byteRun(src []byte, i int) int {
	n := 1
	for i+n < len(src) && src[i+n] == src[i] {
		n++
	}
	return n
}

func wordRun(src []byte, i int) int {
	n := 2
	for i+n < len(src) && src[i+n] == src[i+n-2] {
		n++
	}
	return n
}

func incRun(src []byte, i int) int {
	n := 1
	for i+n < len(src) && src[i+n] == src[i+n-1]+1 {
		n++
	}
	return n
}
