package lzrom

import "fmt"

// FormatCommands appends a human-readable listing of cmds to dst, one
// command per line. DirectCopy lines show their literal bytes from src in
// hex; other lines show the payload.
//
//	0000 DirectCopy       2 | 3a 41
//	0002 RepeatedByte     5 | $00
func FormatCommands(dst, src []byte, cmds []Command) []byte {
	for _, c := range cmds {
		dst = fmt.Appendf(dst, "%04x %-16v %d | ", c.Index, c.Kind, c.Length)
		switch c.Kind {
		case DirectCopy:
			dst = fmt.Appendf(dst, "% x", src[c.Index:c.End()])
		case RepeatedWord:
			dst = fmt.Appendf(dst, "$%02x $%02x", byte(c.Value), byte(c.Value>>8))
		case CopySection:
			dst = fmt.Appendf(dst, "from $%04x", c.Value)
		default:
			dst = fmt.Appendf(dst, "$%02x", byte(c.Value))
		}
		dst = append(dst, '\n')
	}
	return dst
}
