// Package termview turns a rendered frame buffer into ANSI escape output
// and decodes keyboard bytes into viewer commands. Each character cell
// carries two vertically stacked pixels via the upper-half-block glyph, so
// the frame buffer a terminal of R rows displays is 2·R pixels tall.
package termview

import (
	"strconv"

	"sdfmarch/internal/render"
)

// PixelRows returns the frame-buffer height for a terminal with the given
// number of character rows (one row is reserved for the status line).
func PixelRows(termRows int) int {
	if termRows < 2 {
		return 2
	}
	return (termRows - 1) * 2
}

// AppendFrame appends the full-frame escape sequence for fb to dst and
// returns the extended slice. The cursor is homed first; each cell sets the
// foreground to the upper pixel, the background to the lower pixel, and
// emits U+2580 UPPER HALF BLOCK. Rows are emitted top to bottom.
func AppendFrame(dst []byte, fb *render.FrameBuffer) []byte {
	dst = append(dst, "\x1b[H"...)
	for y := 0; y+1 < fb.Height; y += 2 {
		for x := 0; x < fb.Width; x++ {
			top := fb.At(x, y)
			bot := fb.At(x, y+1)
			dst = appendColor(dst, "\x1b[38;2;", top)
			dst = appendColor(dst, "\x1b[48;2;", bot)
			dst = append(dst, "\xe2\x96\x80"...)
		}
		dst = append(dst, "\x1b[0m\r\n"...)
	}
	return dst
}

func appendColor(dst []byte, prefix string, c render.Color) []byte {
	dst = append(dst, prefix...)
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	dst = append(dst, 'm')
	return dst
}

// Command is a discrete camera or viewer action decoded from key input.
type Command int

const (
	CmdNone Command = iota
	CmdRotateLeft
	CmdRotateRight
	CmdRotateUp
	CmdRotateDown
	CmdZoomIn
	CmdZoomOut
	CmdNextScene
	CmdQuit
)

// DecodeKey maps a raw key read to a command. buf holds the bytes of one
// read from the terminal; arrow keys arrive as 3-byte CSI sequences.
func DecodeKey(buf []byte) Command {
	if len(buf) == 0 {
		return CmdNone
	}
	if len(buf) >= 3 && buf[0] == 0x1b && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return CmdRotateUp
		case 'B':
			return CmdRotateDown
		case 'C':
			return CmdRotateRight
		case 'D':
			return CmdRotateLeft
		}
		return CmdNone
	}
	switch buf[0] {
	case 'a', 'h':
		return CmdRotateLeft
	case 'd', 'l':
		return CmdRotateRight
	case 'w', 'k':
		return CmdRotateUp
	case 's', 'j':
		return CmdRotateDown
	case '+', '=':
		return CmdZoomIn
	case '-', '_':
		return CmdZoomOut
	case '\t', 'n':
		return CmdNextScene
	case 'q', 0x03, 0x1b: // q, Ctrl-C, bare Esc
		return CmdQuit
	}
	return CmdNone
}
