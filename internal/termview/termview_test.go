package termview

import (
	"testing"

	"sdfmarch/internal/render"
)

func TestPixelRows(t *testing.T) {
	cases := []struct{ rows, want int }{
		{24, 46}, // one row reserved for status
		{2, 2},
		{1, 2}, // floor
		{0, 2},
	}
	for _, c := range cases {
		if got := PixelRows(c.rows); got != c.want {
			t.Errorf("PixelRows(%d): got %d, want %d", c.rows, got, c.want)
		}
	}
}

func TestAppendFrameSingleCell(t *testing.T) {
	fb := render.NewFrameBuffer(1, 2)
	fb.Set(0, 0, render.Color{R: 255, G: 0, B: 0})
	fb.Set(0, 1, render.Color{R: 0, G: 0, B: 255})

	got := string(AppendFrame(nil, fb))
	want := "\x1b[H\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀\x1b[0m\r\n"
	if got != want {
		t.Errorf("frame encoding:\ngot  %q\nwant %q", got, want)
	}
}

func TestAppendFrameCellCount(t *testing.T) {
	fb := render.NewFrameBuffer(3, 4)
	fb.Clear(render.Color{R: 1, G: 2, B: 3})

	got := string(AppendFrame(nil, fb))
	cells := 0
	for _, r := range got {
		if r == '▀' {
			cells++
		}
	}
	if cells != 6 { // 3 columns × 2 cell rows
		t.Errorf("got %d half-block cells, want 6", cells)
	}
}

func TestAppendFrameReusesBuffer(t *testing.T) {
	fb := render.NewFrameBuffer(2, 2)
	buf := AppendFrame(nil, fb)
	n := len(buf)
	buf = AppendFrame(buf[:0], fb)
	if len(buf) != n {
		t.Errorf("re-encoded length %d, want %d", len(buf), n)
	}
}

func TestDecodeKey(t *testing.T) {
	cases := []struct {
		in   []byte
		want Command
	}{
		{[]byte("a"), CmdRotateLeft},
		{[]byte("h"), CmdRotateLeft},
		{[]byte("d"), CmdRotateRight},
		{[]byte("w"), CmdRotateUp},
		{[]byte("s"), CmdRotateDown},
		{[]byte("+"), CmdZoomIn},
		{[]byte("="), CmdZoomIn},
		{[]byte("-"), CmdZoomOut},
		{[]byte("\t"), CmdNextScene},
		{[]byte("n"), CmdNextScene},
		{[]byte("q"), CmdQuit},
		{[]byte{0x03}, CmdQuit},
		{[]byte{0x1b}, CmdQuit},
		{[]byte{0x1b, '[', 'A'}, CmdRotateUp},
		{[]byte{0x1b, '[', 'B'}, CmdRotateDown},
		{[]byte{0x1b, '[', 'C'}, CmdRotateRight},
		{[]byte{0x1b, '[', 'D'}, CmdRotateLeft},
		{[]byte{0x1b, '[', 'Z'}, CmdNone},
		{[]byte("x"), CmdNone},
		{nil, CmdNone},
	}
	for _, c := range cases {
		if got := DecodeKey(c.in); got != c.want {
			t.Errorf("DecodeKey(%q): got %v, want %v", c.in, got, c.want)
		}
	}
}
