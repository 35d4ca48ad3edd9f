package extractor

import (
	"testing"
)

func TestFindStreams(t *testing.T) {
	data := []byte("header stream\nhello world endstream trailer stream\r\nsecond endstream")
	streams := findStreams(data)
	if len(streams) != 2 {
		t.Fatalf("got %d streams, want 2", len(streams))
	}
	if string(streams[0]) != "hello world " {
		t.Errorf("stream[0]: got %q", string(streams[0]))
	}
	if string(streams[1]) != "second " {
		t.Errorf("stream[1]: got %q", string(streams[1]))
	}
}

func TestCMapParseAndDecode(t *testing.T) {
	content := `/CIDInit /ProcSet findresource begin
beginbfchar
<0041> <0048>
<0042> <0044>
endbfchar
beginbfrange
<0050> <0052> <0041>
endbfrange
endcmap`

	cm := newCMap()
	cm.parse(content)

	// bfchar entries: 0041 -> "H", 0042 -> "D"
	if got := cm.decode([]byte{0x00, 0x41, 0x00, 0x42}); got != "HD" {
		t.Errorf("bfchar decode: got %q, want %q", got, "HD")
	}
	// bfrange 0050..0052 -> "A".."C"
	if got := cm.decode([]byte{0x00, 0x50, 0x00, 0x51, 0x00, 0x52}); got != "ABC" {
		t.Errorf("bfrange decode: got %q, want %q", got, "ABC")
	}
}

func TestDecodeContentStream_LiteralText(t *testing.T) {
	stream := []byte(`BT
/F1 12 Tf
(Total Amount Due: Rs. 14,820.00) Tj
0 -14 Td
(Payment Due Date: 15 Oct 2025) Tj
ET`)

	got := decodeContentStream(stream, newCMap())
	want := "Total Amount Due: Rs. 14,820.00\nPayment Due Date: 15 Oct 2025"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnescapePDFString(t *testing.T) {
	tests := []struct{ in, want string }{
		{`Rs\. 500`, "Rs. 500"},
		{`a\(b\)c`, "a(b)c"},
		{`line1\nline2`, "line1\nline2"},
		{`\101\102`, "AB"}, // octal escapes
		{`plain`, "plain"},
	}
	for _, tt := range tests {
		if got := unescapePDFString(tt.in); got != tt.want {
			t.Errorf("unescape(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
