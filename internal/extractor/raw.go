package extractor

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// ExtractTextRaw is a fallback extractor that works on the raw PDF byte
// stream without a PDF library. Several issuers ship statements with
// CIDFont/Type0 fonts that the structured library decodes into garbage;
// this path builds the ToUnicode CMap tables itself and applies them to
// the text operators (Tj, TJ, ') found in content streams.
func ExtractTextRaw(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	streams := findStreams(data)
	if len(streams) == 0 {
		return nil, nil
	}

	// Merge every ToUnicode table in the file into one lookup; glyph
	// code spaces rarely collide in practice.
	cm := newCMap()
	for _, stream := range streams {
		content := string(inflate(stream))
		if strings.Contains(content, "beginbfchar") || strings.Contains(content, "beginbfrange") {
			cm.parse(content)
		}
	}

	var chunks []string
	for _, stream := range streams {
		if text := decodeContentStream(inflate(stream), cm); text != "" {
			chunks = append(chunks, text)
		}
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	return []string{strings.Join(chunks, "\n")}, nil
}

// findStreams returns every stream...endstream body in the file.
func findStreams(data []byte) [][]byte {
	var streams [][]byte
	begin, end := []byte("stream"), []byte("endstream")

	for offset := 0; offset < len(data); {
		i := bytes.Index(data[offset:], begin)
		if i < 0 {
			break
		}
		start := offset + i + len(begin)
		if start < len(data) && data[start] == '\r' {
			start++
		}
		if start < len(data) && data[start] == '\n' {
			start++
		}
		j := bytes.Index(data[start:], end)
		if j < 0 {
			break
		}
		if j > 0 {
			streams = append(streams, data[start:start+j])
		}
		offset = start + j + len(end)
	}
	return streams
}

// inflate zlib-decompresses a stream body, returning it untouched when
// it is not compressed.
func inflate(data []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return data
	}
	return out
}

// cmap maps hex-encoded glyph codes to Unicode strings, built from the
// beginbfchar/beginbfrange sections of ToUnicode streams.
type cmap struct {
	codes map[string]string
	width int // glyph code width in bytes, usually 2
}

func newCMap() *cmap {
	return &cmap{codes: make(map[string]string), width: 2}
}

var (
	bfCharRe   = regexp.MustCompile(`(?s)beginbfchar\s*(.*?)\s*endbfchar`)
	bfRangeRe  = regexp.MustCompile(`(?s)beginbfrange\s*(.*?)\s*endbfrange`)
	hexTokenRe = regexp.MustCompile(`<([0-9A-Fa-f]+)>`)
)

func (c *cmap) parse(content string) {
	for _, block := range bfCharRe.FindAllStringSubmatch(content, -1) {
		tokens := hexTokenRe.FindAllStringSubmatch(block[1], -1)
		for i := 0; i+1 < len(tokens); i += 2 {
			src, dst := tokens[i][1], tokens[i+1][1]
			c.codes[strings.ToUpper(src)] = hexToUnicode(dst)
			c.width = len(src) / 2
		}
	}

	for _, block := range bfRangeRe.FindAllStringSubmatch(content, -1) {
		tokens := hexTokenRe.FindAllStringSubmatch(block[1], -1)
		for i := 0; i+2 < len(tokens); i += 3 {
			lo := parseHexInt(tokens[i][1])
			hi := parseHexInt(tokens[i+1][1])
			base := parseHexInt(tokens[i+2][1])
			if hi < lo || hi-lo > 0xFFFF {
				continue
			}
			width := len(tokens[i][1])
			for code := lo; code <= hi; code++ {
				key := strings.ToUpper(hexKey(code, width))
				c.codes[key] = string(rune(base + (code - lo)))
			}
			c.width = width / 2
		}
	}
}

// decode translates raw glyph bytes through the table. Unknown codes
// are dropped rather than rendered as replacement runes; the quality
// gate in pdf.go decides whether the result is usable.
func (c *cmap) decode(raw []byte) string {
	if len(c.codes) == 0 {
		return ""
	}
	w := c.width
	if w < 1 {
		w = 2
	}
	var b strings.Builder
	for i := 0; i+w <= len(raw); i += w {
		key := strings.ToUpper(hex.EncodeToString(raw[i : i+w]))
		if s, ok := c.codes[key]; ok {
			b.WriteString(s)
		}
	}
	return b.String()
}

func parseHexInt(s string) int {
	n := 0
	for _, r := range strings.ToUpper(s) {
		n *= 16
		switch {
		case r >= '0' && r <= '9':
			n += int(r - '0')
		case r >= 'A' && r <= 'F':
			n += int(r-'A') + 10
		}
	}
	return n
}

func hexKey(code, digits int) string {
	const hexDigits = "0123456789ABCDEF"
	b := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		b[i] = hexDigits[code&0xF]
		code >>= 4
	}
	return string(b)
}

// hexToUnicode interprets a destination token as UTF-16BE code units.
func hexToUnicode(h string) string {
	raw, err := hex.DecodeString(h)
	if err != nil || len(raw) < 2 {
		return ""
	}
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return string(utf16.Decode(units))
}

// Text operator patterns inside content streams.
var (
	hexStringRe = regexp.MustCompile(`<([0-9A-Fa-f]+)>\s*Tj`)
	litStringRe = regexp.MustCompile(`\(([^)]*)\)\s*(?:Tj|')`)
	tjArrayRe   = regexp.MustCompile(`\[([^\]]*)\]\s*TJ`)
	litInnerRe  = regexp.MustCompile(`\(([^)]*)\)`)
	newlineOpRe = regexp.MustCompile(`(?m)^\s*(?:[\d.\-]+\s+[\d.\-]+\s+T[dD]|T\*)\s*$`)
)

// decodeContentStream pulls the show-text operators out of a content
// stream and decodes their operands. Td/TD/T* positioning operators are
// treated as line breaks; the field rules need labels and values to
// stay on the same line, and this approximation holds for the
// statement layouts we see.
func decodeContentStream(data []byte, cm *cmap) string {
	content := string(data)
	if !strings.Contains(content, "Tj") && !strings.Contains(content, "TJ") {
		return ""
	}

	var lines []string
	var line strings.Builder
	flush := func() {
		if s := strings.TrimSpace(line.String()); s != "" {
			lines = append(lines, s)
		}
		line.Reset()
	}

	for _, op := range strings.Split(content, "\n") {
		if newlineOpRe.MatchString(op) {
			flush()
		}
		for _, m := range hexStringRe.FindAllStringSubmatch(op, -1) {
			line.WriteString(decodeHexOperand(m[1], cm))
		}
		for _, m := range litStringRe.FindAllStringSubmatch(op, -1) {
			line.WriteString(printableOnly(unescapePDFString(m[1])))
		}
		for _, m := range tjArrayRe.FindAllStringSubmatch(op, -1) {
			for _, h := range hexTokenRe.FindAllStringSubmatch(m[1], -1) {
				line.WriteString(decodeHexOperand(h[1], cm))
			}
			for _, l := range litInnerRe.FindAllStringSubmatch(m[1], -1) {
				line.WriteString(printableOnly(unescapePDFString(l[1])))
			}
		}
	}
	flush()

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func decodeHexOperand(h string, cm *cmap) string {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return ""
	}
	if s := cm.decode(raw); s != "" {
		return s
	}
	// No usable CMap — try plain UTF-16BE, then ASCII.
	if len(raw) >= 2 && len(raw)%2 == 0 {
		var b strings.Builder
		for i := 0; i+1 < len(raw); i += 2 {
			r := rune(raw[i])<<8 | rune(raw[i+1])
			if unicode.IsPrint(r) || r == ' ' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return printableOnly(string(raw))
}

// unescapePDFString resolves backslash escapes in literal PDF strings.
func unescapePDFString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '(', ')', '\\':
			b.WriteByte(s[i])
		default:
			if s[i] >= '0' && s[i] <= '7' {
				val := int(s[i] - '0')
				for j := 0; j < 2 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; j++ {
					i++
					val = val*8 + int(s[i]-'0')
				}
				b.WriteByte(byte(val))
			} else {
				b.WriteByte(s[i])
			}
		}
	}
	return b.String()
}

func printableOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			return r
		}
		return -1
	}, s)
}
