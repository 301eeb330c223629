package charmap

// TextCapacity is the number of character codes the instance buffer holds.
const TextCapacity = 1024

// CodeSize is the byte size of one packed character code.
const CodeSize = 4

// TextBuffer holds the per-instance payload of the text renderer:
// one int32 character code per glyph.
//
// The backing array never grows; strings longer than TextCapacity bytes
// are truncated.
type TextBuffer struct {
	codes [TextCapacity]int32
	n     int
}

// UploadCount returns how many codes fit when writing length codes into a
// buffer of the given capacity.
func UploadCount(capacity, length int) int {
	return max(0, min(capacity, length))
}

// SetString packs s into the buffer, one code per byte, and returns the
// number of codes stored.
func (b *TextBuffer) SetString(s string) int {
	b.n = UploadCount(TextCapacity, len(s))
	for i := 0; i < b.n; i++ {
		b.codes[i] = int32(s[i])
	}
	return b.n
}

// Codes returns the codes currently stored. The slice aliases the buffer
// and is only valid until the next SetString.
func (b *TextBuffer) Codes() []int32 {
	return b.codes[:b.n]
}

// Len returns the number of stored codes.
func (b *TextBuffer) Len() int {
	return b.n
}

// ByteSize returns the number of bytes a partial upload must copy.
func (b *TextBuffer) ByteSize() int {
	return b.n * CodeSize
}

// Capacity returns the full buffer size in bytes.
func (b *TextBuffer) Capacity() int {
	return TextCapacity * CodeSize
}
