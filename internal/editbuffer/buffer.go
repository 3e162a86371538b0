// Package editbuffer implements the summary input model.
package editbuffer

// Buffer is a multi-line text input: rune content plus a cursor. The cursor
// always stays within [0, len(content)]. Word wrap is a presentation concern
// handled by the caller; the stored content is never rewrapped.
type Buffer struct {
	content []rune
	cursor  int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Insert places a rune at the cursor and advances it.
func (b *Buffer) Insert(r rune) {
	b.content = append(b.content, 0)
	copy(b.content[b.cursor+1:], b.content[b.cursor:])
	b.content[b.cursor] = r
	b.cursor++
}

// InsertString inserts each rune of s at the cursor.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Newline inserts a line break at the cursor.
func (b *Buffer) Newline() {
	b.Insert('\n')
}

// Backspace removes the rune before the cursor, if any.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor--
}

// Delete removes the rune at the cursor, if any. The cursor stays put.
func (b *Buffer) Delete() {
	if b.cursor >= len(b.content) {
		return
	}
	b.content = append(b.content[:b.cursor], b.content[b.cursor+1:]...)
}

// MoveLeft moves the cursor one rune left.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.content) {
		b.cursor++
	}
}

// MoveUp moves the cursor to the previous line, keeping the column where
// possible.
func (b *Buffer) MoveUp() {
	line, col := b.lineCol()
	if line == 0 {
		b.cursor = 0
		return
	}
	b.cursor = b.offsetFor(line-1, col)
}

// MoveDown moves the cursor to the next line, keeping the column where
// possible.
func (b *Buffer) MoveDown() {
	line, col := b.lineCol()
	if line >= b.lineCount()-1 {
		b.cursor = len(b.content)
		return
	}
	b.cursor = b.offsetFor(line+1, col)
}

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() {
	b.content = nil
	b.cursor = 0
}

// Contents returns the buffer text.
func (b *Buffer) Contents() string {
	return string(b.content)
}

// Runes returns the raw rune content. Callers must not mutate it.
func (b *Buffer) Runes() []rune {
	return b.content
}

// Cursor returns the cursor offset in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.content)
}

func (b *Buffer) lineCol() (line, col int) {
	for i := 0; i < b.cursor; i++ {
		if b.content[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

func (b *Buffer) lineCount() int {
	count := 1
	for _, r := range b.content {
		if r == '\n' {
			count++
		}
	}
	return count
}

// offsetFor returns the rune offset of (line, col), clamping col to the
// line's length.
func (b *Buffer) offsetFor(line, col int) int {
	offset := 0
	for l := 0; l < line; l++ {
		for offset < len(b.content) && b.content[offset] != '\n' {
			offset++
		}
		if offset < len(b.content) {
			offset++
		}
	}
	for c := 0; c < col && offset < len(b.content) && b.content[offset] != '\n'; c++ {
		offset++
	}
	return offset
}
