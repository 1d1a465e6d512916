package ei

// lineBuilder builds a single line of fixed width text. Positions are
// expressed in characters rather than bytes so that a multibyte character
// occupies a single column.
type lineBuilder struct {
	data []rune
}

// newLineBuilder makes a new lineBuilder of len characters. The line is
// filled with the provided fillChar.
func newLineBuilder(len int, fillChar rune) *lineBuilder {
	if len < 0 {
		len = 0
	}
	data := make([]rune, len)
	for i := range data {
		data[i] = fillChar
	}
	return &lineBuilder{data: data}
}

// WriteValue writes value at the given start index. The line grows with
// fill characters when value reaches beyond its end. Characters already
// present in the written range are overwritten.
func (b *lineBuilder) WriteValue(start int, value []rune) {
	if end := start + len(value); end > len(b.data) {
		b.grow(end)
	}
	copy(b.data[start:], value)
}

func (b *lineBuilder) grow(n int) {
	for len(b.data) < n {
		b.data = append(b.data, fillChar)
	}
}

func (b *lineBuilder) Len() int {
	return len(b.data)
}

func (b *lineBuilder) String() string {
	return string(b.data)
}

// padLeft returns value right aligned in width characters, preceded by
// padChar. value must not be longer than width.
func padLeft(value []rune, width int, padChar rune) []rune {
	out := make([]rune, width)
	n := width - len(value)
	for i := 0; i < n; i++ {
		out[i] = padChar
	}
	copy(out[n:], value)
	return out
}

// padRight returns value left aligned in width characters, followed by
// padChar. value must not be longer than width.
func padRight(value []rune, width int, padChar rune) []rune {
	out := make([]rune, width)
	copy(out, value)
	for i := len(value); i < width; i++ {
		out[i] = padChar
	}
	return out
}
