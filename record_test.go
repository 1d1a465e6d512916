package ei

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(length int, fields ...Field) *Record {
	r := NewRecord(1)
	for _, f := range fields {
		r.MapField(f)
	}
	r.SetLength(length)
	return r
}

func TestRecord_Line(t *testing.T) {
	for _, tt := range []struct {
		name   string
		length int
		fields []Field
		expect string
	}{
		{
			name:   "code only",
			length: 10,
			expect: "01        \r\n",
		},
		{
			name:   "trim end",
			length: 6,
			fields: []Field{{Offset: 2, Length: 3, Type: Alphanumeric, Trim: TrimEnd, Value: "ABCDE"}},
			expect: "01ABC \r\n",
		},
		{
			name:   "trim start",
			length: 6,
			fields: []Field{{Offset: 2, Length: 3, Type: Alphanumeric, Trim: TrimStart, Value: "ABCDE"}},
			expect: "01CDE \r\n",
		},
		{
			name:   "numeric padded with zeros",
			length: 8,
			fields: []Field{{Offset: 2, Length: 5, Type: Numeric, Value: "42"}},
			expect: "0100042 \r\n",
		},
		{
			name:   "alphanumeric padded with spaces",
			length: 8,
			fields: []Field{{Offset: 2, Length: 5, Type: Alphanumeric, Value: "ab"}},
			expect: "01ab    \r\n",
		},
		{
			name:   "exact fit",
			length: 7,
			fields: []Field{
				{Offset: 2, Length: 2, Type: Numeric, Value: "12"},
				{Offset: 4, Length: 3, Type: Alphanumeric, Value: "xyz"},
			},
			expect: "0112xyz\r\n",
		},
		{
			name:   "trim does not apply to values that fit",
			length: 6,
			fields: []Field{{Offset: 2, Length: 4, Type: Numeric, Trim: TrimStart, Value: "7"}},
			expect: "010007\r\n",
		},
		{
			name:   "gaps filled with spaces",
			length: 12,
			fields: []Field{
				{Offset: 4, Length: 2, Type: Numeric, Value: "9"},
				{Offset: 8, Length: 2, Type: Alphanumeric, Value: "z"},
			},
			expect: "01  09  z   \r\n",
		},
		{
			name:   "declaration order does not matter",
			length: 8,
			fields: []Field{
				{Offset: 5, Length: 3, Type: Alphanumeric, Value: "end"},
				{Offset: 2, Length: 3, Type: Alphanumeric, Value: "mid"},
			},
			expect: "01midend\r\n",
		},
		{
			name:   "empty numeric",
			length: 5,
			fields: []Field{{Offset: 2, Length: 3, Type: Numeric}},
			expect: "01000\r\n",
		},
		{
			name:   "overlapping field with greater offset wins",
			length: 8,
			fields: []Field{
				{Offset: 2, Length: 4, Type: Alphanumeric, Value: "aaaa"},
				{Offset: 4, Length: 2, Type: Alphanumeric, Value: "bb"},
			},
			expect: "01aabb  \r\n",
		},
		{
			name:   "same offset later declaration wins",
			length: 5,
			fields: []Field{
				{Offset: 2, Length: 3, Type: Alphanumeric, Value: "one"},
				{Offset: 2, Length: 3, Type: Alphanumeric, Value: "two"},
			},
			expect: "01two\r\n",
		},
		{
			name:   "field beyond length extends line",
			length: 4,
			fields: []Field{{Offset: 4, Length: 2, Type: Numeric, Value: "1"}},
			expect: "01  01\r\n",
		},
		{
			name:   "multibyte characters count as one",
			length: 6,
			fields: []Field{{Offset: 2, Length: 3, Type: Alphanumeric, Value: "Aé"}},
			expect: "01Aé  \r\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(tt.length, tt.fields...)
			line, err := r.Line()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, line)
		})
	}
}

func TestRecord_Code(t *testing.T) {
	for _, tt := range []struct {
		code   int
		expect string
	}{
		{1, "01"},
		{4, "04"},
		{99, "99"},
	} {
		r := NewRecord(tt.code)
		r.SetLength(2)
		line, err := r.Line()
		require.NoError(t, err)
		assert.Equal(t, tt.expect+"\r\n", line)
		assert.Equal(t, tt.code, r.Code())
	}
}

func TestRecord_LineLength(t *testing.T) {
	r := newTestRecord(40,
		Field{Offset: 3, Length: 7, Type: Numeric, Value: "123"},
		Field{Offset: 15, Length: 10, Type: Alphanumeric, Value: "hello"},
		Field{Offset: 30, Length: 4, Type: Alphanumeric, Trim: TrimEnd, Value: "truncated"},
	)
	line, err := r.Line()
	require.NoError(t, err)
	assert.Len(t, line, 42)
	assert.True(t, strings.HasSuffix(line, "\r\n"))

	covered := make([]bool, 40)
	for _, f := range r.Fields() {
		for i := f.Offset; i < f.end(); i++ {
			covered[i] = true
		}
	}
	for i, c := range covered {
		if !c {
			assert.Equal(t, byte(' '), line[i], "position %d", i)
		}
	}
}

func TestRecord_OversizeValue(t *testing.T) {
	r := newTestRecord(10, Field{Offset: 2, Length: 3, Name: "Short", Type: Alphanumeric, Value: "toolong"})

	var buff bytes.Buffer
	err := r.Serialize(&buff)
	require.Error(t, err)

	var oversize *OversizeFieldValueError
	require.True(t, errors.As(err, &oversize))
	assert.Equal(t, "Short", oversize.Field)
	assert.Equal(t, 3, oversize.Length)
	assert.Equal(t, 7, oversize.ValueLength)
	assert.Contains(t, err.Error(), "Short")
	assert.Zero(t, buff.Len(), "no output expected for a failed record")
}

func TestRecord_UnsupportedFieldType(t *testing.T) {
	r := newTestRecord(10, Field{Offset: 2, Length: 3, Name: "Odd", Type: FieldType(42), Value: "x"})

	var buff bytes.Buffer
	err := r.Serialize(&buff)

	var unsupported *UnsupportedFieldTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "Odd", unsupported.Field)
	assert.Equal(t, FieldType(42), unsupported.Type)
	assert.Zero(t, buff.Len())
}

func TestRecord_Idempotent(t *testing.T) {
	r := newTestRecord(20,
		Field{Offset: 2, Length: 6, Type: Numeric, Value: "31"},
		Field{Offset: 10, Length: 4, Type: Alphanumeric, Trim: TrimStart, Value: "abcdefg"},
	)

	var first, second bytes.Buffer
	require.NoError(t, r.Serialize(&first))
	require.NoError(t, r.Serialize(&second))
	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Equal(t, "abcdefg", r.Fields()[2].Value)
}

func TestRecord_LateBinding(t *testing.T) {
	var count int
	r := newTestRecord(6, Field{Offset: 2, Length: 4, Type: Numeric, Getter: func(*Field) string {
		return strings.Repeat("1", count)
	}})

	count = 2
	line, err := r.Line()
	require.NoError(t, err)
	assert.Equal(t, "010011\r\n", line)

	count = 5
	_, err = r.Line()
	var oversize *OversizeFieldValueError
	assert.True(t, errors.As(err, &oversize))
}

func TestRecord_MapField(t *testing.T) {
	r := NewRecord(2)
	f := r.MapField(Field{Offset: 2, Length: 4, Name: "Number", Type: Numeric})
	f.Set("12")

	fields := r.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Kenmerk record", fields[0].Name)
	assert.Same(t, f, fields[1])

	found, ok := r.Field("Number")
	require.True(t, ok)
	assert.Same(t, f, found)
	_, ok = r.Field("Missing")
	assert.False(t, ok)

	r.SetLength(6)
	line, err := r.Line()
	require.NoError(t, err)
	assert.Equal(t, "020012\r\n", line)
}

func TestRecord_MapFieldPanics(t *testing.T) {
	r := NewRecord(1)
	assert.Panics(t, func() { r.MapField(Field{Offset: -1, Length: 2}) })
	assert.Panics(t, func() { r.MapField(Field{Offset: 2, Length: 0}) })
}

func TestRecord_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := newTestRecord(10,
			Field{Offset: 2, Length: 4, Name: "A"},
			Field{Offset: 6, Length: 4, Name: "B"},
		)
		assert.NoError(t, r.Validate())
	})

	t.Run("overlap and out of bounds", func(t *testing.T) {
		r := newTestRecord(10,
			Field{Offset: 2, Length: 4, Name: "A"},
			Field{Offset: 4, Length: 4, Name: "B"},
			Field{Offset: 9, Length: 3, Name: "C"},
		)
		err := r.Validate()
		require.Error(t, err)

		merr, ok := err.(*multierror.Error)
		require.True(t, ok)
		require.Len(t, merr.Errors, 2)

		var overlap, bounds *LayoutError
		require.True(t, errors.As(merr.Errors[0], &overlap))
		assert.Equal(t, "B", overlap.Field)
		assert.Equal(t, "A", overlap.Other)
		require.True(t, errors.As(merr.Errors[1], &bounds))
		assert.Equal(t, "C", bounds.Field)
		assert.Empty(t, bounds.Other)
		assert.Equal(t, 10, bounds.RecordLength)
	})

	t.Run("code field overlap", func(t *testing.T) {
		r := newTestRecord(10, Field{Offset: 1, Length: 2, Name: "A"})
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ei: field A [1,3) overlaps field Kenmerk record")
	})
}

func TestRecord_InvalidCodepoint(t *testing.T) {
	r := newTestRecord(6, Field{Offset: 2, Length: 4, Name: "Latin1", Type: Alphanumeric, Value: "M\xfcl"})

	var buff bytes.Buffer
	err := r.Serialize(&buff)

	var invalid *InvalidCodepointError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Latin1", invalid.Field)
	assert.Equal(t, "M\xfcl", invalid.Value)
	assert.Zero(t, buff.Len(), "no output expected for a failed record")
}

func TestRecord_DefaultFieldType(t *testing.T) {
	r := newTestRecord(7, Field{Offset: 2, Length: 5, Value: "ab"})
	line, err := r.Line()
	require.NoError(t, err)
	assert.Equal(t, "01ab   \r\n", line)
}
