package ei

import (
	"io"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

const (
	codeLength = 2
	lineEnding = "\r\n"
)

// Record is a single EI record. A record consists of a table of fields and
// is identified by a numeric code that is written in the first two
// characters of the line.
//
// Concrete record types embed *Record and declare their fields using
// MapField in their constructor.
type Record struct {
	// Length is the total length of the line in characters, excluding the
	// line ending. It is normally set by the Writer.
	Length int

	code   int
	fields []*Field
}

// NewRecord returns a record identified by code. The record field holding
// the code is mapped at offset 0.
func NewRecord(code int) *Record {
	r := &Record{code: code}
	r.MapField(Field{
		Offset: 0,
		Length: codeLength,
		Name:   "Kenmerk record",
		Type:   Numeric,
		Getter: func(*Field) string { return strconv.Itoa(r.code) },
	})
	return r
}

// Code returns the code identifying the record kind.
func (r *Record) Code() int {
	return r.code
}

// SetLength sets the total length of the record.
func (r *Record) SetLength(length int) {
	r.Length = length
}

// MapField adds a field to the record and returns the stored field.
//
// MapField panics if the offset is negative or the length is not positive.
// Fields are expected to be declared once, when a record type is
// constructed.
func (r *Record) MapField(f Field) *Field {
	if f.Offset < 0 {
		panic("ei: negative offset " + strconv.Itoa(f.Offset) + " for field " + f.String())
	}
	if f.Length <= 0 {
		panic("ei: non-positive length " + strconv.Itoa(f.Length) + " for field " + f.String())
	}
	field := new(Field)
	*field = f
	r.fields = append(r.fields, field)
	return field
}

// Fields returns the fields of the record in declaration order.
func (r *Record) Fields() []*Field {
	return append([]*Field(nil), r.fields...)
}

// Field returns the first field with the given name.
func (r *Record) Field(name string) (*Field, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// sortedFields returns the fields ordered by offset. Fields sharing an
// offset keep their declaration order.
func (r *Record) sortedFields() []*Field {
	fields := r.Fields()
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Offset < fields[j].Offset
	})
	return fields
}

// Line returns the encoded record including the CR LF line ending.
//
// Fields are written in order of their offsets. Characters not covered by
// a field are spaces. When fields overlap, the field with the greater
// offset wins the shared columns. A field placed beyond Length extends the
// line; Validate reports such layouts.
func (r *Record) Line() (string, error) {
	buff := newLineBuilder(r.Length, fillChar)
	for _, f := range r.sortedFields() {
		value, err := encodeField(f)
		if err != nil {
			return "", err
		}
		buff.WriteValue(f.Offset, value)
	}
	return buff.String() + lineEnding, nil
}

// Serialize writes the record to w. Nothing is written when a field cannot
// be encoded.
func (r *Record) Serialize(w io.Writer) error {
	line, err := r.Line()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line)
	return err
}

// Validate checks that no two fields overlap and that every field ends
// within Length. All violations are reported.
func (r *Record) Validate() error {
	var result *multierror.Error
	fields := r.sortedFields()
	for i, f := range fields {
		if f.end() > r.Length {
			result = multierror.Append(result, &LayoutError{
				Field:        f.String(),
				Offset:       f.Offset,
				Length:       f.Length,
				RecordLength: r.Length,
			})
		}
		for _, other := range fields[i+1:] {
			if other.Offset >= f.end() {
				break
			}
			result = multierror.Append(result, &LayoutError{
				Field:        other.String(),
				Other:        f.String(),
				Offset:       other.Offset,
				Length:       other.Length,
				RecordLength: r.Length,
			})
		}
	}
	return result.ErrorOrNil()
}

// encodeField resolves the value of f and returns it trimmed and padded to
// exactly f.Length characters. Values must be valid UTF-8.
func encodeField(f *Field) ([]rune, error) {
	s := f.Get()
	if !utf8.ValidString(s) {
		return nil, &InvalidCodepointError{Field: f.String(), Value: s}
	}
	value := []rune(s)
	if deficit := f.Length - len(value); deficit < 0 {
		switch f.Trim {
		case TrimEnd:
			value = value[:f.Length]
		case TrimStart:
			value = value[-deficit:]
		default:
			return nil, &OversizeFieldValueError{
				Field:       f.String(),
				Length:      f.Length,
				ValueLength: len(value),
			}
		}
	}

	switch f.Type {
	case Numeric:
		return padLeft(value, f.Length, numericPadChar), nil
	case Alphanumeric:
		return padRight(value, f.Length, alphanumericPadChar), nil
	default:
		return nil, &UnsupportedFieldTypeError{Field: f.String(), Type: f.Type}
	}
}
