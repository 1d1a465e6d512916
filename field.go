package ei

import "strconv"

// FieldType determines how a field value is aligned and padded.
type FieldType int

const (
	// Alphanumeric values are left aligned and padded with trailing spaces.
	Alphanumeric FieldType = iota
	// Numeric values are right aligned and padded with leading zeros.
	Numeric
)

func (t FieldType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	default:
		return "FieldType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Trim determines what happens to a value that is longer than its field.
type Trim int

const (
	// TrimNone rejects values that do not fit.
	TrimNone Trim = iota
	// TrimStart drops leading characters until the value fits.
	TrimStart
	// TrimEnd drops trailing characters until the value fits.
	TrimEnd
)

const (
	numericPadChar      = '0'
	alphanumericPadChar = ' '
	fillChar            = ' '
)

// A Getter computes the value of a field from the state of the record
// owning it. It is called every time the field is serialized.
type Getter func(f *Field) string

// A Setter is notified when a value is assigned to a field.
type Setter func(f *Field, value string)

// Field describes a single positional slot in a record.
//
// Offset is zero based. Length is the number of characters the field
// occupies in the output. Name is only used for diagnostics.
type Field struct {
	Offset int
	Length int
	Name   string
	Type   FieldType
	Trim   Trim

	// Value is the stored value of the field. It is used when no Getter
	// is bound.
	Value string

	Getter Getter
	Setter Setter
}

// Get resolves the value of the field.
func (f *Field) Get() string {
	if f.Getter != nil {
		return f.Getter(f)
	}
	return f.Value
}

// Set stores value in the field and notifies the Setter, if any. A bound
// Getter still takes precedence when the field is resolved.
func (f *Field) Set(value string) {
	f.Value = value
	if f.Setter != nil {
		f.Setter(f, value)
	}
}

func (f *Field) String() string {
	if f.Name == "" {
		return "Unnamed field"
	}
	return f.Name
}

func (f *Field) end() int {
	return f.Offset + f.Length
}
