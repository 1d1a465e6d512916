package ei

import "strconv"

// OversizeFieldValueError describes a value that is longer than its field
// while the field does not allow trimming.
type OversizeFieldValueError struct {
	Field       string
	Length      int
	ValueLength int
}

func (e *OversizeFieldValueError) Error() string {
	return "ei: value length " + strconv.Itoa(e.ValueLength) +
		" exceeds maximum length " + strconv.Itoa(e.Length) + " for field " + e.Field
}

// UnsupportedFieldTypeError describes a field with a type other than
// Numeric or Alphanumeric.
type UnsupportedFieldTypeError struct {
	Field string
	Type  FieldType
}

func (e *UnsupportedFieldTypeError) Error() string {
	return "ei: unsupported type " + e.Type.String() + " for field " + e.Field
}

// InvalidCodepointError describes a field value that is not valid UTF-8.
type InvalidCodepointError struct {
	Field string
	Value string
}

func (e *InvalidCodepointError) Error() string {
	return "ei: invalid codepoint in value " + strconv.Quote(e.Value) + " for field " + e.Field
}

// LayoutError describes a field that overlaps another field or extends
// beyond the end of its record. It is only reported by Validate.
type LayoutError struct {
	Field string
	// Other is the overlapped field. It is empty when the field exceeds
	// the record length.
	Other        string
	Offset       int
	Length       int
	RecordLength int
}

func (e *LayoutError) Error() string {
	span := "[" + strconv.Itoa(e.Offset) + "," + strconv.Itoa(e.Offset+e.Length) + ")"
	if e.Other != "" {
		return "ei: field " + e.Field + " " + span + " overlaps field " + e.Other
	}
	return "ei: field " + e.Field + " " + span + " exceeds record length " + strconv.Itoa(e.RecordLength)
}
