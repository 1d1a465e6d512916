// Package records implements the records of the EI declaration message for
// patient transport (VECOZO).
//
// Each record type embeds *ei.Record and declares its field table in its
// constructor. Field values are computed from the record's properties at
// the moment the record is written.
package records

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const dateLayout = "20060102"

// MaxID is the exclusive upper bound of a detail record ID.
const MaxID int64 = 1000000000000

// RangeError describes a property value outside its allowed range.
type RangeError struct {
	Property string
	Value    int64
	Min, Max int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ei: %s %d out of range [%d, %d)", e.Property, e.Value, e.Min, e.Max)
}

// detailID holds the ID of a detail record. The ID is echoed in EI replies
// and should start at 1 for the first record of a message.
type detailID struct {
	id int64
}

// ID returns the record ID.
func (d *detailID) ID() int64 {
	return d.id
}

// SetID sets the record ID. The ID must be at most 12 digits and not
// negative.
func (d *detailID) SetID(id int64) error {
	if id < 0 || id >= MaxID {
		return &RangeError{Property: "ID", Value: id, Min: 0, Max: MaxID}
	}
	d.id = id
	return nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func formatInt64(i int64) string {
	return strconv.FormatInt(i, 10)
}

func date(t time.Time) string {
	return t.Format(dateLayout)
}

// cents returns the absolute amount in whole cents. Halves round to the
// nearest even cent.
func cents(amount float64) string {
	return strconv.FormatInt(int64(math.RoundToEven(math.Abs(amount)*100)), 10)
}

// debitCredit returns "D" for non negative amounts and "C" otherwise.
func debitCredit(amount float64) string {
	if amount >= 0 {
		return "D"
	}
	return "C"
}
