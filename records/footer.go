package records

import (
	ei "github.com/wallaceicy06/go-ei"
)

// FooterCode is the code of the footer record.
const FooterCode = 99

// FooterRecord closes a message with totals (sluitrecord).
type FooterRecord struct {
	*ei.Record

	InsuredPersonRecordCount int
	DebtorRecordCount        int
	PerformanceRecordCount   int
	CommentRecordCount       int
	DetailRecordCount        int

	// TotalAmount is the declared amount in euros. Negative for credit.
	TotalAmount float64
}

// NewFooterRecord returns an empty footer record.
func NewFooterRecord() *FooterRecord {
	r := &FooterRecord{Record: ei.NewRecord(FooterCode)}

	r.MapField(ei.Field{Offset: 2, Length: 6, Name: "Aantal verzekerdenrecords", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.InsuredPersonRecordCount) }})
	r.MapField(ei.Field{Offset: 8, Length: 6, Name: "Aantal debiteurrecords", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.DebtorRecordCount) }})
	r.MapField(ei.Field{Offset: 14, Length: 6, Name: "Aantal prestatierecords", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.PerformanceRecordCount) }})
	r.MapField(ei.Field{Offset: 20, Length: 6, Name: "Aantal commentaarrecords", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.CommentRecordCount) }})
	r.MapField(ei.Field{Offset: 26, Length: 7, Name: "Totaal aantal detailrecords", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.DetailRecordCount) }})

	r.MapField(ei.Field{Offset: 33, Length: 11, Name: "Totaal declaratiebedrag", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return cents(r.TotalAmount) }})
	r.MapField(ei.Field{Offset: 44, Length: 1, Name: "Indicatie debet/credit", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string { return debitCredit(r.TotalAmount) }})

	return r
}

// Tally sets the record counts and the total amount from the detail
// records of a message. Records that are not detail records are ignored.
func (r *FooterRecord) Tally(rs ...ei.Serializer) {
	r.InsuredPersonRecordCount = 0
	r.PerformanceRecordCount = 0
	r.TotalAmount = 0
	for _, rec := range rs {
		switch rec := rec.(type) {
		case *InsuredPersonRecord:
			r.InsuredPersonRecordCount++
		case *TransportPerformanceRecord:
			r.PerformanceRecordCount++
			r.TotalAmount += rec.InvoicedAmount
		}
	}
	r.DetailRecordCount = r.InsuredPersonRecordCount + r.DebtorRecordCount +
		r.PerformanceRecordCount + r.CommentRecordCount
}
