package records

import (
	"fmt"
	"time"

	ei "github.com/wallaceicy06/go-ei"
)

// StartCode is the code of the start record.
const StartCode = 1

// MessageType distinguishes test messages from production messages.
type MessageType byte

const (
	MessageTypeTest       MessageType = 'T'
	MessageTypeProduction MessageType = 'P'
)

// String returns the one character code written to the start record. Only
// MessageTypeProduction yields "P"; every other value, including the zero
// value, is written as a test message.
func (t MessageType) String() string {
	if t == MessageTypeProduction {
		return "P"
	}
	return "T"
}

// PaymentRecipient identifies who receives the payment. Based on code list
// COD833.
type PaymentRecipient int

const (
	// ServiceParty clears and factors invoices between care provider and
	// insurer.
	ServiceParty PaymentRecipient = 1
	// CareProvider is a natural person.
	CareProvider PaymentRecipient = 2
	// CarePractice is the practice the care provider belongs to.
	CarePractice PaymentRecipient = 3
	// CareFacility is a care institution.
	CareFacility PaymentRecipient = 4
)

// StartRecord is the first record of a message (voorlooprecord).
type StartRecord struct {
	*ei.Record

	MessageCode        int
	StandardVersion    int
	StandardSubversion int
	Type               MessageType

	PaymentRecipient PaymentRecipient
	StartDate        time.Time
	EndDate          time.Time

	InvoiceID   string
	InvoiceDate time.Time

	// CurrencyCode is an ISO currency code from code list COD363.
	CurrencyCode string

	// UzoviID identifies the insurer, see the UZOVI register at Vektis.
	UzoviID int
	// CareProviderAgbID identifies the care provider, see the AGB register
	// at Vektis.
	CareProviderAgbID int

	// Fields without a backing property. Their value can be assigned with
	// Set.
	SoftwareVendorCode *ei.Field
	ServiceBureauCode  *ei.Field
	PracticeCode       *ei.Field
	InstitutionCode    *ei.Field
}

// NewStartRecord returns a start record for a test message of standard
// version 4.2.
func NewStartRecord() *StartRecord {
	r := &StartRecord{
		Record:             ei.NewRecord(StartCode),
		MessageCode:        117,
		StandardVersion:    4,
		StandardSubversion: 2,
		Type:               MessageTypeTest,
		CurrencyCode:       "EUR",
	}

	r.MapField(ei.Field{Offset: 2, Length: 3, Name: "Code", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return fmt.Sprintf("%03d", r.MessageCode) }})
	r.MapField(ei.Field{Offset: 5, Length: 2, Name: "Versienummer berichtstandaard", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.StandardVersion) }})
	r.MapField(ei.Field{Offset: 7, Length: 2, Name: "Subversienummer berichtstandaard", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.StandardSubversion) }})
	r.MapField(ei.Field{Offset: 9, Length: 1, Name: "Soort bericht", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return r.Type.String() }})

	r.SoftwareVendorCode = r.MapField(ei.Field{Offset: 10, Length: 6, Name: "Code informatiesysteem softwareleverancier", Type: ei.Numeric})

	r.MapField(ei.Field{Offset: 26, Length: 4, Name: "UZOVI-nummer", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.UzoviID) }})
	r.ServiceBureauCode = r.MapField(ei.Field{Offset: 30, Length: 8, Name: "Code servicebureau", Type: ei.Numeric})
	r.MapField(ei.Field{Offset: 38, Length: 8, Name: "Zorgverlenerscode", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.CareProviderAgbID) }})
	r.PracticeCode = r.MapField(ei.Field{Offset: 46, Length: 8, Name: "Praktijkcode", Type: ei.Numeric})
	r.InstitutionCode = r.MapField(ei.Field{Offset: 54, Length: 8, Name: "Instellingcode", Type: ei.Numeric})

	r.MapField(ei.Field{Offset: 62, Length: 2, Name: "Identificatiecode betaling aan", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(int(r.PaymentRecipient)) }})
	r.MapField(ei.Field{Offset: 64, Length: 8, Name: "Begindatum declaratieperiode", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return date(r.StartDate) }})
	r.MapField(ei.Field{Offset: 72, Length: 8, Name: "Einddatum declaratieperiode", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return date(r.EndDate) }})

	r.MapField(ei.Field{Offset: 80, Length: 12, Name: "Factuurnummer declarant", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string { return r.InvoiceID }})
	r.MapField(ei.Field{Offset: 92, Length: 8, Name: "Dagtekening factuur", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return date(r.InvoiceDate) }})

	r.MapField(ei.Field{Offset: 114, Length: 3, Name: "Valutacode", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string { return r.CurrencyCode }})

	return r
}
