package records

import (
	"time"

	ei "github.com/wallaceicy06/go-ei"
)

// TransportPerformanceCode is the code of the transport performance record.
const TransportPerformanceCode = 4

// MeasureUnit is the unit a transport performance is counted in. Based on
// code list COD132-VEKT.
type MeasureUnit int

const (
	// Variable amount per unit. Not part of COD132-VEKT.
	Variable  MeasureUnit = 0
	Kilometer MeasureUnit = 1
	Ride      MeasureUnit = 4
)

// TransportPerformanceRecord declares a single patient transport
// (prestatierecord).
type TransportPerformanceRecord struct {
	*ei.Record
	detailID

	// UzoviID identifies the insurer, see the UZOVI register at Vektis.
	UzoviID int

	AllowForwarding bool

	// TransportDestination is a code from code list COD101. See package
	// codelist.
	TransportDestination int
	BurgerServiceNumber  int64

	// PerformanceCodeList identifies the list PerformanceCode is taken
	// from. Lists are defined in COD367-VEKT.
	PerformanceCodeList int
	PerformanceCode     int

	// CareProviderAgbID identifies the carrier, see the AGB register at
	// Vektis.
	CareProviderAgbID int

	PerformanceDate time.Time

	MeasureUnit MeasureUnit
	UnitCount   int

	// UnitPrice in euros including VAT.
	UnitPrice float64
	// TotalAmount is the calculated amount in euros including VAT. Negative
	// if the amount is to be credited.
	TotalAmount float64
	// InvoicedAmount is the declared amount in euros including VAT.
	// Negative if the amount is to be credited.
	InvoicedAmount float64

	// DueToAccident reports whether the transport was required because of
	// an accident. nil if unknown.
	DueToAccident *bool

	DepartureTime          *ei.Field
	OriginHouseNumber      *ei.Field
	DestinationHouseNumber *ei.Field
	Surcharge              *ei.Field
	VATPercentage          *ei.Field
}

// NewTransportPerformanceRecord returns a performance record that may be
// forwarded and is counted in kilometers.
func NewTransportPerformanceRecord() *TransportPerformanceRecord {
	r := &TransportPerformanceRecord{
		Record:          ei.NewRecord(TransportPerformanceCode),
		AllowForwarding: true,
		MeasureUnit:     Kilometer,
	}

	r.MapField(ei.Field{Offset: 2, Length: 12, Name: "Identificatie detailrecord", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return formatInt64(r.ID()) }})
	r.MapField(ei.Field{Offset: 14, Length: 9, Name: "Burgerservicenummer", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return formatInt64(r.BurgerServiceNumber) }})
	r.MapField(ei.Field{Offset: 23, Length: 4, Name: "UZOVI-nummer", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.UzoviID) }})

	r.MapField(ei.Field{Offset: 57, Length: 1, Name: "Doorsturen toegestaan", Type: ei.Numeric,
		Getter: func(*ei.Field) string {
			if r.AllowForwarding {
				return "1"
			}
			return "0"
		}})
	r.MapField(ei.Field{Offset: 58, Length: 1, Name: "Indicatie ongeval", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string {
			switch {
			case r.DueToAccident == nil:
				return "O"
			case *r.DueToAccident:
				return "J"
			default:
				return "N"
			}
		}})
	r.MapField(ei.Field{Offset: 59, Length: 4, Name: "Code bestemming vervoer", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.TransportDestination) }})
	r.MapField(ei.Field{Offset: 63, Length: 3, Name: "Aanduiding prestatiecodelijst", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.PerformanceCodeList) }})
	r.MapField(ei.Field{Offset: 66, Length: 6, Name: "Prestatiecode", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.PerformanceCode) }})

	r.MapField(ei.Field{Offset: 100, Length: 8, Name: "Zorgverlenerscode vervoerder", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.CareProviderAgbID) }})
	r.MapField(ei.Field{Offset: 108, Length: 8, Name: "Datum prestatie", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return date(r.PerformanceDate) }})
	r.DepartureTime = r.MapField(ei.Field{Offset: 116, Length: 4, Name: "Vertrektijd vervoer", Type: ei.Numeric})

	r.OriginHouseNumber = r.MapField(ei.Field{Offset: 144, Length: 5, Name: "Huisnummer herkomst", Type: ei.Numeric})
	r.DestinationHouseNumber = r.MapField(ei.Field{Offset: 220, Length: 5, Name: "Huisnummer bestemming", Type: ei.Numeric})

	r.MapField(ei.Field{Offset: 272, Length: 1, Name: "Eenheid rit/prestatie", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(int(r.MeasureUnit)) }})
	r.MapField(ei.Field{Offset: 273, Length: 4, Name: "Aantal (rit)eenheden", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.UnitCount) }})
	r.MapField(ei.Field{Offset: 277, Length: 8, Name: "Tarief prestatie (incl. BTW)", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return cents(r.UnitPrice) }})

	r.Surcharge = r.MapField(ei.Field{Offset: 285, Length: 8, Name: "Bedrag toeslag", Type: ei.Numeric})

	r.MapField(ei.Field{Offset: 293, Length: 8, Name: "Berekend bedrag (incl. BTW)", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return cents(r.TotalAmount) }})
	r.MapField(ei.Field{Offset: 301, Length: 1, Name: "Indicatie debet/credit (01)", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string { return debitCredit(r.TotalAmount) }})

	r.VATPercentage = r.MapField(ei.Field{Offset: 302, Length: 4, Name: "BTW percentage declaratiebedrag", Type: ei.Numeric})
	r.MapField(ei.Field{Offset: 306, Length: 8, Name: "Declaratiebedrag (incl. BTW)", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return cents(r.InvoicedAmount) }})
	r.MapField(ei.Field{Offset: 314, Length: 1, Name: "Indicatie debet/credit (02)", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string { return debitCredit(r.InvoicedAmount) }})

	return r
}
