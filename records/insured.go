package records

import (
	"time"

	ei "github.com/wallaceicy06/go-ei"
)

// InsuredPersonCode is the code of the insured person record.
const InsuredPersonCode = 2

// Gender of an insured person.
type Gender byte

const (
	Male   Gender = 'M'
	Female Gender = 'F'
)

// countryUnknown is used for addresses in the Netherlands and for historic
// nations that no longer exist.
const countryUnknown = "00"

// InsuredPersonRecord identifies the insured person a performance is
// declared for (verzekerdenrecord).
type InsuredPersonRecord struct {
	*ei.Record
	detailID

	BurgerServiceNumber int64

	// SurName is abbreviated when it does not fit.
	SurName       string
	SurnamePrefix string
	Initials      string

	HouseNumber int
	// AddressCountryCode is an ISO 3166 alpha 2 code. "00" or "NL" for an
	// address in the Netherlands.
	AddressCountryCode string
	Postcode           string

	Deceased bool

	// UzoviID identifies the insurer, see the UZOVI register at Vektis.
	UzoviID int
	// RelationID is the number of the person at the insurer
	// (verzekerdennummer).
	RelationID string

	DateOfBirth time.Time
	Gender      Gender
}

// NewInsuredPersonRecord returns an insured person record with a domestic
// address.
func NewInsuredPersonRecord() *InsuredPersonRecord {
	r := &InsuredPersonRecord{
		Record:             ei.NewRecord(InsuredPersonCode),
		AddressCountryCode: countryUnknown,
	}

	r.MapField(ei.Field{Offset: 2, Length: 12, Name: "Identificatie detailrecord", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return formatInt64(r.ID()) }})
	r.MapField(ei.Field{Offset: 14, Length: 9, Name: "Burgerservicenummer", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return formatInt64(r.BurgerServiceNumber) }})
	r.MapField(ei.Field{Offset: 23, Length: 4, Name: "UZOVI-nummer", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.UzoviID) }})
	r.MapField(ei.Field{Offset: 27, Length: 15, Name: "Verzekerdennummer", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string { return r.RelationID }})

	r.MapField(ei.Field{Offset: 53, Length: 8, Name: "Datum geboorte verzekerde", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return date(r.DateOfBirth) }})
	r.MapField(ei.Field{Offset: 61, Length: 1, Name: "Geslacht verzekerde", Type: ei.Numeric,
		Getter: func(*ei.Field) string {
			if r.Gender == Male {
				return "1"
			}
			return "2"
		}})
	r.MapField(ei.Field{Offset: 62, Length: 1, Name: "Naamcode/naamgebruik (01)", Type: ei.Numeric, Value: "1"})
	r.MapField(ei.Field{Offset: 63, Length: 25, Name: "Naam verzekerde", Type: ei.Alphanumeric, Trim: ei.TrimEnd,
		Getter: func(*ei.Field) string { return r.SurName }})
	r.MapField(ei.Field{Offset: 88, Length: 10, Name: "Voorvoegsel verzekerde", Type: ei.Alphanumeric, Trim: ei.TrimEnd,
		Getter: func(*ei.Field) string { return r.SurnamePrefix }})

	// The second name is only used by service bureaus.
	r.MapField(ei.Field{Offset: 98, Length: 1, Name: "Naamcode/naamgebruik (02)", Type: ei.Numeric, Value: "0"})

	r.MapField(ei.Field{Offset: 134, Length: 6, Name: "Voorletters verzekerde", Type: ei.Alphanumeric, Trim: ei.TrimEnd,
		Getter: func(*ei.Field) string { return r.Initials }})
	r.MapField(ei.Field{Offset: 140, Length: 1, Name: "Naamcode/naamgebruik (03)", Type: ei.Numeric, Value: "1"})

	r.MapField(ei.Field{Offset: 141, Length: 6, Name: "Postcode (huisadres) verzekerde", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string {
			if r.domestic() {
				return r.Postcode
			}
			return ""
		}})
	r.MapField(ei.Field{Offset: 147, Length: 9, Name: "Postcode buitenland", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string {
			if r.domestic() {
				return ""
			}
			return r.Postcode
		}})
	r.MapField(ei.Field{Offset: 167, Length: 2, Name: "Code land verzekerde", Type: ei.Alphanumeric,
		Getter: func(*ei.Field) string { return r.AddressCountryCode }})
	r.MapField(ei.Field{Offset: 156, Length: 5, Name: "Huisnummer verzekerde", Type: ei.Numeric,
		Getter: func(*ei.Field) string { return itoa(r.HouseNumber) }})
	r.MapField(ei.Field{Offset: 180, Length: 1, Name: "Indicatie client overleden", Type: ei.Numeric,
		Getter: func(*ei.Field) string {
			if r.Deceased {
				return "1"
			}
			return "2"
		}})

	return r
}

func (r *InsuredPersonRecord) domestic() bool {
	return r.AddressCountryCode == countryUnknown || r.AddressCountryCode == "NL"
}
