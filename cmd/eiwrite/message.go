package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	ei "github.com/wallaceicy06/go-ei"
	"github.com/wallaceicy06/go-ei/codelist"
	"github.com/wallaceicy06/go-ei/records"
)

const inputDateLayout = "2006-01-02"

// message is a decoded message description.
type message struct {
	recordLength int
	records      []ei.Serializer
}

// parseMessage builds the records described by a JSON document. A footer
// record without an explicit total is tallied from the detail records
// preceding it.
func parseMessage(data []byte, defaultLength int) (*message, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON message")
	}
	doc := gjson.ParseBytes(data)

	m := &message{recordLength: defaultLength}
	if l := doc.Get("recordLength"); l.Exists() {
		m.recordLength = int(l.Int())
	}

	for i, item := range doc.Get("records").Array() {
		r, err := parseRecord(item, m.records)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		m.records = append(m.records, r)
	}
	if len(m.records) == 0 {
		return nil, errors.New("message has no records")
	}
	return m, nil
}

func parseRecord(item gjson.Result, preceding []ei.Serializer) (ei.Serializer, error) {
	switch typ := item.Get("type").String(); typ {
	case "start":
		return parseStart(item)
	case "insured":
		return parseInsuredPerson(item)
	case "performance":
		return parsePerformance(item)
	case "footer":
		return parseFooter(item, preceding), nil
	default:
		return nil, errors.Errorf("unknown record type %q", typ)
	}
}

func parseStart(item gjson.Result) (*records.StartRecord, error) {
	r := records.NewStartRecord()
	if item.Get("production").Bool() {
		r.Type = records.MessageTypeProduction
	}
	if v := item.Get("currency"); v.Exists() {
		r.CurrencyCode = v.String()
	}
	r.InvoiceID = item.Get("invoiceId").String()
	r.UzoviID = int(item.Get("uzovi").Int())
	r.CareProviderAgbID = int(item.Get("agb").Int())
	r.PaymentRecipient = records.PaymentRecipient(item.Get("paymentRecipient").Int())
	if v := item.Get("softwareVendorCode"); v.Exists() {
		r.SoftwareVendorCode.Set(v.String())
	}

	var err error
	if r.StartDate, err = parseDate(item, "startDate"); err != nil {
		return nil, err
	}
	if r.EndDate, err = parseDate(item, "endDate"); err != nil {
		return nil, err
	}
	if r.InvoiceDate, err = parseDate(item, "invoiceDate"); err != nil {
		return nil, err
	}
	return r, nil
}

func parseInsuredPerson(item gjson.Result) (*records.InsuredPersonRecord, error) {
	r := records.NewInsuredPersonRecord()
	if err := r.SetID(item.Get("id").Int()); err != nil {
		return nil, err
	}
	r.BurgerServiceNumber = item.Get("bsn").Int()
	r.UzoviID = int(item.Get("uzovi").Int())
	r.RelationID = item.Get("relationId").String()
	r.SurName = item.Get("surname").String()
	r.SurnamePrefix = item.Get("surnamePrefix").String()
	r.Initials = item.Get("initials").String()
	r.HouseNumber = int(item.Get("houseNumber").Int())
	r.Postcode = item.Get("postcode").String()
	if v := item.Get("country"); v.Exists() {
		r.AddressCountryCode = v.String()
	}
	r.Deceased = item.Get("deceased").Bool()
	r.Gender = records.Female
	if item.Get("gender").String() == "M" {
		r.Gender = records.Male
	}

	var err error
	if r.DateOfBirth, err = parseDate(item, "dateOfBirth"); err != nil {
		return nil, err
	}
	return r, nil
}

func parsePerformance(item gjson.Result) (*records.TransportPerformanceRecord, error) {
	r := records.NewTransportPerformanceRecord()
	if err := r.SetID(item.Get("id").Int()); err != nil {
		return nil, err
	}
	r.BurgerServiceNumber = item.Get("bsn").Int()
	r.UzoviID = int(item.Get("uzovi").Int())
	if v := item.Get("allowForwarding"); v.Exists() {
		r.AllowForwarding = v.Bool()
	}
	if v := item.Get("dueToAccident"); v.Exists() {
		accident := v.Bool()
		r.DueToAccident = &accident
	}
	if v := item.Get("destination"); v.Exists() {
		d, ok := codelist.LookupTransportDestination(int(v.Int()))
		if !ok {
			return nil, errors.Errorf("unknown transport destination %d", v.Int())
		}
		r.TransportDestination = d.ID
	}
	r.PerformanceCodeList = int(item.Get("performanceCodeList").Int())
	r.PerformanceCode = int(item.Get("performanceCode").Int())
	r.CareProviderAgbID = int(item.Get("agb").Int())
	if v := item.Get("measureUnit"); v.Exists() {
		r.MeasureUnit = records.MeasureUnit(v.Int())
	}
	r.UnitCount = int(item.Get("unitCount").Int())
	r.UnitPrice = item.Get("unitPrice").Float()
	r.TotalAmount = item.Get("totalAmount").Float()
	r.InvoicedAmount = r.TotalAmount
	if v := item.Get("invoicedAmount"); v.Exists() {
		r.InvoicedAmount = v.Float()
	}
	if v := item.Get("departureTime"); v.Exists() {
		r.DepartureTime.Set(v.String())
	}

	var err error
	if r.PerformanceDate, err = parseDate(item, "date"); err != nil {
		return nil, err
	}
	return r, nil
}

func parseFooter(item gjson.Result, preceding []ei.Serializer) *records.FooterRecord {
	r := records.NewFooterRecord()
	r.Tally(preceding...)
	if v := item.Get("totalAmount"); v.Exists() {
		r.TotalAmount = v.Float()
	}
	return r
}

// parseDate returns the zero time when the property is absent.
func parseDate(item gjson.Result, property string) (time.Time, error) {
	v := item.Get(property)
	if !v.Exists() {
		return time.Time{}, nil
	}
	t, err := time.Parse(inputDateLayout, v.String())
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "property %s", property)
	}
	return t, nil
}
