package misb0601

import (
	"time"

	"github.com/ansel1/merry"
	"github.com/gemalto/klv-go"
	"github.com/gemalto/klv-go/misb0102"
)

// unsignedMap spreads [lo, hi] over the unsigned integers of width bytes.
func unsignedMap(lo, hi float64, width int) klv.Format {
	return klv.FloatFormat(klv.IntMap{Lo: lo, Hi: hi}, width)
}

// signedMap spreads [lo, hi] symmetrically over the signed integers of width
// bytes.  The most negative pattern is the ST 0601 error indicator.
func signedMap(lo, hi float64, width int) klv.Format {
	return klv.FloatFormat(klv.IntMap{
		Lo:       lo,
		Hi:       hi,
		Signed:   true,
		Reserved: []uint64{1 << (8*uint(width) - 1)},
	}, width)
}

func imap(lo, hi float64, width int) klv.Format {
	return klv.FloatFormat(klv.IMAP{Lo: lo, Hi: hi}, width)
}

// Field names of the composite tags.
const (
	FieldCommandID            = "Command ID"
	FieldCommand              = "Command"
	FieldCommandTime          = "Command Time"
	FieldCodingMethod         = "Coding Method"
	FieldOverflightCountry    = "Overflight Country"
	FieldOperatorCountry      = "Operator Country"
	FieldCountryOfManufacture = "Country of Manufacture"
	FieldNumerator            = "Numerator"
	FieldDenominator          = "Denominator"
	FieldPayloadID            = "Payload ID"
	FieldPayloadType          = "Payload Type"
	FieldPayloadName          = "Payload Name"
)

var controlCommandFormat = klv.RecordFormat("Control Command",
	klv.FieldFormat{Name: FieldCommandID, Format: klv.OIDFormat(), Framing: klv.OID},
	klv.FieldFormat{Name: FieldCommand, Format: klv.StringFormat(), Framing: klv.BERLength},
	klv.FieldFormat{Name: FieldCommandTime, Format: klv.UintFormat(8), Framing: klv.Fixed, Optional: true},
)

var verificationListFormat = klv.ListFormat("Control Command Verification List", klv.OIDFormat(), klv.OID, false)

var wavelengthListFormat = klv.ListFormat("Active Wavelength List", klv.OIDFormat(), klv.OID, false)

var countryCodesFormat = klv.RecordFormat("Country Codes",
	klv.FieldFormat{Name: FieldCodingMethod, Format: klv.EnumFormat(misb0102.CountryCodingMethod, klv.UintFormat(0)), Framing: klv.BERLength},
	klv.FieldFormat{Name: FieldOverflightCountry, Format: klv.StringFormat(), Framing: klv.BERLength},
	klv.FieldFormat{Name: FieldOperatorCountry, Format: klv.StringFormat(), Framing: klv.BERLength, Optional: true},
	klv.FieldFormat{Name: FieldCountryOfManufacture, Format: klv.StringFormat(), Framing: klv.BERLength, Optional: true},
)

var frameRateFormat = klv.RecordFormat("Sensor Frame Rate Pack",
	klv.FieldFormat{Name: FieldNumerator, Format: klv.OIDFormat(), Framing: klv.OID},
	klv.FieldFormat{Name: FieldDenominator, Format: klv.OIDFormat(), Framing: klv.OID, Optional: true},
)

var payloadFormat = klv.RecordFormat("Payload",
	klv.FieldFormat{Name: FieldPayloadID, Format: klv.OIDFormat(), Framing: klv.OID},
	klv.FieldFormat{Name: FieldPayloadType, Format: klv.EnumFormat(PayloadType, klv.OIDFormat()), Framing: klv.OID},
	klv.FieldFormat{Name: FieldPayloadName, Format: klv.StringFormat(), Framing: klv.BERLength},
)

var payloadListFormat = klv.ListFormat("Payload List", payloadFormat, klv.BERLength, true)

// FrameRate returns the sensor frame rate in frames per second.  A missing
// denominator is 1.
func FrameRate(v klv.Value) (float64, error) {
	r, ok := v.(klv.Record)
	if !ok {
		return 0, merry.Here(klv.ErrInvalidValue).Appendf("frame rate must be a record, got %T", v)
	}
	num, ok := r.Get(FieldNumerator)
	if !ok {
		return 0, merry.Here(klv.ErrInvalidValue).Append("frame rate has no numerator")
	}
	n, ok := num.(klv.Uint)
	if !ok {
		return 0, merry.Here(klv.ErrInvalidValue).Appendf("frame rate numerator must be an unsigned integer, got %T", num)
	}
	d := klv.Uint{Value: 1}
	if den, ok := r.Get(FieldDenominator); ok {
		if d, ok = den.(klv.Uint); !ok {
			return 0, merry.Here(klv.ErrInvalidValue).Appendf("frame rate denominator must be an unsigned integer, got %T", den)
		}
	}
	if d.Value == 0 {
		return 0, merry.Here(klv.ErrInvalidValue).Append("frame rate denominator is zero")
	}
	return float64(n.Value) / float64(d.Value), nil
}

// Time converts a timestamp tag, such as Precision Time Stamp or Event Start
// Time, from microseconds since the Unix epoch.
func Time(v klv.Value) (time.Time, error) {
	u, ok := v.(klv.Uint)
	if !ok {
		return time.Time{}, merry.Here(klv.ErrInvalidValue).Appendf("timestamp must be an unsigned integer, got %T", v)
	}
	us := int64(u.Value)
	return time.Unix(us/1e6, us%1e6*1e3).UTC(), nil
}

// TimeValue is the inverse of Time, for the 8 byte timestamp tags.
func TimeValue(t time.Time) klv.Uint {
	return klv.Uint{Value: uint64(t.UnixNano() / 1e3), Width: 8}
}
