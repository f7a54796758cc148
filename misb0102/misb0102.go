// Package misb0102 defines the MISB ST 0102 security metadata local set.  It
// is carried standalone under its own key, and nested in ST 0601 packets as
// the Security Local Set.
package misb0102

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/klv-go"
	"golang.org/x/text/encoding/unicode"
)

var Key = klv.UniversalKey{
	0x06, 0x0E, 0x2B, 0x34, 0x02, 0x03, 0x01, 0x01,
	0x0E, 0x01, 0x03, 0x03, 0x02, 0x00, 0x00, 0x00,
}

const (
	TagSecurityClassification                    klv.Tag = 1
	TagClassifyingCountryCodingMethod            klv.Tag = 2
	TagClassifyingCountry                        klv.Tag = 3
	TagSCISHIInformation                         klv.Tag = 4
	TagCaveats                                   klv.Tag = 5
	TagReleasingInstructions                     klv.Tag = 6
	TagClassifiedBy                              klv.Tag = 7
	TagDerivedFrom                               klv.Tag = 8
	TagClassificationReason                      klv.Tag = 9
	TagDeclassificationDate                      klv.Tag = 10
	TagClassificationAndMarkingSystem            klv.Tag = 11
	TagObjectCountryCodingMethod                 klv.Tag = 12
	TagObjectCountryCodes                        klv.Tag = 13
	TagClassificationComments                    klv.Tag = 14
	TagVersion                                   klv.Tag = 22
	TagClassifyingCountryCodingMethodVersionDate klv.Tag = 23
	TagObjectCountryCodingMethodVersionDate      klv.Tag = 24
)

var Classification = &klv.EnumSet{
	SetName: "Security Classification",
	Values: map[uint64]string{
		1: "UNCLASSIFIED",
		2: "RESTRICTED",
		3: "CONFIDENTIAL",
		4: "SECRET",
		5: "TOP SECRET",
	},
}

// CountryCodingMethod is shared by the classifying and object country
// tags, and by the ST 0601 Country Codes pack.
var CountryCodingMethod = &klv.EnumSet{
	SetName: "Country Coding Method",
	Values: map[uint64]string{
		1:  "ISO-3166 Two Letter",
		2:  "ISO-3166 Three Letter",
		3:  "FIPS 10-4 Two Letter",
		4:  "FIPS 10-4 Four Letter",
		5:  "ISO-3166 Numeric",
		6:  "1059 Two Letter",
		7:  "1059 Three Letter",
		8:  "Omitted Value",
		9:  "Omitted Value",
		10: "FIPS 10-4 Mixed",
		11: "ISO 3166 Mixed",
		12: "STANAG 1059 Mixed",
		13: "GENC Two Letter",
		14: "GENC Three Letter",
		15: "GENC Numeric",
		16: "GENC Mixed",
	},
}

var Registry = klv.MustRegistry("ST 0102",
	klv.TagDef{Tag: TagSecurityClassification, Name: "Security Classification", Format: klv.EnumFormat(Classification, klv.UintFormat(1))},
	klv.TagDef{Tag: TagClassifyingCountryCodingMethod, Name: "Classifying Country and Releasing Instructions Country Coding Method", Format: klv.EnumFormat(CountryCodingMethod, klv.UintFormat(1))},
	klv.TagDef{Tag: TagClassifyingCountry, Name: "Classifying Country", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagSCISHIInformation, Name: "Security-SCI/SHI Information", Format: klv.StringFormat(), Multiple: true},
	klv.TagDef{Tag: TagCaveats, Name: "Caveats", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagReleasingInstructions, Name: "Releasing Instructions", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagClassifiedBy, Name: "Classified By", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagDerivedFrom, Name: "Derived From", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagClassificationReason, Name: "Classification Reason", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagDeclassificationDate, Name: "Declassification Date", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagClassificationAndMarkingSystem, Name: "Classification and Marking System", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagObjectCountryCodingMethod, Name: "Object Country Coding Method", Format: klv.EnumFormat(CountryCodingMethod, klv.UintFormat(1))},
	klv.TagDef{Tag: TagObjectCountryCodes, Name: "Object Country Codes", Format: UTF16Format()},
	klv.TagDef{Tag: TagClassificationComments, Name: "Classification Comments", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagVersion, Name: "Version", Format: klv.UintFormat(2)},
	klv.TagDef{Tag: TagClassifyingCountryCodingMethodVersionDate, Name: "Classifying Country and Releasing Instructions Country Coding Method Version Date", Format: klv.StringFormat()},
	klv.TagDef{Tag: TagObjectCountryCodingMethodVersionDate, Name: "Object Country Coding Method Version Date", Format: klv.StringFormat()},
)

// Standard is the standalone ST 0102 local set.  It has no checksum.
var Standard = &klv.Standard{
	Name:     "ST 0102",
	Key:      Key,
	Registry: Registry,
}

func init() {
	klv.RegisterStandard(Standard)
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// UTF16Format decodes big-endian UTF-16 text, as used by the Object Country
// Codes tag, into a klv.String.
func UTF16Format() klv.Format {
	enc := func(v klv.Value) ([]byte, error) {
		s, ok := v.(klv.String)
		if !ok {
			return nil, merry.Here(klv.ErrInvalidValue).Appendf("UTF-16 format cannot encode %T", v)
		}
		return utf16be.NewEncoder().Bytes([]byte(s))
	}
	return klv.Format{
		Name:       "UTF-16 string",
		ZeroLength: true,
		Decode: func(c *klv.Cursor, n int) (klv.Value, error) {
			if n%2 != 0 {
				return nil, merry.Here(klv.ErrInvalidLength).Appendf("UTF-16 text has odd length %d", n)
			}
			b, err := c.Read(n)
			if err != nil {
				return nil, err
			}
			s, err := utf16be.NewDecoder().Bytes(b)
			if err != nil {
				return nil, merry.Here(klv.ErrInvalidValue).WithCause(err)
			}
			return klv.String(s), nil
		},
		Len: func(v klv.Value) (int, error) {
			b, err := enc(v)
			return len(b), err
		},
		Encode: func(c *klv.Cursor, v klv.Value) error {
			b, err := enc(v)
			if err != nil {
				return err
			}
			return c.Write(b)
		},
	}
}
