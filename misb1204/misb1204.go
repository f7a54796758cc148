// Package misb1204 implements the MISB ST 1204 MIIS core identifier, which
// names the sensor and platform which produced a motion imagery stream.
//
// The binary form is a version byte, a usage byte saying which identifiers
// follow, then each present identifier as a 16 byte UUID:
//
//	usage bit  7    reserved
//	usage bits 6-5  sensor ID type
//	usage bits 4-3  platform ID type
//	usage bit  2    window ID present
//	usage bit  1    minor ID present
//	usage bit  0    reserved
//
// A sensor or platform ID is present when its type is not None.
package misb1204

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/klv-go"
	"github.com/google/uuid"
)

const (
	DeviceNone     = 0
	DeviceManaged  = 1
	DeviceVirtual  = 2
	DevicePhysical = 3
)

var DeviceIDType = &klv.EnumSet{
	SetName: "Device ID Type",
	Values: map[uint64]string{
		DeviceNone:     "None",
		DeviceManaged:  "Managed",
		DeviceVirtual:  "Virtual",
		DevicePhysical: "Physical",
	},
}

// Field names of the decoded record.
const (
	FieldVersion        = "Version"
	FieldSensorIDType   = "Sensor ID Type"
	FieldPlatformIDType = "Platform ID Type"
	FieldSensorID       = "Sensor ID"
	FieldPlatformID     = "Platform ID"
	FieldWindowID       = "Window ID"
	FieldMinorID        = "Minor ID"
)

const (
	usageReserved     = 0x81
	usageWindowID     = 0x04
	usageMinorID      = 0x02
	sensorTypeShift   = 5
	platformTypeShift = 3
)

// ID is the MIIS core identifier.  Nil UUIDs are absent.
type ID struct {
	Version        uint8
	SensorIDType   uint8
	PlatformIDType uint8
	SensorID       *uuid.UUID
	PlatformID     *uuid.UUID
	WindowID       *uuid.UUID
	MinorID        *uuid.UUID
}

func (id ID) usage() byte {
	u := id.SensorIDType<<sensorTypeShift | id.PlatformIDType<<platformTypeShift
	if id.WindowID != nil {
		u |= usageWindowID
	}
	if id.MinorID != nil {
		u |= usageMinorID
	}
	return u
}

func (id ID) validate() error {
	if id.SensorIDType > DevicePhysical || id.PlatformIDType > DevicePhysical {
		return merry.Here(klv.ErrInvalidValue).Appendf("device ID type out of range: sensor %d, platform %d", id.SensorIDType, id.PlatformIDType)
	}
	if (id.SensorIDType != DeviceNone) != (id.SensorID != nil) {
		return merry.Here(klv.ErrInvalidValue).Append("sensor ID must be present exactly when its type is not None")
	}
	if (id.PlatformIDType != DeviceNone) != (id.PlatformID != nil) {
		return merry.Here(klv.ErrInvalidValue).Append("platform ID must be present exactly when its type is not None")
	}
	return nil
}

// Len is the encoded length of id.
func (id ID) Len() int {
	n := 2
	for _, u := range []*uuid.UUID{id.SensorID, id.PlatformID, id.WindowID, id.MinorID} {
		if u != nil {
			n += 16
		}
	}
	return n
}

// MarshalBinary returns the ST 1204 binary form of id.
func (id ID) MarshalBinary() ([]byte, error) {
	if err := id.validate(); err != nil {
		return nil, err
	}
	b := make([]byte, 0, id.Len())
	b = append(b, id.Version, id.usage())
	for _, u := range []*uuid.UUID{id.SensorID, id.PlatformID, id.WindowID, id.MinorID} {
		if u != nil {
			b = append(b, u[:]...)
		}
	}
	return b, nil
}

// UnmarshalBinary parses the ST 1204 binary form.  Every byte of b must be
// used.
func (id *ID) UnmarshalBinary(b []byte) error {
	if len(b) < 2 {
		return merry.Here(klv.ErrTruncatedData).Appendf("MIIS ID needs at least 2 bytes, got %d", len(b))
	}
	usage := b[1]
	if usage&usageReserved != 0 {
		return merry.Here(klv.ErrInvalidValue).Appendf("reserved usage bits set: %#02x", usage)
	}
	out := ID{
		Version:        b[0],
		SensorIDType:   (usage >> sensorTypeShift) & 0x3,
		PlatformIDType: (usage >> platformTypeShift) & 0x3,
	}
	rest := b[2:]
	next := func(present bool) (*uuid.UUID, error) {
		if !present {
			return nil, nil
		}
		if len(rest) < 16 {
			return nil, merry.Here(klv.ErrTruncatedData).Appendf("MIIS ID ends %d bytes into a 16 byte UUID", len(rest))
		}
		u, err := uuid.FromBytes(rest[:16])
		if err != nil {
			return nil, merry.Wrap(err)
		}
		rest = rest[16:]
		return &u, nil
	}
	var err error
	if out.SensorID, err = next(out.SensorIDType != DeviceNone); err != nil {
		return err
	}
	if out.PlatformID, err = next(out.PlatformIDType != DeviceNone); err != nil {
		return err
	}
	if out.WindowID, err = next(usage&usageWindowID != 0); err != nil {
		return err
	}
	if out.MinorID, err = next(usage&usageMinorID != 0); err != nil {
		return err
	}
	if len(rest) > 0 {
		return merry.Here(klv.ErrInvalidLength).Appendf("%d bytes after MIIS ID", len(rest))
	}
	*id = out
	return nil
}

// Value converts id to the record Format decodes.
func (id ID) Value() klv.Record {
	r := klv.Record{
		{Name: FieldVersion, Value: klv.Uint{Value: uint64(id.Version), Width: 1}},
		{Name: FieldSensorIDType, Value: klv.Enum{Set: DeviceIDType, Code: uint64(id.SensorIDType)}},
		{Name: FieldPlatformIDType, Value: klv.Enum{Set: DeviceIDType, Code: uint64(id.PlatformIDType)}},
	}
	add := func(name string, u *uuid.UUID) {
		if u != nil {
			r = append(r, klv.Field{Name: name, Value: klv.String(u.String())})
		}
	}
	add(FieldSensorID, id.SensorID)
	add(FieldPlatformID, id.PlatformID)
	add(FieldWindowID, id.WindowID)
	add(FieldMinorID, id.MinorID)
	return r
}

// FromValue converts a record built by Value, or by hand with the same
// field names, back to an ID.
func FromValue(v klv.Value) (ID, error) {
	r, ok := v.(klv.Record)
	if !ok {
		return ID{}, merry.Here(klv.ErrInvalidValue).Appendf("MIIS ID must be a record, got %T", v)
	}
	var id ID
	for _, f := range r {
		switch f.Name {
		case FieldVersion:
			u, ok := f.Value.(klv.Uint)
			if !ok || u.Value > 0xFF {
				return ID{}, merry.Here(klv.ErrInvalidValue).Appendf("invalid MIIS ID version %v", f.Value)
			}
			id.Version = uint8(u.Value)
		case FieldSensorIDType, FieldPlatformIDType:
			code, err := deviceType(f.Value)
			if err != nil {
				return ID{}, err
			}
			if f.Name == FieldSensorIDType {
				id.SensorIDType = code
			} else {
				id.PlatformIDType = code
			}
		case FieldSensorID, FieldPlatformID, FieldWindowID, FieldMinorID:
			s, ok := f.Value.(klv.String)
			if !ok {
				return ID{}, merry.Here(klv.ErrInvalidValue).Appendf("%s must be a string, got %T", f.Name, f.Value)
			}
			u, err := uuid.Parse(string(s))
			if err != nil {
				return ID{}, merry.Here(klv.ErrInvalidValue).Appendf("%s: %v", f.Name, err)
			}
			switch f.Name {
			case FieldSensorID:
				id.SensorID = &u
			case FieldPlatformID:
				id.PlatformID = &u
			case FieldWindowID:
				id.WindowID = &u
			default:
				id.MinorID = &u
			}
		default:
			return ID{}, merry.Here(klv.ErrInvalidValue).Appendf("unknown MIIS ID field %q", f.Name)
		}
	}
	return id, id.validate()
}

func deviceType(v klv.Value) (uint8, error) {
	switch t := v.(type) {
	case klv.Enum:
		if t.Set == DeviceIDType {
			return uint8(t.Code), nil
		}
	case klv.Uint:
		if DeviceIDType.Has(t.Value) {
			return uint8(t.Value), nil
		}
	}
	return 0, merry.Here(klv.ErrInvalidValue).Appendf("invalid device ID type %v", v)
}

// Format decodes the MIIS core identifier to the record produced by
// ID.Value.  UUIDs are held as their canonical lower case strings.
func Format() klv.Format {
	return klv.Format{
		Name: "MIIS core identifier",
		Decode: func(c *klv.Cursor, n int) (klv.Value, error) {
			b, err := c.Read(n)
			if err != nil {
				return nil, err
			}
			var id ID
			if err := id.UnmarshalBinary(b); err != nil {
				return nil, err
			}
			return id.Value(), nil
		},
		Len: func(v klv.Value) (int, error) {
			id, err := FromValue(v)
			if err != nil {
				return 0, err
			}
			return id.Len(), nil
		},
		Encode: func(c *klv.Cursor, v klv.Value) error {
			id, err := FromValue(v)
			if err != nil {
				return err
			}
			b, err := id.MarshalBinary()
			if err != nil {
				return err
			}
			return c.Write(b)
		},
	}
}
