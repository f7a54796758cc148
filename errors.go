package klv

import (
	"errors"
	"fmt"

	"github.com/ansel1/merry"
)

func Is(err error, originals ...error) bool {
	return merry.Is(err, originals...)
}

func Details(err error) string {
	return merry.Details(err)
}

var ErrOutOfRange = errors.New("out of range")
var ErrInvalidLength = errors.New("invalid length")
var ErrTruncatedData = errors.New("truncated data")
var ErrUnknownEnumValue = errors.New("unknown enumeration value")
var ErrDecoderLengthMismatch = errors.New("decoder length mismatch")
var ErrUnrecognizedPacketType = errors.New("unrecognized packet type")
var ErrChecksum = errors.New("checksum mismatch")
var ErrInvalidValue = errors.New("invalid value")
var ErrDuplicateTag = errors.New("duplicate tag")

type errKey int

const (
	errorKeyOffset errKey = iota
	errorKeyTag
	errorKeyStandard
)

func init() {
	merry.RegisterDetail("Offset", errorKeyOffset)
	merry.RegisterDetail("Tag", errorKeyTag)
	merry.RegisterDetail("Standard", errorKeyStandard)
}

// WithOffset records the absolute byte offset at which decoding failed.  An
// offset already recorded by a deeper call is kept.
func WithOffset(err error, offset int) error {
	if err == nil {
		return nil
	}
	if _, ok := ErrorOffset(err); ok {
		return err
	}
	return merry.WithValue(err, errorKeyOffset, offset)
}

// shiftOffset replaces the offset recorded in err.
func shiftOffset(err error, offset int) error {
	return merry.WithValue(err, errorKeyOffset, offset)
}

// ErrorOffset returns the byte offset attached to err, if any.
func ErrorOffset(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	v := merry.Value(err, errorKeyOffset)
	switch t := v.(type) {
	case nil:
		return 0, false
	case int:
		return t, true
	default:
		panic(fmt.Sprintf("err offset attribute's value was wrong type, expected int, got %T", v))
	}
}

// WithTag records the tag of the element being processed.  The innermost
// tag wins.
func WithTag(err error, tag Tag) error {
	if err == nil {
		return nil
	}
	if _, ok := ErrorTag(err); ok {
		return err
	}
	return merry.WithValue(err, errorKeyTag, tag)
}

// ErrorTag returns the tag attached to err, if any.
func ErrorTag(err error) (Tag, bool) {
	if err == nil {
		return 0, false
	}
	v := merry.Value(err, errorKeyTag)
	switch t := v.(type) {
	case nil:
		return 0, false
	case Tag:
		return t, true
	default:
		panic(fmt.Sprintf("err tag attribute's value was wrong type, expected Tag, got %T", v))
	}
}

func withStandard(err error, name string) error {
	if err == nil {
		return nil
	}
	return merry.WithValue(err, errorKeyStandard, name)
}

// IsChecksumError reports whether err only signals a bad or missing checksum.
// The packet returned alongside such an error is fully decoded.
func IsChecksumError(err error) bool {
	return err != nil && merry.Is(err, ErrChecksum)
}
