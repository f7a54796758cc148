package klv

import (
	"fmt"
)

// Tag identifies an element of a local set.  Tags are encoded as BER-OID,
// so tags below 128 take a single byte.
type Tag uint64

// String returns the tag number in hex, e.g. "0x02".  ParseTag accepts the
// same form.
func (t Tag) String() string {
	return fmt.Sprintf("%#02x", uint64(t))
}

// Len is the number of bytes the tag takes on the wire.
func (t Tag) Len() int {
	return BEROIDLen(uint64(t))
}
