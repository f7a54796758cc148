// Package klv is a codec for KLV (Key-Length-Value) metadata as defined by
// the MISB motion imagery standards.
//
// Features
//
// Packets: DecodePacket and EncodePacket frame a local set with a 16 byte
// universal key, a BER length and, for standards which define one, a trailing
// checksum element.  A wrong checksum is reported as ErrChecksum alongside the
// decoded packet.  Scanner finds packets in a byte range and keeps going past
// packets which fail to decode.
//
// Local sets: DecodeLocalSet and EncodeLocalSet convert between bytes and
// LocalSet, an ordered list of tag/value elements.  A Registry maps each tag
// of a standard to a Format.  Tags the registry does not know decode to Blob
// and encode back to the same bytes.
//
// Values: Value is a closed set of types: Uint, Int, Float, String, Blob,
// Enum, Record, List and LocalSet.  Floats are carried on the wire as fixed
// width integers through a Mapping, either the linear IntMap or the ST 1201
// IMAP.  Decoding then encoding any value reproduces the bytes it came from.
//
// Standards are defined in the misb* packages, which register themselves when
// imported:
//
//	import _ "github.com/gemalto/klv-go/misb0601"
package klv
