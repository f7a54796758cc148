package klv

import (
	"bytes"
)

// Scanner reads consecutive packets from a byte range which may hold
// unrelated bytes between them.  Packets are found by searching for the keys
// of registered standards.
//
//	s := klv.NewScanner(b)
//	for s.Next() {
//		p := s.Packet()
//		if err := s.Err(); err != nil {
//			...
//		}
//	}
//
// Next returns true for every packet found, including packets which failed to
// decode; Err reports the failure of the current packet only.  After a
// packet fails, scanning resumes one byte after its start, so one bad packet
// never hides the ones after it.
type Scanner struct {
	b      []byte
	pos    int
	start  int
	packet Packet
	err    error
}

func NewScanner(b []byte) *Scanner {
	return &Scanner{b: b}
}

// Next advances to the next packet.  It returns false once no further key is
// found.
func (s *Scanner) Next() bool {
	s.packet, s.err = Packet{}, nil
	start := s.find(s.pos)
	if start < 0 {
		if s.pos < len(s.b) {
			log.Debug("skipped trailing bytes", "offset", s.pos, "len", len(s.b)-s.pos)
		}
		s.pos = len(s.b)
		return false
	}
	if start > s.pos {
		log.Debug("skipped bytes before packet", "offset", s.pos, "len", start-s.pos)
	}
	s.start = start

	p, n, err := DecodePacket(s.b[start:])
	if off, ok := ErrorOffset(err); ok {
		err = shiftOffset(err, start+off)
	}
	if err != nil && !IsChecksumError(err) {
		log.Debug("packet decode failed, resynchronizing", "offset", start, "err", err)
		s.err = err
		s.pos = start + 1
		return true
	}
	s.packet, s.err = p, err
	s.pos = start + n
	return true
}

// Packet returns the packet found by the last call to Next.  After a
// checksum error it holds the decoded packet; after other errors it is
// empty.
func (s *Scanner) Packet() Packet {
	return s.packet
}

// Err returns the error of the packet found by the last call to Next.
// Offsets in the error are relative to the start of the scanned range.
func (s *Scanner) Err() error {
	return s.err
}

// Offset returns the offset of the packet found by the last call to Next.
func (s *Scanner) Offset() int {
	return s.start
}

// find returns the offset of the first registered key at or after from, or
// -1.
func (s *Scanner) find(from int) int {
	best := -1
	for _, k := range standardKeys {
		i := bytes.Index(s.b[from:], k[:])
		if i >= 0 && (best < 0 || from+i < best) {
			best = from + i
		}
	}
	return best
}
