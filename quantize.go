package klv

import (
	"math"

	"github.com/ansel1/merry"
)

// Mapping converts between floating point values and the fixed width integers
// which carry them on the wire.  Raw values are bit patterns of width bytes,
// right aligned in a uint64.
type Mapping interface {
	Decode(raw uint64, width int) (Float, error)
	Encode(f Float, width int) (uint64, error)
	// Step is the difference between adjacent representable values.
	Step(width int) float64
}

// IntMap is the linear mapping used by most MISB tags: the domain [Lo, Hi] is
// spread evenly over the integer range of the encoded width.
//
// Unsigned mappings use [0, 2^(8w)-1].  Signed mappings are symmetric,
// [-(2^(8w-1)-1), 2^(8w-1)-1], which leaves the most negative pattern free to
// be declared in Reserved.  Full signed mappings use the whole two's
// complement range.
type IntMap struct {
	Lo, Hi float64
	Signed bool
	Full   bool
	// Reserved bit patterns decode to an unavailable Float.
	Reserved []uint64
}

func (m IntMap) bounds(width int) (float64, float64) {
	bitsN := uint(8 * width)
	switch {
	case !m.Signed:
		return 0, math.Exp2(float64(bitsN)) - 1
	case m.Full:
		return -math.Exp2(float64(bitsN - 1)), math.Exp2(float64(bitsN-1)) - 1
	default:
		return -(math.Exp2(float64(bitsN-1)) - 1), math.Exp2(float64(bitsN-1)) - 1
	}
}

func (m IntMap) Step(width int) float64 {
	imin, imax := m.bounds(width)
	return (m.Hi - m.Lo) / (imax - imin)
}

func (m IntMap) Decode(raw uint64, width int) (Float, error) {
	if err := checkWidth(width); err != nil {
		return Float{}, err
	}
	if isReserved(m.Reserved, raw) {
		return Float{Width: width, Unavailable: true, Raw: raw}, nil
	}
	imin, imax := m.bounds(width)
	var v float64
	if m.Signed {
		v = float64(signExtend(raw, width))
	} else {
		v = float64(raw)
	}
	x := m.Lo + (v-imin)*(m.Hi-m.Lo)/(imax-imin)
	return Float{Value: x, Width: width}, nil
}

func (m IntMap) Encode(f Float, width int) (uint64, error) {
	if err := checkWidth(width); err != nil {
		return 0, err
	}
	if f.Unavailable {
		return reservedRaw(f, width)
	}
	if math.IsNaN(f.Value) {
		return 0, merry.Here(ErrInvalidValue).Append("cannot quantize NaN")
	}
	imin, imax := m.bounds(width)
	x := clamp(f.Value, m.Lo, m.Hi)
	q := math.Round((x-m.Lo)/(m.Hi-m.Lo)*(imax-imin)) + imin
	if m.Signed {
		return uint64(int64(q)) & widthMask(width), nil
	}
	return uint64(q), nil
}

// IMAP is the MISB ST 1201 IMAPB mapping of [Lo, Hi] onto width bytes.  The
// scale is a power of two chosen from the domain size and the width, so most
// round numbers in the domain are represented exactly.
type IMAP struct {
	Lo, Hi   float64
	Reserved []uint64
}

func (m IMAP) params(width int) (sF, sR, zOffset float64) {
	bPow := math.Ceil(math.Log2(m.Hi - m.Lo))
	dPow := float64(8*width - 1)
	sF = math.Exp2(dPow - bPow)
	sR = math.Exp2(bPow - dPow)
	if m.Lo < 0 && m.Hi > 0 {
		zOffset = sF*m.Lo - math.Floor(sF*m.Lo)
	}
	return sF, sR, zOffset
}

func (m IMAP) Step(width int) float64 {
	_, sR, _ := m.params(width)
	return sR
}

func (m IMAP) Decode(raw uint64, width int) (Float, error) {
	if err := checkWidth(width); err != nil {
		return Float{}, err
	}
	if isReserved(m.Reserved, raw) {
		return Float{Width: width, Unavailable: true, Raw: raw}, nil
	}
	_, sR, z := m.params(width)
	x := sR*(float64(raw)-z) + m.Lo
	return Float{Value: x, Width: width}, nil
}

func (m IMAP) Encode(f Float, width int) (uint64, error) {
	if err := checkWidth(width); err != nil {
		return 0, err
	}
	if f.Unavailable {
		return reservedRaw(f, width)
	}
	if math.IsNaN(f.Value) {
		return 0, merry.Here(ErrInvalidValue).Append("cannot quantize NaN")
	}
	sF, _, z := m.params(width)
	x := clamp(f.Value, m.Lo, m.Hi)
	y := math.Floor(sF*(x-m.Lo) + z)
	if top := float64(widthMask(width)); y > top {
		y = top
	}
	return uint64(y), nil
}

func checkWidth(width int) error {
	if width < 1 || width > 8 {
		return merry.Here(ErrInvalidLength).Appendf("quantized value width must be 1-8 bytes, got %d", width)
	}
	return nil
}

func isReserved(reserved []uint64, raw uint64) bool {
	for _, r := range reserved {
		if r == raw {
			return true
		}
	}
	return false
}

func reservedRaw(f Float, width int) (uint64, error) {
	if f.Raw&^widthMask(width) != 0 {
		return 0, merry.Here(ErrInvalidValue).Appendf("reserved pattern %#x does not fit in %d bytes", f.Raw, width)
	}
	return f.Raw, nil
}

func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return math.MaxUint64
	}
	return 1<<(8*uint(width)) - 1
}

func signExtend(raw uint64, width int) int64 {
	shift := 64 - 8*uint(width)
	return int64(raw<<shift) >> shift
}
