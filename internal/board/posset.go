package board

import (
	"math/bits"
	"strings"
)

// PosSet is a set of board cells, one bit per cell in row-major order.
// Bit 0 = (0,0) top-left, bit 63 = (7,7) bottom-right.
type PosSet uint64

// EmptySet contains no cells.
const EmptySet PosSet = 0

// SetOf builds a set from the given positions. Out-of-bounds positions are ignored.
func SetOf(ps ...Pos) PosSet {
	var s PosSet
	for _, p := range ps {
		s = s.Add(p)
	}
	return s
}

// Add returns the set with p included.
func (s PosSet) Add(p Pos) PosSet {
	if !p.InBounds() {
		return s
	}
	return s | 1<<uint(p.Index())
}

// Remove returns the set with p excluded.
func (s PosSet) Remove(p Pos) PosSet {
	if !p.InBounds() {
		return s
	}
	return s &^ (1 << uint(p.Index()))
}

// Has reports whether p is in the set.
func (s PosSet) Has(p Pos) bool {
	return p.InBounds() && s&(1<<uint(p.Index())) != 0
}

// Union returns the cells in either set.
func (s PosSet) Union(o PosSet) PosSet {
	return s | o
}

// Len returns the number of cells in the set.
func (s PosSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether the set has no cells.
func (s PosSet) IsEmpty() bool {
	return s == 0
}

// Positions returns the cells in row-major order.
func (s PosSet) Positions() []Pos {
	out := make([]Pos, 0, s.Len())
	for b := uint64(s); b != 0; b &= b - 1 {
		out = append(out, PosFromIndex(bits.TrailingZeros64(b)))
	}
	return out
}

// String returns the algebraic names of the cells, e.g. "{e3 e4}".
func (s PosSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range s.Positions() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
