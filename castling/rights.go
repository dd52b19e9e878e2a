package castling

import (
	"math/bits"

	"github.com/fianchetto/castle/board"
)

// Rights is a set of castling rights packed into four flag bits.
// The zero value is the empty set, and values compare equal exactly
// when they hold the same members.
type Rights uint8

const (
	None Rights = 0
	All  Rights = 0b1111
)

// New builds a set from the given rights. Duplicates collapse.
func New(rights ...Right) Rights {
	var cr Rights
	for _, r := range rights {
		cr |= r.bit()
	}
	return cr
}

func (cr Rights) Contains(r Right) bool {
	return cr&r.bit() != 0
}

// ContainsColor reports whether any right of the given color remains.
func (cr Rights) ContainsColor(c board.Color) bool {
	if c == board.White {
		return cr&(WhiteKingside.bit()|WhiteQueenside.bit()) != 0
	}
	return cr&(BlackKingside.bit()|BlackQueenside.bit()) != 0
}

func (cr Rights) Union(other Rights) Rights {
	return cr | other
}

func (cr Rights) Intersect(other Rights) Rights {
	return cr & other
}

func (cr Rights) Xor(other Rights) Rights {
	return cr ^ other
}

func (cr *Rights) UnionInPlace(other Rights) {
	*cr |= other
}

func (cr *Rights) IntersectInPlace(other Rights) {
	*cr &= other
}

func (cr *Rights) XorInPlace(other Rights) {
	*cr ^= other
}

func (cr *Rights) Insert(r Right) {
	*cr |= r.bit()
}

// Remove clears r from the set and reports whether it was a member.
// The right is absent afterwards either way.
func (cr *Rights) Remove(r Right) (Right, bool) {
	if !cr.Contains(r) {
		return 0, false
	}
	*cr &^= r.bit()
	return r, true
}

// RemoveColor clears both rights of the given color, the update a
// position applies when that king moves or castles.
func (cr *Rights) RemoveColor(c board.Color) {
	if c == board.White {
		*cr &^= WhiteKingside.bit() | WhiteQueenside.bit()
	} else {
		*cr &^= BlackKingside.bit() | BlackQueenside.bit()
	}
}

// Slice lists the members in ascending flag order, one slice per call.
func (cr Rights) Slice() []Right {
	rights := make([]Right, 0, cr.Len())
	for r := WhiteKingside; r <= BlackQueenside; r++ {
		if cr.Contains(r) {
			rights = append(rights, r)
		}
	}
	return rights
}

func (cr Rights) Len() int {
	return bits.OnesCount8(uint8(cr))
}

func (cr Rights) IsEmpty() bool {
	return cr == None
}

// Hash returns the set fingerprint: the OR of the member flags, one of
// 16 values, independent of how the set was built. It doubles as a
// dense index for castling rights keyed tables.
func (cr Rights) Hash() uint8 {
	return uint8(cr)
}
