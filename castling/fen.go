package castling

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRights represents an invalid castling rights field error.
	ErrInvalidRights = errors.New("invalid castling rights")
)

// ParseRights decodes the castling rights field of a FEN record. The
// field is "-" for no rights, otherwise one symbol per remaining right;
// repeated symbols collapse. Any unknown symbol fails the whole parse.
func ParseRights(field string) (Rights, error) {
	if field == "" {
		return None, fmt.Errorf("%w: empty field", ErrInvalidRights)
	}
	if field == "-" {
		return None, nil
	}
	var cr Rights
	for i := 0; i < len(field); i++ {
		r, err := NewRightFromSymbol(field[i])
		if err != nil {
			return None, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidRights, string(field[i]))
		}
		cr.Insert(r)
	}
	return cr, nil
}

// MustParseRights is ParseRights for known-good input, panicking on
// error.
func MustParseRights(field string) Rights {
	cr, err := ParseRights(field)
	if err != nil {
		panic(err)
	}
	return cr
}

// String encodes the set as a FEN castling rights field: "-" when
// empty, otherwise the member symbols in K, Q, k, q order.
func (cr Rights) String() string {
	if cr == None {
		return "-"
	}
	builder := strings.Builder{}
	for _, r := range cr.Slice() {
		_ = builder.WriteByte(r.Symbol())
	}
	return builder.String()
}
