package chunk

import (
	"fmt"

	"github.com/jsphweid/pngme/model"
)

// Type is a 4-byte chunk type code. The case of each letter carries one
// property bit:
//
//	byte 0: upper = critical,     lower = ancillary
//	byte 1: upper = public,       lower = private
//	byte 2: upper = reserved ok,  lower = not conformant
//	byte 3: upper = unsafe copy,  lower = safe to copy
//
// A Type can only be built from four ASCII letters, so the zero value is the
// only Type whose bytes are not alphabetic.
type Type struct {
	code [4]byte
}

func TypeFromBytes(b [4]byte) (Type, error) {
	for i, c := range b {
		if !isLetter(c) {
			return Type{}, fmt.Errorf("byte %d is 0x%02x: %w", i, c, model.ErrInvalidTypeCode)
		}
	}
	return Type{code: b}, nil
}

// ParseType builds a Type from exactly four ASCII letters.
func ParseType(s string) (Type, error) {
	if len(s) != 4 {
		return Type{}, fmt.Errorf("%q has %d bytes, want 4: %w", s, len(s), model.ErrInvalidTypeCode)
	}
	var b [4]byte
	copy(b[:], s)
	return TypeFromBytes(b)
}

func (t Type) Bytes() [4]byte {
	return t.code
}

func (t Type) String() string {
	return string(t.code[:])
}

func (t Type) IsCritical() bool {
	return isUpper(t.code[0])
}

func (t Type) IsPublic() bool {
	return isUpper(t.code[1])
}

func (t Type) IsReservedBitValid() bool {
	return isUpper(t.code[2])
}

func (t Type) IsSafeToCopy() bool {
	return isLower(t.code[3])
}

// IsValid only looks at the reserved bit. Unknown critical chunks are still
// valid here; rejecting them is up to the reader.
func (t Type) IsValid() bool {
	return t.IsReservedBitValid()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isLetter(c byte) bool {
	return isUpper(c) || isLower(c)
}
