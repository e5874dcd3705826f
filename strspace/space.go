// Package strspace defines the string space collaborator: the allocator
// that owns the bytes behind a BASIC string descriptor (1-byte length,
// 2-byte little-endian address). The value engine never inspects the
// address field except to round-trip it through this interface; lifecycle
// of the backing storage belongs entirely to the implementation.
package strspace

import "github.com/dbasic/gwvalue/valueserr"

// MaxLen is the largest string BASIC allows: the length byte is a single
// unsigned byte.
const MaxLen = 255

// Descriptor is the 3-byte in-memory form of a BASIC string value: a
// length byte plus a 2-byte little-endian address into a Space.
type Descriptor struct {
	Length  byte
	Address uint16
}

// Bytes returns the 3-byte wire encoding of the descriptor.
func (d Descriptor) Bytes() []byte {
	return []byte{d.Length, byte(d.Address), byte(d.Address >> 8)}
}

// DescriptorFromBytes decodes a 3-byte descriptor.
func DescriptorFromBytes(buf []byte) (Descriptor, error) {
	if len(buf) < 3 {
		return Descriptor{}, valueserr.New(valueserr.Internal, "short string descriptor")
	}
	return Descriptor{Length: buf[0], Address: uint16(buf[1]) | uint16(buf[2])<<8}, nil
}

// Space is the collaborator the value engine depends on for string
// content. Store allocates a slot, copies bytes in, and returns a fresh
// descriptor; Copy returns an independent byte sequence of a descriptor's
// content. Neither aliases its argument or result.
type Space interface {
	Store(b []byte) (Descriptor, error)
	Copy(d Descriptor) ([]byte, error)
}
