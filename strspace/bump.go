package strspace

import "github.com/dbasic/gwvalue/valueserr"

// Bump is a reference Space implementation: a simple bump (append-only)
// allocator with no compaction, sufficient for tests and for callers with
// no garbage-collection requirement of their own. Addresses are assigned
// as offsets into a single growing byte slice.
type Bump struct {
	data []byte
}

// NewBump returns an empty Bump string space.
func NewBump() *Bump { return &Bump{} }

// Store copies b into the space and returns a descriptor referencing it.
func (s *Bump) Store(b []byte) (Descriptor, error) {
	if len(b) > MaxLen {
		return Descriptor{}, valueserr.New(valueserr.StringTooLong, "")
	}
	addr := len(s.data)
	if addr > 0xffff {
		return Descriptor{}, valueserr.New(valueserr.Internal, "string space exhausted")
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	s.data = append(s.data, cp...)
	return Descriptor{Length: byte(len(b)), Address: uint16(addr)}, nil
}

// Copy returns a fresh copy of the bytes referenced by d.
func (s *Bump) Copy(d Descriptor) ([]byte, error) {
	end := int(d.Address) + int(d.Length)
	if end > len(s.data) {
		return nil, valueserr.New(valueserr.Internal, "string descriptor out of range")
	}
	out := make([]byte, d.Length)
	copy(out, s.data[d.Address:end])
	return out, nil
}

// Len returns the number of bytes currently allocated, for diagnostics.
func (s *Bump) Len() int { return len(s.data) }

// Reset discards all allocations. Any descriptors issued before Reset
// become invalid; this mirrors a BASIC NEW/CLEAR wiping the string space.
func (s *Bump) Reset() { s.data = s.data[:0] }
