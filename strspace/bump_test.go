package strspace

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestStoreCopyRoundTrip(t *testing.T) {
	s := NewBump()
	desc, err := s.Store([]byte("HELLO"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if int(desc.Length) != 5 {
		t.Fatalf("Length = %d, expected 5", desc.Length)
	}
	got, err := s.Copy(desc)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if !bytes.Equal(got, []byte("HELLO")) {
		t.Fatalf("Copy = %q", got)
	}
}

func TestCopyReturnsIndependentBytes(t *testing.T) {
	s := NewBump()
	desc, err := s.Store([]byte("ABC"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	first, err := s.Copy(desc)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	first[0] = 'X'
	second, err := s.Copy(desc)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if !bytes.Equal(second, []byte("ABC")) {
		t.Fatalf("backing bytes were aliased: %q", second)
	}
}

func TestStoreDoesNotAliasInput(t *testing.T) {
	s := NewBump()
	in := []byte("ABC")
	desc, err := s.Store(in)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	in[0] = 'X'
	got, err := s.Copy(desc)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if !bytes.Equal(got, []byte("ABC")) {
		t.Fatalf("stored bytes alias the caller's slice: %q", got)
	}
}

func TestStoreRejectsOverlongString(t *testing.T) {
	s := NewBump()
	if _, err := s.Store(make([]byte, MaxLen+1)); err == nil {
		t.Fatal("Store accepted a 256-byte string")
	}
	if _, err := s.Store(make([]byte, MaxLen)); err != nil {
		t.Fatalf("Store rejected a 255-byte string: %v", err)
	}
}

func TestEmptyString(t *testing.T) {
	s := NewBump()
	desc, err := s.Store(nil)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if desc.Length != 0 {
		t.Fatalf("Length = %d, expected 0", desc.Length)
	}
	got, err := s.Copy(desc)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Copy of empty string = %q", got)
	}
}

func TestDescriptorWireFormat(t *testing.T) {
	d := Descriptor{Length: 5, Address: 0x1234}
	b := d.Bytes()
	if !bytes.Equal(b, []byte{5, 0x34, 0x12}) {
		t.Fatalf("Bytes = % 02x", b)
	}
	back, err := DescriptorFromBytes(b)
	if err != nil {
		t.Fatalf("DescriptorFromBytes: %v", err)
	}
	if back != d {
		t.Fatalf("round trip = %+v", back)
	}
	if _, err := DescriptorFromBytes([]byte{1, 2}); err == nil {
		t.Fatal("DescriptorFromBytes accepted a short buffer")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewBump()
	d1, err := s.Store([]byte("FIRST"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	d2, err := s.Store([]byte("SECOND"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	path := filepath.Join(t.TempDir(), "strings.toml")
	if err := s.SaveTOML(path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}
	restored, err := LoadBumpTOML(path)
	if err != nil {
		t.Fatalf("LoadBumpTOML: %v", err)
	}

	got, err := restored.Copy(d1)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if !bytes.Equal(got, []byte("FIRST")) {
		t.Fatalf("restored d1 = %q", got)
	}
	got, err = restored.Copy(d2)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if !bytes.Equal(got, []byte("SECOND")) {
		t.Fatalf("restored d2 = %q", got)
	}
}
