package strspace

import (
	"encoding/base64"
	"os"

	"github.com/BurntSushi/toml"
)

// snapshot is the on-disk form of a Bump string space, used by an
// interpreter's debug/SAVE tooling to persist and restore string content
// across sessions. This is not part of the core value-engine contract
// (the backing store's lifecycle belongs entirely to the
// collaborator); it's a natural extension of Bump as a concrete store.
type snapshot struct {
	DataB64 string `toml:"data_base64"`
}

// SaveTOML writes the space's raw byte buffer to path, base64-encoded.
func (s *Bump) SaveTOML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	return enc.Encode(snapshot{DataB64: base64.StdEncoding.EncodeToString(s.data)})
}

// LoadBumpTOML reads a snapshot previously written by (*Bump).SaveTOML.
// Descriptors issued against the original space remain valid against the
// restored one, since addresses are plain offsets into the same buffer.
func LoadBumpTOML(path string) (*Bump, error) {
	var snap snapshot
	if _, err := toml.DecodeFile(path, &snap); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(snap.DataB64)
	if err != nil {
		return nil, err
	}
	return &Bump{data: data}, nil
}
