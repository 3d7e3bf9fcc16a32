// Package snapshot freezes a schema.Model at a schema version so that later
// runs can generate against exactly that shape instead of the live source.
// Snapshots back migration tooling: code generated for version N must keep
// matching version N even after the source schema moves on.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quillgen/quill/schema"
)

// ErrInvalidSnapshot indicates a snapshot that failed validation.
var ErrInvalidSnapshot = errors.New("quill: invalid snapshot")

// A Snapshot is a frozen model plus the metadata to tell snapshots apart.
type Snapshot struct {
	// ID uniquely identifies this snapshot, independent of version
	// numbering.
	ID string `msgpack:"id"`
	// Version is the schema version the model was frozen at. Versions
	// start at 1.
	Version int `msgpack:"version"`
	// CreatedAt records when the snapshot was taken, in UTC.
	CreatedAt time.Time `msgpack:"created_at"`
	// Model is the frozen model.
	Model *schema.Model `msgpack:"model"`
}

// New freezes model at the given schema version.
func New(model *schema.Model, version int) *Snapshot {
	return &Snapshot{
		ID:        uuid.NewString(),
		Version:   version,
		CreatedAt: time.Now().UTC(),
		Model:     model,
	}
}

// Validate checks snapshot integrity after decoding.
func (s *Snapshot) Validate() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidSnapshot)
	case s.Version <= 0:
		return fmt.Errorf("%w: version %d", ErrInvalidSnapshot, s.Version)
	case s.Model == nil:
		return fmt.Errorf("%w: missing model", ErrInvalidSnapshot)
	}
	return nil
}

// Encode serializes the snapshot.
func Encode(s *Snapshot) ([]byte, error) {
	return msgpack.Marshal(s)
}

// Decode deserializes and validates a snapshot.
func Decode(data []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if err := msgpack.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Store writes the snapshot to path.
func Store(s *Snapshot, path string) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads and validates the snapshot at path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quill: read snapshot: %w", err)
	}
	return Decode(data)
}
