package kv

import (
	"context"
	"encoding/json"
)

// SchemaVersion is the current version of the persisted envelope format.
// Values written with a different version are treated as absent on read so
// that entity shape changes never surface as parse errors.
const SchemaVersion = 1

// Store is the narrow persistence adapter the state stores write through.
// Values are JSON-serialized. Reads are best-effort: a missing key, a corrupt
// value, or a schema version mismatch all report ok=false and the caller
// falls back to its defaults.
type Store interface {
	// Get reads the value stored under key into out.
	// ok is false when the key is absent or its value cannot be decoded.
	Get(ctx context.Context, key string, out any) (ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error
	// Remove deletes the value stored under key. Removing a missing key is
	// not an error.
	Remove(ctx context.Context, key string) error
}

// envelope wraps every persisted value with a schema version
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// encode wraps value in a versioned envelope and marshals it
func encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		SchemaVersion: SchemaVersion,
		Data:          data,
	})
}

// decode unmarshals a versioned envelope into out.
// Returns false for corrupt payloads or version mismatches.
func decode(raw []byte, out any) bool {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	if env.SchemaVersion != SchemaVersion || env.Data == nil {
		return false
	}
	return json.Unmarshal(env.Data, out) == nil
}
