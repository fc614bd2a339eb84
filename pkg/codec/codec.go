// Package codec provides the envelope encodings a note store can persist with.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notepad/pkg/core"
)

// JSON encodes the envelope as JSON, the format of the original browser store.
type JSON struct {
	Indent bool
}

func (JSON) Name() string { return "json" }

func (c JSON) Encode(env core.Envelope) ([]byte, error) {
	if c.Indent {
		return json.MarshalIndent(env, "", "  ")
	}
	return json.Marshal(env)
}

func (JSON) Decode(data []byte) (core.Envelope, error) {
	var env core.Envelope
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&env); err != nil {
		return core.Envelope{}, err
	}
	if dec.More() {
		return core.Envelope{}, fmt.Errorf("unexpected data after envelope")
	}
	return env, nil
}

// YAML encodes the envelope as a YAML document, handy for hand-editing.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Encode(env core.Envelope) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(env); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAML) Decode(data []byte) (core.Envelope, error) {
	var env core.Envelope
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&env); err != nil {
		return core.Envelope{}, err
	}
	return env, nil
}

// ByName returns the codec registered under name ("json" or "yaml").
// An empty name selects indented JSON.
func ByName(name string) (core.Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON{Indent: true}, nil
	case "yaml", "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}
