package filestore

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// codec converts between the persisted bytes and the record list.
type codec interface {
	// name identifies the codec in logs and messages.
	name() string
	encode(records []*student.Record) ([]byte, error)
	decode(data []byte) ([]*recordDoc, error)
}

// codecForPath picks a codec from the file extension.
// Anything other than .yaml/.yml is treated as JSON.
func codecForPath(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// jsonCodec writes a two-space indented array. HTML escaping is off so
// non-ASCII course names stay readable in the file.
type jsonCodec struct{}

func (jsonCodec) name() string { return "json" }

func (jsonCodec) encode(records []*student.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (jsonCodec) decode(data []byte) ([]*recordDoc, error) {
	var docs []*recordDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// yamlCodec stores the same structure as a YAML sequence.
type yamlCodec struct{}

func (yamlCodec) name() string { return "yaml" }

func (yamlCodec) encode(records []*student.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) decode(data []byte) ([]*recordDoc, error) {
	var docs []*recordDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
