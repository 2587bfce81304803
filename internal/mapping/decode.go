package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseError reports a document body that could not be decoded into the
// typed model.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing mapping document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode parses a mapping document into the typed model. Decoding fails
// fast: malformed JSON or a structural mismatch is a ParseError, never a
// partially-typed result. A document without variable_info decodes to an
// empty variable set.
func Decode(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, &ParseError{Err: err}
	}
	if ds.Variables == nil {
		ds.Variables = map[string]Variable{}
	}
	return &ds, nil
}

// UnmarshalJSON decodes a value mapping while preserving the document order
// of the terms object, which encoding/json's map type would lose.
func (m *ValueMapping) UnmarshalJSON(data []byte) error {
	m.Terms = nil
	m.HasTerms = false

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("value_mapping: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("value_mapping: expected key, got %v", keyTok)
		}
		if key != "terms" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
			continue
		}
		if err := m.decodeTerms(dec); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// decodeTerms reads the terms object key by key. A null terms value is
// treated the same as an absent one.
func (m *ValueMapping) decodeTerms(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("value_mapping.terms: expected object, got %v", tok)
	}
	m.HasTerms = true
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		local, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("value_mapping.terms: expected key, got %v", keyTok)
		}
		var tm TermMapping
		if err := dec.Decode(&tm); err != nil {
			return err
		}
		m.Terms = append(m.Terms, Term{LocalValue: local, Mapping: tm})
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON emits the terms object in the preserved order.
func (m ValueMapping) MarshalJSON() ([]byte, error) {
	if !m.HasTerms {
		return []byte("{}"), nil
	}
	var b bytes.Buffer
	b.WriteString(`{"terms":{`)
	for i, t := range m.Terms {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(t.LocalValue)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.Mapping)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteString("}}")
	return b.Bytes(), nil
}
