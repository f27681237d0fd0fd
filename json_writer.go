package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object with a fixed field order, which keeps
// the ledger file lines stable and diffable. Its zero value is ready to use,
// and the first marshaling error sticks until MarshalJSON reports it.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// EmbedFrom marshals v and splices the fields of the resulting object into
// the object under construction.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("embedding %T: %w", v, err)
		return w
	}
	if len(raw) > 2 && raw[0] == '{' && raw[len(raw)-1] == '}' {
		w.Write(raw[1 : len(raw)-1])
		w.WriteByte(',')
	}
	return w
}

// Append writes one key and its marshaled value.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	val, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("marshaling %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:%s,", key, val)
	return w
}

// Optional writes the pair only when value is not its type's zero value.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON closes the object and returns it.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	out := make([]byte, 0, len(content)+2)
	out = append(out, '{')
	out = append(out, content...)
	out = append(out, '}')
	return out, nil
}
