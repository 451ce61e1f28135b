// JSON-LD script tag serialization.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	scriptOpen  = `<script type="application/ld+json">`
	scriptClose = `</script>`
)

// EncodeJSONLD serializes one JSON-LD object with HTML escaping disabled,
// so URLs keep their slashes and Unicode survives verbatim. The result
// carries the encoder's trailing newline.
func EncodeJSONLD(obj map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		return "", fmt.Errorf("encode json-ld: %w", err)
	}
	return buf.String(), nil
}

// ScriptTags wraps each object in its own script block, one per line
// group, ready to drop into a page head. No objects yields "".
func ScriptTags(objs []map[string]any) (string, error) {
	if len(objs) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, obj := range objs {
		body, err := EncodeJSONLD(obj)
		if err != nil {
			return "", err
		}
		b.WriteString(scriptOpen)
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString(scriptClose)
		b.WriteString("\n")
	}
	return b.String(), nil
}
