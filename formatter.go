// 格式化器

package response

import (
	"encoding/json"
)

// FormatterFunc serialize data into the response body of one format.
type FormatterFunc func(data interface{}) string

// JSONFormat return the canonical JSON text of data.
// This is the only formatter registered by default.
func JSONFormat(data interface{}) string {
	jsonBytes, _ := json.Marshal(data)
	return string(jsonBytes)
}

// JSONIndentFormat return the indented JSON text of data, used by
// the debug output mode.
func JSONIndentFormat(data interface{}) string {
	jsonBytes, _ := json.MarshalIndent(data, "", "    ")
	return string(jsonBytes)
}

// JSONPFormatter return a formatter that wraps JSON text in the
// specified callback, as in: callback({...});
// An optional json formatter controls the inner serialization,
// e.g. JSONIndentFormat in debug mode.
func JSONPFormatter(callback string, jsonFormatter ...FormatterFunc) FormatterFunc {
	jsonFmt := JSONFormat
	if len(jsonFormatter) > 0 {
		jsonFmt = jsonFormatter[0]
	}
	return func(data interface{}) string {
		jsonBytes := []byte(jsonFmt(data))
		jsonpBytes := make([]byte, 0, len(callback)+len(jsonBytes)+3)
		jsonpBytes = append(jsonpBytes, []byte(callback)...)
		jsonpBytes = append(jsonpBytes, '(')
		jsonpBytes = append(jsonpBytes, jsonBytes...)
		jsonpBytes = append(jsonpBytes, ')', ';')
		return string(jsonpBytes)
	}
}
