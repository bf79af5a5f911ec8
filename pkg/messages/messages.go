// Package messages models the wire schema of the Anthropic Messages API:
// request and response bodies, content blocks, streaming chunks and the
// enumerated value types they carry. The package owns no transport; it
// encodes, decodes and pretty-prints values exactly as they appear on the
// wire, and the stream reader consumes any io.Reader that yields the API's
// server-sent event format.
package messages

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
)

// json 用於 package messages 內部的 JSON 處理，統一使用 json-iterator
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// prettyJSON renders v as indented JSON for String() implementations.
// Field order follows the struct declaration, indent is two spaces.
func prettyJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(string(pretty.Pretty(raw)), "\n")
}
