// internal/challonge/params.go
// Outbound request bodies are not JSON: the service wants Rails-style flat
// form fields ("tournament[name]=x&tournament[private]=true"). Builders
// produce an ordered Param list and the transport joins it.
package challonge

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is one wire key/value pair of a form-encoded request body.
type Param struct {
	Key   string
	Value string
}

func tkey(k string) string  { return "tournament[" + k + "]" }
func pkey(k string) string  { return "participant[" + k + "]" }
func pskey(k string) string { return "participant[][" + k + "]" } // bulk add
func mkey(k string) string  { return "match[" + k + "]" }
func akey(k string) string  { return "match_attachment[" + k + "]" }

func fmtBool(b bool) string   { return strconv.FormatBool(b) }
func fmtUint(n uint64) string { return strconv.FormatUint(n, 10) }
func fmtF64(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// encodeForm percent-encodes the values and joins everything with '&',
// preserving the order the builder emitted.
func encodeForm(params []Param) string {
	var b strings.Builder
	sep := ""
	for _, p := range params {
		b.WriteString(sep)
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(p.Value))
		sep = "&"
	}
	return b.String()
}
