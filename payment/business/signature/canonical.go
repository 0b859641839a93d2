package signature

import (
	"sort"
	"strings"
)

// nonSignableFields never participate in canonical string construction.
var nonSignableFields = map[string]struct{}{
	"sign":      {},
	"sign_type": {},
}

// BuildCanonical builds the `key=value&...` canonical string: non-signable
// and empty-valued fields are dropped, remaining keys sorted ascending.
func BuildCanonical(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if _, skip := nonSignableFields[k]; skip {
			continue
		}
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
	}
	return sb.String()
}
