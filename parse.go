package vastcheck

import (
	"net/url"
	"regexp"
)

// Params maps parameter names to their raw (or decoded) values.
type Params map[string]string

// paramRegexp matches one name=value pair. A value runs to the next '&' or
// the end of the string; anything that is not a well-formed pair is skipped.
var paramRegexp = regexp.MustCompile(`([a-zA-Z0-9_]+)=([^&]*)`)

// ParseRequest scans a raw VAST request string left to right and collects
// the parameters it contains. Later occurrences of a name overwrite earlier
// ones. When decode is true, values are percent-decoded; a value that fails
// to decode is kept verbatim. PathUnescape rather than QueryUnescape so '+'
// is never translated to a space.
func ParseRequest(request string, decode bool) Params {
	present := Params{}
	for _, m := range paramRegexp.FindAllStringSubmatch(request, -1) {
		value := m[2]
		if decode {
			if decoded, err := url.PathUnescape(value); err == nil {
				value = decoded
			}
		}
		present[m[1]] = value
	}
	return present
}
