package wapi

import (
	"net/url"
	"strings"
)

// apiRequest names the pieces of a WAPI call: an object path relative to the
// base URL (either a collection like "zone_auth" or a full object reference)
// plus query parameters. The first parameter joins with '?', the rest with '&'.
type apiRequest struct {
	path  string
	query url.Values
}

func (r apiRequest) url(base string) string {
	u := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(r.path, "/")
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	return u
}
