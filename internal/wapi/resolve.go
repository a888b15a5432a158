package wapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ResolveZone finds the authoritative zone on the grid that owns host.
// Candidates are tried from the registered domain outwards, so a host like
// www.app.example.com resolves to example.com when that is the zone the
// grid serves.
func (c *Client) ResolveZone(ctx context.Context, host string) (Zone, error) {
	clean := sanitizeHost(host)
	if clean == "" {
		return Zone{}, errors.New("host is required to resolve a zone")
	}
	for _, candidate := range zoneCandidates(clean) {
		zones, err := c.QueryZones(ctx, candidate)
		if err != nil {
			return Zone{}, err
		}
		if len(zones) == 1 {
			return zones[0], nil
		}
	}
	return Zone{}, fmt.Errorf("no authoritative zone on the grid owns %s", clean)
}

func sanitizeHost(host string) string {
	value := strings.TrimSpace(strings.ToLower(host))
	value = strings.Trim(value, ".")
	value = strings.TrimPrefix(value, "www.")
	return value
}

// zoneCandidates lists the parent domains of host worth querying, most
// specific registered domain first, deduplicated.
func zoneCandidates(host string) []string {
	seen := make(map[string]struct{})
	var candidates []string
	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			return
		}
		if _, exists := seen[candidate]; exists {
			return
		}
		seen[candidate] = struct{}{}
		candidates = append(candidates, candidate)
	}

	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		add(etld)
	}

	labels := strings.Split(host, ".")
	for i := 0; i <= len(labels)-2; i++ {
		suffix := strings.Join(labels[i:], ".")
		add(suffix)
	}

	return candidates
}
