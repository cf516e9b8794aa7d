// Package share maps member filter state to and from URL query parameters,
// independent of any rendering concern.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sakamichi-tools/penlight/internal/roster"
)

// State is the shareable filter selection.
type State struct {
	Group string `json:"group"`
	Gen   string `json:"gen"`
	Query string `json:"query,omitempty"`
}

// Default is the filter selection used when no parameters are present.
func Default() State {
	return State{Group: "nogi", Gen: "all"}
}

// Values encodes the state as query parameters. The free-text query is
// omitted when empty.
func Values(s State) url.Values {
	v := url.Values{}
	v.Set("g", s.Group)
	v.Set("gen", s.Gen)
	if q := strings.TrimSpace(s.Query); q != "" {
		v.Set("q", q)
	}
	return v
}

// URL renders the state onto a base URL.
func URL(base string, s State) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	u.RawQuery = Values(s).Encode()
	return u.String(), nil
}

// Decode reads filter state from query parameters. Values absent or outside
// the known enumerations fall back to the defaults; the state that comes
// back is always valid.
func Decode(v url.Values) State {
	s := Default()

	if g := v.Get("g"); roster.ValidGroup(g) {
		s.Group = g
	}
	if gen := v.Get("gen"); gen != "" && roster.ValidGen(s.Group, gen) {
		s.Gen = gen
	}
	s.Query = v.Get("q")

	return s
}

// DecodeURL parses a full shared URL back into filter state. A malformed
// URL yields the defaults and an error.
func DecodeURL(raw string) (State, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Default(), fmt.Errorf("parse shared URL: %w", err)
	}
	return Decode(u.Query()), nil
}
