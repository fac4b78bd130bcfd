// Package reference encodes the composite "server:user" identifier stored on
// user records and filters collections by its decoded parts.
package reference

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const separator = ":"

// ErrMalformed is returned when a stored reference cannot be decoded into a
// server/user pair.
var ErrMalformed = errors.New("malformed reference")

// Encode returns base64("{serverID}:{userID}").
func Encode(serverID, userID string) string {
	return base64.StdEncoding.EncodeToString([]byte(serverID + separator + userID))
}

// Decode reverses Encode. The decoded text must hold exactly one separator
// with non-empty parts on both sides.
func Decode(ref string) (serverID, userID string, err error) {
	raw, err := base64.StdEncoding.DecodeString(ref)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q: %v", ErrMalformed, ref, err)
	}
	parts := strings.Split(string(raw), separator)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q: expected one %q separator", ErrMalformed, ref, separator)
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q: empty component", ErrMalformed, ref)
	}
	return parts[0], parts[1], nil
}

// ParseUserID decodes ref and parses its user part as a base-10 integer.
func ParseUserID(ref string) (int64, error) {
	_, userID, err := Decode(ref)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: user id %q is not numeric", ErrMalformed, userID)
	}
	return id, nil
}

// Filter selects references by decoded server and/or user id. Empty fields
// match anything.
type Filter struct {
	ServerID string
	UserID   string
}

// IsZero reports whether the filter has no constraints.
func (f Filter) IsZero() bool { return f.ServerID == "" && f.UserID == "" }

// Match reports whether ref satisfies the filter. A zero filter matches
// without decoding.
func (f Filter) Match(ref string) (bool, error) {
	if f.IsZero() {
		return true, nil
	}
	serverID, userID, err := Decode(ref)
	if err != nil {
		return false, err
	}
	if f.ServerID != "" && f.ServerID != serverID {
		return false, nil
	}
	if f.UserID != "" && f.UserID != userID {
		return false, nil
	}
	return true, nil
}

// Apply returns the items whose reference matches the filter. Any item with a
// malformed reference fails the whole call.
func Apply[T any](f Filter, items []T, refOf func(T) string) ([]T, error) {
	if f.IsZero() {
		return items, nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok, err := f.Match(refOf(item))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}
