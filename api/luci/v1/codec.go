// Package luciv1 holds the request and response messages of the luci.v1 API.
package luciv1

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CodecName is the connect codec name. Clients send application/json.
const CodecName = "json"

// Codec encodes luci.v1 messages as JSON for connect handlers and clients.
type Codec struct{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// MarshalStable is used by connect for GET requests with cacheable bodies.
func (c Codec) MarshalStable(msg any) ([]byte, error) {
	return c.Marshal(msg)
}

func (Codec) IsBinary() bool { return false }

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
