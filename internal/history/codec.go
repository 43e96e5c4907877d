package history

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

func encodePayload(payload map[string]any) ([]byte, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// decodePayload decodes nested maps as map[string]any so the result can be
// fed straight back into format.FromMap.
func decodePayload(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetMapDecoder(func(d *msgpack.Decoder) (any, error) {
		return d.DecodeMap()
	})
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}

func encodeNotes(notes []string) ([]byte, error) {
	if len(notes) == 0 {
		return nil, nil
	}
	data, err := msgpack.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("encode additional info: %w", err)
	}
	return data, nil
}

func decodeNotes(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var notes []string
	if err := msgpack.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("decode additional info: %w", err)
	}
	return notes, nil
}
