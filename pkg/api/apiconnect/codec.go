// Package apiconnect wires the messages of package api to Connect: procedure
// names, handler and client constructors, and the JSON codec they share.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec marshals plain Go structs. It is registered under both names the
// Connect protocol uses for JSON.
type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string { return c.name }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// handlerOptions puts the JSON codecs ahead of caller options.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: "json"}),
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
	}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{
		connect.WithCodec(jsonCodec{name: "json"}),
	}, opts...)
}
