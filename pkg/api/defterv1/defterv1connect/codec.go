// Package defterv1connect binds the defter.v1 services to Connect handlers
// and clients.
//
// Messages are plain Go structs, so every handler and client is built with
// the JSON Codec. Clients must use the Connect protocol (the default); the
// gRPC protocols are not supported by this codec.
package defterv1connect

import (
	"encoding/json"
	"net/http"

	"connectrpc.com/connect"
)

// Codec marshals messages as JSON. It replaces Connect's built-in "json"
// codec, which only accepts protobuf messages.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) connect.HandlerOption {
	return connect.WithHandlerOptions(append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)...)
}

func clientOptions(opts []connect.ClientOption) connect.ClientOption {
	return connect.WithClientOptions(append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)...)
}

// routes dispatches a service's procedures by URL path.
type routes map[string]http.Handler

func (r routes) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, ok := r[req.URL.Path]; ok {
		h.ServeHTTP(w, req)
		return
	}
	http.NotFound(w, req)
}
