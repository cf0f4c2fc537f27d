// Package utils provides general-purpose helpers shared by the admin console
// and the public site: context keys, JSON response writing, the resty client
// constructor, unverified JWT expiry decoding, video embed URL resolution and
// id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace id is stored.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0190...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the trace id stored by the site's
// trace-id middleware. ok is false when the value is missing or not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
