// Package client talks to the APIKeeper gRPC endpoint.
//
// GRPCClient owns the connection, attaches the admin session token to every
// call through a unary interceptor and maps gRPC status codes to the sentinel
// errors below so callers can match them with errors.Is:
//
//   - ErrUnavailable: the server could not be reached or timed out.
//   - ErrUnauthorized: missing, invalid or expired admin session.
//   - ErrAlreadyExists: the email is already registered.
//   - ErrInvalidInput: the server rejected the request fields.
package client
