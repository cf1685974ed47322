// Package cli implements the apikeeper command-line client: user
// registration, key validation and the admin session commands, all speaking
// gRPC to the server.
package cli
