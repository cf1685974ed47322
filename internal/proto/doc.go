// Package proto holds the generated apikeeper.v1 messages and gRPC stubs.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/apikeeper --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/apikeeper apikeeper/v1/apikeeper.proto
