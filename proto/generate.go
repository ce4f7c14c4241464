// Package proto holds the delivery transport contract and its generated
// stubs (delivery.pb.go, delivery_grpc.pb.go).
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative delivery.proto
