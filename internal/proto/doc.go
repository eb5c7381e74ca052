// Package proto holds the generated CareerService messages and gRPC stubs.
package proto

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=github.com/dmitrijs2005/greencareers/internal/proto --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/greencareers/internal/proto greencareers/v1/career.proto
