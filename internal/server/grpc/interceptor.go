package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/logging"
	pb "github.com/dmitrijs2005/greencareers/internal/proto"
	"github.com/dmitrijs2005/greencareers/internal/server/auth"
	"github.com/dmitrijs2005/greencareers/internal/server/metrics"
	"github.com/oklog/ulid/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

type bearerPolicy int

const (
	bearerNone bearerPolicy = iota
	bearerRequired
	// checked only when the caller sends one
	bearerOptional
)

type access struct {
	sharedSecret bool
	bearer       bearerPolicy
}

// Methods absent from the table (Ping, Signup, Login, health) are public.
var methodAccess = map[string]access{
	pb.CareerService_Me_FullMethodName:                   {bearer: bearerRequired},
	pb.CareerService_SubmitProfile_FullMethodName:        {sharedSecret: true, bearer: bearerOptional},
	pb.CareerService_GetRisk_FullMethodName:              {sharedSecret: true},
	pb.CareerService_GetGreenJobs_FullMethodName:         {sharedSecret: true},
	pb.CareerService_GetReskillingCourses_FullMethodName: {sharedSecret: true},
	pb.CareerService_GetSideHustles_FullMethodName:       {sharedSecret: true},
	pb.CareerService_Chat_FullMethodName:                 {sharedSecret: true},
}

type ctxKey string

const loggerKey ctxKey = "logger"

// loggerFrom returns the request-scoped logger, falling back to s.logger.
func (s *GRPCServer) loggerFrom(ctx context.Context) logging.Logger {
	if l, ok := ctx.Value(loggerKey).(logging.Logger); ok {
		return l
	}
	return s.logger
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := ulid.Make().String()
	l := s.logger.With("request_id", requestID, "method", info.FullMethod)
	ctx = context.WithValue(ctx, loggerKey, l)

	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info(ctx, "rpc completed", "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}

func (s *GRPCServer) accessInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	policy, ok := methodAccess[info.FullMethod]
	if !ok {
		return handler(ctx, req)
	}

	md, _ := metadata.FromIncomingContext(ctx)

	if policy.sharedSecret {
		if err := s.guard.CheckSharedSecret(firstValue(md, common.APIKeyHeaderName)); err != nil {
			return nil, s.reject(ctx, metrics.CheckSharedSecret)
		}
	}

	authorization := firstValue(md, common.AuthorizationHeaderName)
	if policy.bearer == bearerRequired || (policy.bearer == bearerOptional && authorization != "") {
		identity, err := s.guard.Authenticate(ctx, authorization)
		if err != nil {
			return nil, s.reject(ctx, metrics.CheckBearer)
		}
		ctx = auth.WithIdentity(ctx, identity)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) reject(ctx context.Context, check string) error {
	if s.metrics != nil {
		s.metrics.AuthRejected(check)
	}
	s.loggerFrom(ctx).Warn(ctx, "access denied", "check", check)
	return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
