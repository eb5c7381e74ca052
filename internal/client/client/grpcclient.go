// Package client wraps the CareerService gRPC API for the CLI. It attaches
// the shared secret to every call and the bearer token to the calls that
// act on the caller's own account.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/greencareers/internal/common"
	pb "github.com/dmitrijs2005/greencareers/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// bearerMethods are the calls that carry the stored token.
var bearerMethods = map[string]struct{}{
	pb.CareerService_Me_FullMethodName:            {},
	pb.CareerService_SubmitProfile_FullMethodName: {},
}

type GRPCClient struct {
	endpointURL string
	apiKey      string
	conn        *grpc.ClientConn
	client      pb.CareerServiceClient

	mu          sync.RWMutex
	accessToken string
}

func (s *GRPCClient) authInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.apiKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.APIKeyHeaderName, s.apiKey)
	}

	token := ""
	if _, ok := bearerMethods[method]; ok {
		token = s.AccessToken()
	}
	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, "Bearer "+token)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if token != "" && status.Code(err) == codes.Unauthenticated {
		s.SetAccessToken("")
		return ErrSessionExpired
	}
	return err
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL, apiKey string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, apiKey: apiKey}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.authInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewCareerServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = strings.TrimSpace(token)
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Signup returns the new user's id.
func (s *GRPCClient) Signup(ctx context.Context, email, password, fullName string) (string, error) {
	resp, err := s.client.Signup(ctx, &pb.SignupRequest{Email: email, Password: password, FullName: fullName})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

// Login stores the issued token for later calls and also returns it.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	s.SetAccessToken(resp.GetAccessToken())
	return resp.GetAccessToken(), nil
}

func (s *GRPCClient) Me(ctx context.Context) (*pb.UserResponse, error) {
	resp, err := s.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SubmitProfile(ctx context.Context, req *pb.SubmitProfileRequest) (string, error) {
	resp, err := s.client.SubmitProfile(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) Risk(ctx context.Context, userID string) (*pb.RiskResponse, error) {
	resp, err := s.client.GetRisk(ctx, &pb.UserRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GreenJobs(ctx context.Context, userID string) (*pb.GreenJobsResponse, error) {
	resp, err := s.client.GetGreenJobs(ctx, &pb.UserRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ReskillingCourses(ctx context.Context, userID string) (*pb.ReskillingCoursesResponse, error) {
	resp, err := s.client.GetReskillingCourses(ctx, &pb.UserRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SideHustles(ctx context.Context, userID string) (*pb.SideHustlesResponse, error) {
	resp, err := s.client.GetSideHustles(ctx, &pb.UserRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Chat(ctx context.Context, userID, message string) (string, error) {
	resp, err := s.client.Chat(ctx, &pb.ChatRequest{UserId: userID, Message: message})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetResponse(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSessionExpired) {
		return err
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrConflict
	case codes.InvalidArgument:
		return fmt.Errorf("invalid request: %s", st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
