package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/dmitrijs2005/greencareers/internal/common"
	pb "github.com/dmitrijs2005/greencareers/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

/*************
 * Fake server
 *************/

type fakeServer struct {
	pb.UnimplementedCareerServiceServer

	// inputs captured
	lastMD      metadata.MD
	lastProfile *pb.SubmitProfileRequest
	lastChat    *pb.ChatRequest

	// outputs preset
	err error
	// rejects every call that carries a bearer token
	rejectBearer bool
}

func (f *fakeServer) capture(ctx context.Context) error {
	f.lastMD, _ = metadata.FromIncomingContext(ctx)
	if f.rejectBearer && len(f.lastMD.Get(common.AuthorizationHeaderName)) > 0 {
		return status.Error(codes.Unauthenticated, "unauthorized")
	}
	return f.err
}

func (f *fakeServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.PingResponse{Status: "OK"}, nil
}

func (f *fakeServer) Signup(ctx context.Context, in *pb.SignupRequest) (*pb.SignupResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.SignupResponse{UserId: "id-" + in.GetEmail()}, nil
}

func (f *fakeServer) Login(ctx context.Context, _ *pb.LoginRequest) (*pb.LoginResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.LoginResponse{AccessToken: "tok-1", TokenType: "bearer"}, nil
}

func (f *fakeServer) Me(ctx context.Context, _ *pb.MeRequest) (*pb.UserResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.UserResponse{UserId: "u1", Email: "a@b.com"}, nil
}

func (f *fakeServer) SubmitProfile(ctx context.Context, in *pb.SubmitProfileRequest) (*pb.SubmitProfileResponse, error) {
	f.lastProfile = in
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.SubmitProfileResponse{UserId: "p1"}, nil
}

func (f *fakeServer) GetRisk(ctx context.Context, in *pb.UserRequest) (*pb.RiskResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.RiskResponse{UserId: in.GetUserId(), RiskScore: 75}, nil
}

func (f *fakeServer) GetGreenJobs(ctx context.Context, _ *pb.UserRequest) (*pb.GreenJobsResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.GreenJobsResponse{Jobs: []*pb.GreenJob{{Title: "Solar"}}}, nil
}

func (f *fakeServer) GetReskillingCourses(ctx context.Context, _ *pb.UserRequest) (*pb.ReskillingCoursesResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.ReskillingCoursesResponse{Courses: []*pb.ReskillingCourse{{Title: "edX"}}}, nil
}

func (f *fakeServer) GetSideHustles(ctx context.Context, _ *pb.UserRequest) (*pb.SideHustlesResponse, error) {
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.SideHustlesResponse{Hustles: []*pb.SideHustle{{Title: "Etsy"}}}, nil
}

func (f *fakeServer) Chat(ctx context.Context, in *pb.ChatRequest) (*pb.ChatResponse, error) {
	f.lastChat = in
	if err := f.capture(ctx); err != nil {
		return nil, err
	}
	return &pb.ChatResponse{Response: "echo: " + in.GetMessage()}, nil
}

func newTestClient(t *testing.T, f *fakeServer, apiKey string) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterCareerServiceServer(srv, f)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", apiKey,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGRPCClient_AttachesAPIKey(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f, "k1")

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, []string{"k1"}, f.lastMD.Get(common.APIKeyHeaderName))
	assert.Empty(t, f.lastMD.Get(common.AuthorizationHeaderName))
}

func TestGRPCClient_LoginSetsBearer(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f, "")

	tok, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, "tok-1", c.AccessToken())

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.GetUserId())
	assert.Equal(t, []string{"Bearer tok-1"}, f.lastMD.Get(common.AuthorizationHeaderName))
	assert.Empty(t, f.lastMD.Get(common.APIKeyHeaderName))
}

func TestGRPCClient_BearerOnlyOnAccountCalls(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f, "k")
	c.SetAccessToken("tok-1")
	ctx := context.Background()

	_, err := c.Risk(ctx, "u9")
	require.NoError(t, err)
	assert.Empty(t, f.lastMD.Get(common.AuthorizationHeaderName))

	_, err = c.Chat(ctx, "u9", "hi")
	require.NoError(t, err)
	assert.Empty(t, f.lastMD.Get(common.AuthorizationHeaderName))

	_, err = c.SubmitProfile(ctx, &pb.SubmitProfileRequest{JobTitle: "Cashier"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer tok-1"}, f.lastMD.Get(common.AuthorizationHeaderName))
}

func TestGRPCClient_RejectedTokenIsDropped(t *testing.T) {
	f := &fakeServer{rejectBearer: true}
	c := newTestClient(t, f, "k")
	c.SetAccessToken("expired")
	ctx := context.Background()

	_, err := c.SubmitProfile(ctx, &pb.SubmitProfileRequest{JobTitle: "Cashier"})
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.AccessToken())

	id, err := c.SubmitProfile(ctx, &pb.SubmitProfileRequest{JobTitle: "Cashier"})
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
	assert.Empty(t, f.lastMD.Get(common.AuthorizationHeaderName))
}

func TestGRPCClient_Calls(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f, "k")
	ctx := context.Background()

	id, err := c.Signup(ctx, "a@b.com", "pw", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "id-a@b.com", id)

	pid, err := c.SubmitProfile(ctx, &pb.SubmitProfileRequest{JobTitle: "Cashier"})
	require.NoError(t, err)
	assert.Equal(t, "p1", pid)
	assert.Equal(t, "Cashier", f.lastProfile.GetJobTitle())

	risk, err := c.Risk(ctx, "u9")
	require.NoError(t, err)
	assert.Equal(t, int32(75), risk.GetRiskScore())

	jobs, err := c.GreenJobs(ctx, "u9")
	require.NoError(t, err)
	assert.Len(t, jobs.GetJobs(), 1)

	courses, err := c.ReskillingCourses(ctx, "u9")
	require.NoError(t, err)
	assert.Len(t, courses.GetCourses(), 1)

	hustles, err := c.SideHustles(ctx, "u9")
	require.NoError(t, err)
	assert.Len(t, hustles.GetHustles(), 1)

	reply, err := c.Chat(ctx, "u9", "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", reply)
	assert.Equal(t, "u9", f.lastChat.GetUserId())
}

func TestGRPCClient_MapError(t *testing.T) {
	c := &GRPCClient{}

	cases := []struct {
		in   error
		want error
	}{
		{status.Error(codes.Unauthenticated, "unauthorized"), ErrUnauthorized},
		{status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{status.Error(codes.NotFound, "user not found"), ErrNotFound},
		{status.Error(codes.AlreadyExists, "dup"), ErrConflict},
		{ErrSessionExpired, ErrSessionExpired},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, c.mapError(tc.in), tc.want)
	}

	assert.Nil(t, c.mapError(nil))
	assert.ErrorContains(t, c.mapError(status.Error(codes.InvalidArgument, "jobTitle cannot be empty")), "jobTitle cannot be empty")
	assert.ErrorContains(t, c.mapError(errors.New("x")), "rpc error")
}

func TestGRPCClient_ServerErrorMapped(t *testing.T) {
	f := &fakeServer{err: status.Error(codes.NotFound, "user not found")}
	c := newTestClient(t, f, "k")

	_, err := c.Risk(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
