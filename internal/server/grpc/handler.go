package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/greencareers/internal/common"
	pb "github.com/dmitrijs2005/greencareers/internal/proto"
	"github.com/dmitrijs2005/greencareers/internal/server/auth"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC codes. Anything outside the
// identity taxonomy becomes a bare Internal so causes never leak.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, common.ErrDuplicateEmail.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrInvalidProfile):
		return status.Error(codes.InvalidArgument, common.ErrInvalidProfile.Error())
	case errors.Is(err, common.ErrInvalidSignup):
		return status.Error(codes.InvalidArgument, common.ErrInvalidSignup.Error())
	case errors.Is(err, common.ErrInvalidMessage):
		return status.Error(codes.InvalidArgument, common.ErrInvalidMessage.Error())
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, common.ErrUserNotFound.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) fail(ctx context.Context, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.loggerFrom(ctx).Error(ctx, "request failed", "error", err)
	}
	return st
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.SignupResponse, error) {
	identity, err := s.identities.Signup(ctx, req.GetEmail(), req.GetPassword(), req.GetFullName())
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.SignupResponse{UserId: identity.ID, Message: "User created successfully"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	identity, err := s.identities.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	token, err := s.identities.IssueToken(identity)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.loggerFrom(ctx).Info(ctx, "logged in", "id", identity.ID)
	return &pb.LoginResponse{AccessToken: token, TokenType: common.BearerScheme}, nil
}

func (s *GRPCServer) Me(ctx context.Context, req *pb.MeRequest) (*pb.UserResponse, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, s.fail(ctx, common.ErrorUnauthorized)
	}
	return toUserResponse(identity), nil
}

// SubmitProfile applies to the bearer's own record when a token was sent.
// Without a token only profile-only records may be updated by id; records
// that can log in belong to their owner.
func (s *GRPCServer) SubmitProfile(ctx context.Context, req *pb.SubmitProfileRequest) (*pb.SubmitProfileResponse, error) {
	id := req.GetUserId()
	if caller, ok := auth.IdentityFromContext(ctx); ok {
		if id != "" && id != caller.ID {
			return nil, s.fail(ctx, common.ErrorUnauthorized)
		}
		id = caller.ID
	} else if id != "" {
		target, err := s.identities.GetIdentity(ctx, id)
		if err != nil {
			return nil, s.fail(ctx, err)
		}
		if target.HasCredentials() {
			s.loggerFrom(ctx).Warn(ctx, "profile update without owner token", "id", id)
			return nil, s.fail(ctx, common.ErrorUnauthorized)
		}
	}

	identity, err := s.identities.SubmitProfile(ctx, id, models.Profile{
		JobTitle:   req.GetJobTitle(),
		Experience: req.GetExperience(),
		Interests:  req.GetInterests(),
		ResumeText: req.GetResumeText(),
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.SubmitProfileResponse{UserId: identity.ID, Message: "Profile submitted successfully"}, nil
}

func (s *GRPCServer) GetRisk(ctx context.Context, req *pb.UserRequest) (*pb.RiskResponse, error) {
	r, err := s.advice.Risk(ctx, req.GetUserId())
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.RiskResponse{UserId: r.IdentityID, JobTitle: r.JobTitle, RiskScore: int32(r.Score), Explanation: r.Explanation}, nil
}

func (s *GRPCServer) GetGreenJobs(ctx context.Context, req *pb.UserRequest) (*pb.GreenJobsResponse, error) {
	jobs, err := s.advice.GreenJobs(ctx, req.GetUserId())
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	resp := &pb.GreenJobsResponse{Jobs: make([]*pb.GreenJob, 0, len(jobs))}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, &pb.GreenJob{
			Title:       j.Title,
			GrowthRate:  int32(j.GrowthRate),
			SkillMatch:  j.SkillMatch,
			Description: j.Description,
			Salary:      j.Salary,
		})
	}
	return resp, nil
}

func (s *GRPCServer) GetReskillingCourses(ctx context.Context, req *pb.UserRequest) (*pb.ReskillingCoursesResponse, error) {
	courses, err := s.advice.ReskillingCourses(ctx, req.GetUserId())
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	resp := &pb.ReskillingCoursesResponse{Courses: make([]*pb.ReskillingCourse, 0, len(courses))}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, &pb.ReskillingCourse{
			Title:    c.Title,
			Provider: c.Provider,
			Duration: c.Duration,
			Skills:   c.Skills,
			Link:     c.Link,
		})
	}
	return resp, nil
}

func (s *GRPCServer) GetSideHustles(ctx context.Context, req *pb.UserRequest) (*pb.SideHustlesResponse, error) {
	hustles, err := s.advice.SideHustles(ctx, req.GetUserId())
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	resp := &pb.SideHustlesResponse{Hustles: make([]*pb.SideHustle, 0, len(hustles))}
	for _, h := range hustles {
		resp.Hustles = append(resp.Hustles, &pb.SideHustle{
			Title:       h.Title,
			Description: h.Description,
			Skills:      h.Skills,
			Earnings:    h.Earnings,
		})
	}
	return resp, nil
}

func (s *GRPCServer) Chat(ctx context.Context, req *pb.ChatRequest) (*pb.ChatResponse, error) {
	reply, err := s.advice.Chat(ctx, req.GetUserId(), req.GetMessage())
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ChatResponse{Response: reply}, nil
}

// toUserResponse never carries the password hash.
func toUserResponse(i *models.Identity) *pb.UserResponse {
	return &pb.UserResponse{
		UserId:     i.ID,
		Email:      i.Email,
		FullName:   i.DisplayName,
		JobTitle:   i.JobTitle,
		Experience: i.Experience,
		Interests:  i.Interests,
		ResumeText: i.ResumeText,
		CreatedAt:  timestamppb.New(i.CreatedAt),
		UpdatedAt:  timestamppb.New(i.UpdatedAt),
	}
}
