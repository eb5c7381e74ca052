package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/greencareers/internal/logging"
	pb "github.com/dmitrijs2005/greencareers/internal/proto"
	"github.com/dmitrijs2005/greencareers/internal/server/auth"
	"github.com/dmitrijs2005/greencareers/internal/server/metrics"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type IdentityService interface {
	Signup(ctx context.Context, email, password, displayName string) (*models.Identity, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	IssueToken(identity *models.Identity) (string, error)
	SubmitProfile(ctx context.Context, id string, p models.Profile) (*models.Identity, error)
	GetIdentity(ctx context.Context, id string) (*models.Identity, error)
}

type AdviceService interface {
	Risk(ctx context.Context, id string) (*models.RiskAssessment, error)
	GreenJobs(ctx context.Context, id string) ([]models.GreenJob, error)
	ReskillingCourses(ctx context.Context, id string) ([]models.ReskillingCourse, error)
	SideHustles(ctx context.Context, id string) ([]models.SideHustle, error)
	Chat(ctx context.Context, id, message string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedCareerServiceServer

	address    string
	identities IdentityService
	advice     AdviceService
	guard      *auth.Guard
	metrics    *metrics.Metrics
	logger     logging.Logger
}

// NewGRPCServer wires the CareerService handlers. m may be nil, in which
// case no metrics are recorded.
func NewGRPCServer(a string, l logging.Logger, is IdentityService, as AdviceService, g *auth.Guard, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		identities: is,
		advice:     as,
		guard:      g,
		metrics:    m,
	}
}

// newServer builds a grpc.Server with the interceptor chain, the
// CareerService and the standard health service registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	interceptors := []grpc.UnaryServerInterceptor{s.loggingInterceptor}
	if s.metrics != nil {
		interceptors = append(interceptors, s.metrics.UnaryServerInterceptor())
	}
	interceptors = append(interceptors, s.accessInterceptor)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))

	pb.RegisterCareerServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.CareerService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
