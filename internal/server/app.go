// Package server assembles the CareerService from configuration and runs it
// together with the metrics endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/greencareers/internal/logging"
	"github.com/dmitrijs2005/greencareers/internal/server/auth"
	"github.com/dmitrijs2005/greencareers/internal/server/config"
	"github.com/dmitrijs2005/greencareers/internal/server/events"
	"github.com/dmitrijs2005/greencareers/internal/server/metrics"
	"github.com/dmitrijs2005/greencareers/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/greencareers/internal/server/resumes"
	"github.com/dmitrijs2005/greencareers/internal/server/services"

	gs "github.com/dmitrijs2005/greencareers/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	repos     repomanager.RepositoryManager
	publisher events.Publisher
	metrics   *metrics.Metrics
	grpc      *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	codec, err := auth.NewTokenCodec([]byte(c.SecretKey), c.TokenAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("token codec init error: %w", err)
	}

	repos, err := repomanager.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	var publisher events.Publisher = events.Nop{}
	if c.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(c.AMQPURL, c.AMQPExchange)
		if err != nil {
			_ = repos.Close()
			return nil, fmt.Errorf("event publisher init error: %w", err)
		}
		publisher = p
	}

	var archive resumes.Archive = resumes.Nop{}
	if c.S3Bucket != "" {
		a, err := resumes.NewS3Archive(ctx, resumes.S3Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
		})
		if err != nil {
			_ = publisher.Close()
			_ = repos.Close()
			return nil, fmt.Errorf("resume archive init error: %w", err)
		}
		archive = a
	}

	is := services.NewIdentityService(repos.Identities(), auth.NewPasswordHasher(auth.DefaultArgon2Params), codec, c,
		services.WithPublisher(publisher),
		services.WithArchive(archive),
		services.WithLogger(logger),
	)
	as := services.NewAdviceService(is, nil)

	m := metrics.New()
	g := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, is, as, auth.NewGuard(c.APIKey, is), m)

	logger.Info(ctx, "App initialized", "storage", c.Storage, "events", c.AMQPURL != "", "resume_archive", c.S3Bucket != "")

	return &App{config: c, logger: logger, repos: repos, publisher: publisher, metrics: m, grpc: g}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled, a signal arrives or either server
// fails, then releases storage and the event publisher.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		runErr error
	)
	fail := func(err error) {
		app.logger.Error(ctx, err.Error())
		mu.Lock()
		runErr = errors.Join(runErr, err)
		mu.Unlock()
		cancelFunc()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := app.grpc.Run(ctx); err != nil {
			fail(fmt.Errorf("grpc server: %w", err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := app.metrics.Serve(ctx, app.config.MetricsAddr, app.logger); err != nil {
			fail(fmt.Errorf("metrics server: %w", err))
		}
	}()

	wg.Wait()

	return errors.Join(runErr, app.close())
}

func (app *App) close() error {
	return errors.Join(app.publisher.Close(), app.repos.Close())
}
