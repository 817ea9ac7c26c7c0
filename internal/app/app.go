package app

import (
	"net"
	"net/http"
	"time"

	"github.com/fliklylike-cyber/Media-Grab/internal/config"
	"github.com/fliklylike-cyber/Media-Grab/internal/handler"
	"github.com/fliklylike-cyber/Media-Grab/internal/logger"
	"github.com/fliklylike-cyber/Media-Grab/internal/proto"
	"github.com/fliklylike-cyber/Media-Grab/internal/service"
	"github.com/fliklylike-cyber/Media-Grab/internal/simulate"
	"github.com/fliklylike-cyber/Media-Grab/internal/worker"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

// App wires the configuration, the resolver worker, the service and the
// transports together.
type App struct {
	config     *config.Config
	handler    http.Handler
	grpcServer *grpc.Server
	worker     *worker.ResolverWorker
}

// NewApp builds the application from its configuration.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.LogLevel)

	simulator := simulate.NewSimulator(simulate.Config{
		DelayMin:    time.Duration(cfg.DelayMinMs) * time.Millisecond,
		DelayMax:    time.Duration(cfg.DelayMaxMs) * time.Millisecond,
		SuccessRate: cfg.SuccessRate,
	})

	resolverWorker := worker.NewResolverWorker(simulator)
	resolverWorker.Start()

	grabService := service.NewGrabService(resolverWorker)

	httpHandler := handler.NewHandler(grabService)

	a := &App{
		config:  cfg,
		handler: httpHandler.RegisterRoutes(),
		worker:  resolverWorker,
	}

	if cfg.GRPCAddress != "" {
		a.grpcServer = grpc.NewServer()
		proto.RegisterMediaGrabServiceServer(a.grpcServer, handler.NewMediaGrabGRPCServer(grabService))
	}

	return a
}

// Run starts the gRPC server (when configured) and serves HTTP until the
// listener fails.
func (a *App) Run() error {
	if a.grpcServer != nil {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return err
		}

		go func() {
			log.Info().Str("address", a.config.GRPCAddress).Msg("Starting gRPC server")
			if err := a.grpcServer.Serve(lis); err != nil {
				log.Error().Err(err).Msg("gRPC server stopped")
			}
		}()
	}

	log.Info().Str("address", a.config.ServerAddress).Str("baseURL", a.config.BaseURL).Msg("Starting HTTP server")
	return http.ListenAndServe(a.config.ServerAddress, a.handler)
}

// Shutdown stops the gRPC server and drains the resolver worker.
func (a *App) Shutdown() {
	if a.grpcServer != nil {
		a.grpcServer.GracefulStop()
	}

	if err := a.worker.Shutdown(shutdownTimeout); err != nil {
		log.Warn().Err(err).Msg("Resolver worker did not drain in time")
	}
}
