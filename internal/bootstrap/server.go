package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Domenick1991/spacebooking/api"
	"github.com/Domenick1991/spacebooking/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const swaggerSpecPath = "/docs/spacebooking.swagger.json"

type Handlers struct {
	Destinations *api.DestinationHandler
	Bookings     *api.BookingHandler
	Users        *api.UserHandler
	System       *api.SystemHandler
}

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewRouter wires middleware, API routes and, when a swagger directory is
// configured, the Swagger UI.
func NewRouter(cfg config.HTTPConfig, h Handlers, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.CORS(), api.RequestID(), api.RequestLogger(logger))

	h.System.Register(&router.RouterGroup)
	h.Destinations.Register(router.Group("/destinations"))
	h.Bookings.Register(router.Group("/bookings"))
	h.Users.Register(router.Group("/users"))

	if cfg.SwaggerDir != "" {
		router.StaticFile(swaggerSpecPath, filepath.Join(cfg.SwaggerDir, "spacebooking.swagger.json"))
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(swaggerSpecPath))))
	}
	return router
}

func newServers(cfg *config.Config, handler http.Handler, logger *logrus.Logger) *Servers {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSrv)
	reflection.Register(grpcSrv)

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run starts the HTTP API and, if an address is configured, the gRPC health
// server. It blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, logger *logrus.Logger) error {
	s := newServers(cfg, handler, logger)

	errCh := make(chan error, 2)

	if cfg.GRPC.Address != "" {
		lis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
		logger.WithField("address", cfg.GRPC.Address).Info("gRPC health server listening")
		go func() { errCh <- s.grpcServer.Serve(lis) }()
	}

	logger.WithField("address", cfg.HTTP.Address).Info("HTTP server listening")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		return err
	case <-ctx.Done():
		return s.shutdown()
	}
}

func (s *Servers) shutdown() error {
	s.logger.Info("shutting down servers")
	s.health.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.grpcServer.GracefulStop()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
