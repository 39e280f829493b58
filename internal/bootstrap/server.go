package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const swaggerSpecFile = "flightdesk.swagger.json"

// Run serves router on cfg.HTTP.Address and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, router *gin.Engine, log *zap.Logger) error {
	lis, err := net.Listen("tcp", cfg.HTTP.Address)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", cfg.HTTP.Address, err)
	}
	return Serve(ctx, lis, NewServer(cfg, router), log)
}

// NewServer mounts the swagger UI when a spec directory is configured.
func NewServer(cfg *config.Config, router *gin.Engine) *http.Server {
	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/"+swaggerSpecFile),
		)))
	}

	return &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func Serve(ctx context.Context, lis net.Listener, srv *http.Server, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(lis) }()
	log.Info("http server started", zap.String("address", lis.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
