// cmd/hr-insights/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/peopleops/hr-insights/pkg/config"
	"github.com/peopleops/hr-insights/pkg/pipeline"
	"github.com/peopleops/hr-insights/pkg/source"
)

func main() {
	// .env is optional; real deployments configure the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown handler
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		logger.Warn("Received signal, cancelling", zap.String("signal", sig.String()))
		cancel()
	}()

	factory := source.NewLoaderFactory(cfg, logger)
	loader, err := factory.CreateLoader(ctx)
	if err != nil {
		logger.Fatal("Failed to create source loader", zap.Error(err))
	}
	defer loader.Close()

	p := pipeline.New(loader, logger)
	rpt, err := p.Run(ctx)
	if err != nil {
		logger.Fatal("Analysis pipeline failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(rpt, "", "  ")
	if err != nil {
		logger.Fatal("Failed to marshal report", zap.Error(err))
	}
	fmt.Println(string(out))
}

// buildLogger constructs the zap logger from LOG_LEVEL and LOG_FORMAT.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.LogLevel))); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if strings.EqualFold(cfg.LogFormat, "console") {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// Keep stdout clean for the report itself
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
