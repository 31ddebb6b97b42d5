// Command stubserver serves the quiz REST contract from memory so the
// terminal client can be used without the real backend.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quizcourse/quizcourse/internal/api"
	"github.com/quizcourse/quizcourse/internal/api/memstore"
	"github.com/quizcourse/quizcourse/internal/config"
	"github.com/quizcourse/quizcourse/internal/logger"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:          "stubserver",
		Short:        "Run the in-memory quiz backend",
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "./cmd/app/config.yml", "config file, empty for defaults")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	s := api.NewServer(conf, memstore.New())

	addr := ":" + s.Config.Stub.Port
	zap.L().Info(fmt.Sprintf("starting stub server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
