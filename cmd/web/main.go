package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/shop-tools/sales-atlas/pkg/server"
	"github.com/shop-tools/sales-atlas/pkg/services/config"
	"github.com/shop-tools/sales-atlas/pkg/services/insight"
	"github.com/shop-tools/sales-atlas/pkg/services/ledger"
	"github.com/shop-tools/sales-atlas/pkg/services/source"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath       string
	serverCfgPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.salesatlas.ini", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .salesatlas.ini file (default is $HOME/.salesatlas.ini)")
	rootCmd.Flags().StringVar(&serverCfgPath, "server-config", "",
		"Path to an optional server config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	ledgerSvc := ledger.NewService(registry, source.NewSheetsSource(), insight.NewRegistry())

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following profiles:")
	profiles, _ := ledgerSvc.ListSources(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Currency: `%s`", profile.Name, profile.Currency)
	}

	serverCfg, err := config.LoadServer(serverCfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	addr := net.JoinHostPort(serverCfg.Host, serverCfg.Port)

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		AllowedOrigins:  serverCfg.AllowedOrigins,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Ledger: ledgerSvc,
		},
	})

	return webAPI.Start()
}
