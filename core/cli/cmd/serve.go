package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Kalysbe/quik-api/core/config"
	"github.com/Kalysbe/quik-api/core/infrastructure/db"
	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
	httptransport "github.com/Kalysbe/quik-api/core/infrastructure/transport/http"
	httpmiddleware "github.com/Kalysbe/quik-api/core/infrastructure/transport/http/middleware"
	"github.com/Kalysbe/quik-api/core/limfile"
	"github.com/Kalysbe/quik-api/core/procedure"
)

var (
	port     string
	logLevel string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:           "serve",
	Short:         "Run the gateway HTTP server",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT env var)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: error, warn, info or debug (overrides LOG_LEVEL env var)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.New("serve")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logging.SetLogLevel(logging.ParseLevel(cfg.LogLevel))

	pools, err := db.Open(cfg)
	if err != nil {
		return err
	}

	ipFilter, err := httpmiddleware.NewIPFilter(cfg.AllowedNetworks)
	if err != nil {
		pools.Close()
		return err
	}

	// The lim pipeline anchors on the process working directory, same
	// place the importer and its ini live.
	workDir, err := os.Getwd()
	if err != nil {
		pools.Close()
		return err
	}

	server := httptransport.NewServer(cfg.Addr())
	httptransport.RegisterRoutes(server.Router(), httptransport.Deps{
		Runner:     procedure.NewInvoker(pools.Procedures),
		ReadsDB:    pools.Reads,
		LimWriter:  limfile.NewWriter(workDir),
		LimRunner:  limfile.NewRunner(workDir),
		IPFilter:   ipFilter,
		Production: cfg.Production(),
	})

	if err := server.Start(); err != nil {
		pools.Close()
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infof("Received %s, shutting down", sig)

	if err := server.Stop(); err != nil {
		log.Error("Server shutdown error", err)
	}
	if err := pools.Close(); err != nil {
		log.Error("Pool close error", err)
	}

	log.Infof("Shutdown complete")
	return nil
}
