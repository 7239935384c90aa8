package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contactup/internal/api"
	"contactup/internal/config"
	"contactup/internal/db"
	"contactup/internal/logging"
	"contactup/internal/stub"
	"contactup/internal/styles"
	"contactup/internal/theme"
	"contactup/internal/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	serverURL  string
	debug      bool

	stubAddr string
)

var rootCmd = &cobra.Command{
	Use:   "contactup",
	Short: "Add contacts to a contact server from the terminal",
	Long: `contactup is a terminal client for a small contact collection service.

Fill in a name, a country code and a 9 digit phone number, and it checks the
server for duplicates before uploading. The full list is shown below the form.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClient(cmd)
	},
}

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run an in-memory contact server for local use",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStub(stubAddr)
	},
}

func init() {
	// A missing .env is normal.
	_ = godotenv.Load()

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&serverURL, "server-url", "", "contact server base URL")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	stubCmd.Flags().StringVar(&stubAddr, "addr", ":3000", "listen address")
	rootCmd.AddCommand(stubCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("server-url") {
		cfg.ServerURL = serverURL
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

func runClient(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, err := logging.NewFileLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var (
		database *sql.DB
		store    theme.Store
	)
	database, err = db.OpenContactupDB(cfg.DataDir)
	if err != nil {
		logger.Warn("settings store unavailable, theme will not persist", zap.Error(err))
	} else {
		defer database.Close()
		store = db.Settings{DB: database}
	}

	ctrl := theme.NewController(store, styles.SystemPrefersDark, logger)
	client := api.New(cfg.ServerURL, api.WithLogger(logger))

	logger.Info("starting", zap.String("server_url", cfg.ServerURL))
	p := ui.NewProgram(ui.Options{
		Service:      client,
		Theme:        ctrl,
		Logger:       logger,
		CountryCodes: cfg.CountryCodes,
		ServerURL:    client.BaseURL(),
	})
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

func runStub(addr string) error {
	logger, err := logging.NewConsoleLogger(debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           stub.NewHandler(stub.NewStore(), logger),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("stub listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout, "shutting down...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
