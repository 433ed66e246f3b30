package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MCH-512/crewsphere-sub000/internal/config"
	"github.com/MCH-512/crewsphere-sub000/internal/ftl"
	"github.com/MCH-512/crewsphere-sub000/internal/logging"
	"github.com/MCH-512/crewsphere-sub000/internal/render"
	"github.com/MCH-512/crewsphere-sub000/internal/telemetry"
	"github.com/MCH-512/crewsphere-sub000/internal/web"
)

const appVersion = "0.2.0"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		reportStr       string
		arrivalStr      string
		sectors         int
		acclimatisation string
		notAcclimatised bool
		output          string
		port            int
		configPath      string
	)

	cmd := &cobra.Command{
		Use:           "ftlcalc",
		Short:         "Flight duty period calculator (CLI or web)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Fprintf(out, "ftlcalc v%s\n", appVersion)
				return nil
			}

			if port > 0 {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				return serveWeb(cfg, port)
			}

			if strings.TrimSpace(reportStr) == "" {
				return fmt.Errorf("--report is required (or use --port)")
			}
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}
			if notAcclimatised {
				if cmd.Flags().Changed("acclimatisation") && acclimatisation != ftl.NotAcclimatised.String() {
					return fmt.Errorf("--not-acclimatised conflicts with --acclimatisation %s", acclimatisation)
				}
				acclimatisation = ftl.NotAcclimatised.String()
			}

			in, res, err := ftl.Calculate(ftl.Request{
				ReportTime:          reportStr,
				ProposedArrivalTime: arrivalStr,
				Sectors:             sectors,
				Acclimatisation:     acclimatisation,
			})
			if err != nil {
				return err
			}
			return render.Write(out, format, render.NewView(in, res))
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("ftlcalc v{{.Version}}\n")
	cmd.SetOut(out)
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.Flags().StringVar(&reportStr, "report", "", "Report time HH:MM (local)")
	cmd.Flags().StringVar(&arrivalStr, "arrival", "", "Proposed on-block arrival HH:MM (optional, earlier than report = next day)")
	cmd.Flags().IntVar(&sectors, "sectors", 2, fmt.Sprintf("Number of sectors (%d-%d)", ftl.MinSectors, ftl.MaxSectors))
	cmd.Flags().StringVar(&acclimatisation, "acclimatisation", ftl.Acclimatised.String(), "acclimatised or not_acclimatised")
	cmd.Flags().BoolVar(&notAcclimatised, "not-acclimatised", false, "Shorthand for --acclimatisation not_acclimatised")
	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatText), "Output format: text, json or yaml")

	cmd.Flags().IntVar(&port, "port", 0, "Run web UI and JSON API on this port (e.g. 8484)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file for the web server (default $"+config.PathEnv+")")

	cmd.AddCommand(newTablesCmd(out))
	cmd.AddCommand(newServeCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		port       int
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API on the configured port",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serveWeb(cfg, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Override the configured HTTP port")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (default $"+config.PathEnv+")")
	return cmd
}

func newTablesCmd(out io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the base FDP limit tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}
			switch format {
			case render.FormatJSON:
				return render.JSON(out, render.TableViews())
			case render.FormatYAML:
				return render.YAML(out, render.TableViews())
			default:
				return render.Tables(out)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatText), "Output format: text, json or yaml")
	return cmd
}

/* ---------------- web ---------------- */

func serveWeb(cfg *config.Config, port int) error {
	if port <= 0 {
		port = cfg.HTTP.Port
	}
	logger := logging.Setup(cfg.Env, cfg.Log.Level, nil)
	logger.Info().Str("version", appVersion).Str("env", cfg.Env).Msg("ftlcalc starting")

	metrics := telemetry.NewMetrics()
	handler := web.New(cfg.Form, metrics, appVersion, logger)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logListenAddrs(logger, port)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info().Msg("shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info().Msg("ftlcalc stopped")
	return nil
}

func logListenAddrs(logger zerolog.Logger, port int) {
	logger.Info().Str("url", fmt.Sprintf("http://127.0.0.1:%d/", port)).Msg("listening")

	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a.String())
			if err != nil || ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			logger.Info().Str("url", fmt.Sprintf("http://%s:%d/", ip.String(), port)).Str("iface", iface.Name).Msg("listening")
		}
	}
}
