package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/scenedash/scenedash/internal/config"
	"github.com/scenedash/scenedash/internal/dashboard"
	"github.com/scenedash/scenedash/internal/db"
	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/metrics"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/server"
	"github.com/scenedash/scenedash/internal/session"
	"github.com/scenedash/scenedash/internal/sidebar"
	"github.com/scenedash/scenedash/internal/visits"
)

var serverPort int

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the dashboard web server",
	Long:  `Starts the scenedash dashboard: demo pages, the sidebar JSON and websocket API, visit statistics and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		tree, err := loadTree(cfg)
		if err != nil {
			return err
		}

		catalog, err := demos.Default()
		if err != nil {
			return fmt.Errorf("loading demo catalog: %w", err)
		}

		ttl, err := cfg.SessionTimeout()
		if err != nil {
			return err
		}

		// Open database.
		dbPath := cfg.DatabasePath()
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		m := metrics.New()
		visitStore := visits.NewStore(database)
		sessions := newSessionManager(cfg, tree, catalog, visitStore, m, ttl)

		// Create and start server.
		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, database, m.Handler())

		registerAllRoutes(srv, cfg, tree, catalog, sessions, visitStore, m)

		fmt.Fprintf(os.Stderr, "scenedash server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Menu entries: %d\n", tree.Len())
		fmt.Fprintf(os.Stderr, "  Demo pages: %d\n", len(catalog.Pages()))
		fmt.Fprintf(os.Stderr, "  Breakpoint: %dpx, session TTL: %s\n", cfg.BreakpointPx, ttl)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gCtx := errgroup.WithContext(ctx)

		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			sessions.Run(gCtx)
			return nil
		})

		g.Go(func() error {
			<-gCtx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("server: shutdown: %v", err)
			}
			return nil
		})

		return g.Wait()
	},
}

// newSessionManager builds per-visitor sidebars whose navigations are
// recorded as visits.
func newSessionManager(cfg *config.Config, tree *navtree.Tree, catalog *demos.Catalog, visitStore *visits.Store, m *metrics.Metrics, ttl time.Duration) *session.Manager {
	factory := func(id string) (*sidebar.Controller, *demos.Values) {
		nav := &visits.Navigator{
			Store:     visitStore,
			SessionID: id,
			Counter:   m.Navigations,
		}
		sb := sidebar.New(tree, nav, sidebarOptions(cfg))
		return sb, demos.NewValues(catalog)
	}

	return session.NewManager(factory, session.Options{
		TTL: ttl,
		OnCreate: func(id string) {
			m.Sessions.Increment("created")
			m.Active.Inc()
			if cfg.Debug() {
				log.Printf("session: created %s", id)
			}
		},
		OnExpire: func(id string) {
			m.Sessions.Increment("expired")
			m.Active.Dec()
			if cfg.Debug() {
				log.Printf("session: expired %s", id)
			}
		},
	})
}

// registerAllRoutes wires up all feature routes.
func registerAllRoutes(srv *server.Server, cfg *config.Config, tree *navtree.Tree, catalog *demos.Catalog, sessions *session.Manager, visitStore *visits.Store, m *metrics.Metrics) {
	r := srv.Router()

	// Visit statistics
	visits.RegisterRoutes(r, visitStore)

	// Dashboard pages, sidebar API and websocket
	dash := dashboard.New(tree, catalog, sessions, visitStore, m, cfg.Debug())
	dash.RegisterRoutes(r)
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
