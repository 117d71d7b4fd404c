package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/config"
	"github.com/shashiranjanraj/companyapi/internal/kernel"
	"github.com/shashiranjanraj/companyapi/internal/server"
	"github.com/shashiranjanraj/companyapi/pkg/migration"
)

var (
	serveMigrate bool
	servePort    string
)

// companyapi serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			if serveMigrate {
				if err := migration.New(db, cmd.OutOrStdout()).Run(); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			port := servePort
			if port == "" {
				port = config.AppPort()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := kernel.NewHTTPKernel(db).Handler()
			return server.Start(ctx, net.JoinHostPort("", port), handler)
		})
	},
}

// companyapi route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Building the kernel never touches the database, so a nil handle is
		// enough to read the route table.
		infos := kernel.NewHTTPKernel(nil).Routes()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "run pending migrations before serving")
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (defaults to APP_PORT)")
}
