package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/francois-poidevin/flightsun/internal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// startHttpCmd represents the startHttp command
var startHttpCmd = &cobra.Command{
	Use:   "startHttp",
	Short: "Start the REST API service",
	Long: `The HTTP Rest API service start with config parameters. Endpoints:
	GET  /api/v1/flight-sun?from=DEL&to=JAI&departure=2025-08-01T18:00:00Z&durationMinutes=60
	POST /api/v1/flight-sun
	POST /api/v1/flight-sun/batch
	GET  /api/v1/airports
	GET  /api/v1/airports/{code}
	GET  /metrics`,
	Run: func(cmd *cobra.Command, args []string) {
		// Initialize config
		initConfig()

		ctx, stop := signal.NotifyContext(context.Background(),
			syscall.SIGHUP,
			syscall.SIGINT,
			syscall.SIGTERM,
			syscall.SIGQUIT)
		defer stop()

		if err := internal.Serve(ctx, log, *conf); err != nil {
			log.WithContext(ctx).WithFields(logrus.Fields{
				"Error": err,
			}).Error("Error in HTTP service")
			os.Exit(1)
		}
	},
}

func init() {
	startHttpCmd.Flags().String("listen", ":8080", "HTTP listen address")
	_ = viper.BindPFlag("flightsun.http.listen", startHttpCmd.Flags().Lookup("listen"))
}
