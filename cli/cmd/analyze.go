package cmd

import (
	"context"
	"os"

	"github.com/francois-poidevin/flightsun/internal"
	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	fromFlag      string
	toFlag        string
	departureFlag string
	durationFlag  int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Recommend a window seat for one flight",
	Long: `Sample the route between two airports, follow the sun along it and send
	the analysis to the configured sinker (STDOUT, FILE or DB).`,
	Example: `  flightsun analyze --from DEL --to JAI --departure 2025-08-01T00:00:00Z --duration 60`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Initialize config
		initConfig()

		errExec := internal.Execute(ctx, log, *conf, buildQuery())
		if errExec != nil {
			log.WithContext(ctx).WithFields(logrus.Fields{
				"Error": errExec,
			}).Error("Error in Execute processing")
			os.Exit(1)
		}
	},
}

func buildQuery() app.Query {
	q := app.Query{From: fromFlag, To: toFlag, Departure: departureFlag}
	if durationFlag > 0 {
		d := durationFlag
		q.DurationMinutes = &d
	}
	return q
}

func init() {
	analyzeCmd.Flags().StringVar(&fromFlag, "from", "", "departure airport IATA code")
	analyzeCmd.Flags().StringVar(&toFlag, "to", "", "arrival airport IATA code")
	analyzeCmd.Flags().StringVar(&departureFlag, "departure", "", "departure time, ISO-8601 UTC (2025-08-01T18:00:00Z)")
	analyzeCmd.Flags().IntVar(&durationFlag, "duration", 0, "flight duration in minutes, enables the sunrise/sunset report")
	analyzeCmd.Flags().String("sinkerType", "STDOUT", "set the sinker type (STDOUT|FILE|DB)")
	analyzeCmd.Flags().String("classifier", "clock", "set the report classifier (clock|elevation)")

	_ = analyzeCmd.MarkFlagRequired("from")
	_ = analyzeCmd.MarkFlagRequired("to")
	_ = analyzeCmd.MarkFlagRequired("departure")

	_ = viper.BindPFlag("flightsun.sinkertype", analyzeCmd.Flags().Lookup("sinkerType"))
	_ = viper.BindPFlag("flightsun.classifier", analyzeCmd.Flags().Lookup("classifier"))
}
