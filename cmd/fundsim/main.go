package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fundsim/fund-simulator/internal/calculation"
	"github.com/fundsim/fund-simulator/internal/config"
	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/fundsim/fund-simulator/internal/handler"
	"github.com/fundsim/fund-simulator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
)

var (
	horizonMonths   int
	horizonYears    int
	monthlyDeposit  float64
	annualRate      float64
	tariffSeverity  string
	extremeSeverity string
	startDate       string
	scenarioFile    string
	outputFormat    string
	outputFile      string
	verbose         bool
	port            string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fundsim",
		Short: "recurring-deposit fund growth simulator",
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a projection and print it",
		RunE:  runProjection,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&outputFormat, "format", "console", "output format (console, csv, json, chart)")
	runCmd.Flags().StringVar(&outputFile, "out", "", "write output to a timestamped file with this extension instead of stdout")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "plot the projection as terminal graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat = "chart"
			outputFile = ""
			return runProjection(cmd, args)
		},
	}
	addScenarioFlags(chartCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the projection engine over HTTP",
		RunE:  serveAPI,
	}
	serveCmd.Flags().StringVar(&port, "port", "", "listen port (defaults to $PORT or 8080)")

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scenario.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.NewInputParser().WriteExampleFile(path); err != nil {
				return err
			}
			fmt.Printf("wrote example scenario to %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, chartCmd, serveCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&horizonMonths, "months", 0, "projection horizon in months")
	cmd.Flags().IntVar(&horizonYears, "years", 10, "projection horizon in years (ignored when --months is set)")
	cmd.Flags().Float64Var(&monthlyDeposit, "deposit", 500, "monthly deposit amount")
	cmd.Flags().Float64Var(&annualRate, "rate", 6, "annual interest rate in percent")
	cmd.Flags().StringVar(&tariffSeverity, "tariff", "", "tariff shock severity (low, medium, high)")
	cmd.Flags().StringVar(&extremeSeverity, "extreme", "", "extreme-event shock severity (low, medium, high)")
	cmd.Flags().StringVar(&startDate, "start", "", "simulation start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&scenarioFile, "config", "", "scenario file (yaml); flags are ignored when set")
}

func runProjection(cmd *cobra.Command, args []string) error {
	engine := calculation.NewSimulationEngine()
	if verbose {
		engine.SetLogger(newZerologAdapter())
	}

	params, err := buildParameters(engine)
	if err != nil {
		return err
	}

	result, err := engine.Project(params)
	if err != nil {
		return err
	}

	f := output.GetFormatterByName(outputFormat)
	if f == nil {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
	if outputFile != "" {
		name, err := output.WriteFormatted(f, result, outputFile)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", name)
		return nil
	}

	data, err := f.Format(result)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// buildParameters assembles engine input from the scenario file or flags.
// "Now" is resolved here, at the presentation boundary.
func buildParameters(engine *calculation.SimulationEngine) (domain.SimulationParameters, error) {
	if scenarioFile != "" {
		scenario, err := config.NewInputParser().LoadFromFile(scenarioFile)
		if err != nil {
			return domain.SimulationParameters{}, err
		}
		engine.Catalogs = scenario.ShockCatalogs()
		return scenario.ToParameters(time.Now())
	}

	tariff, err := domain.ParseSeverity(tariffSeverity)
	if err != nil {
		return domain.SimulationParameters{}, err
	}
	extreme, err := domain.ParseSeverity(extremeSeverity)
	if err != nil {
		return domain.SimulationParameters{}, err
	}

	horizon := horizonMonths
	if horizon <= 0 {
		horizon = horizonYears * 12
	}

	start := time.Now()
	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return domain.SimulationParameters{}, fmt.Errorf("invalid --start date: %w", err)
		}
	}

	return domain.SimulationParameters{
		StartDate:         start,
		HorizonMonths:     horizon,
		MonthlyDeposit:    decimal.NewFromFloat(monthlyDeposit),
		AnnualRatePercent: decimal.NewFromFloat(annualRate),
		TariffSeverity:    tariff,
		ExtremeSeverity:   extreme,
	}, nil
}

func serveAPI(cmd *cobra.Command, args []string) error {
	engine := calculation.NewSimulationEngine()
	if verbose {
		engine.SetLogger(newZerologAdapter())
	}

	listenPort := port
	if listenPort == "" {
		listenPort = os.Getenv("PORT")
	}
	if listenPort == "" {
		listenPort = "8080"
	}

	h := handler.NewSimulationHandler(engine)
	log.Printf("fund simulator listening on port %s", listenPort)
	return fasthttp.ListenAndServe(":"+listenPort, h.Handle)
}
