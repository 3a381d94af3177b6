package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/config"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/ingestion"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/logger"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/observability"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV against a target role",
	Long: `Runs the full analysis pipeline: extraction -> skill inference -> market matching -> report rendering.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath      string
	analyzeCVPath          string
	analyzeCVURL           string
	analyzeRole            string
	analyzeOut             string
	analyzeRemote          bool
	analyzeRemoteTimeoutMS int
	analyzeMarketURL       string
	analyzeMarketAPIKey    string
	analyzeVerbose         bool
	analyzeJSONLog         bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVar(&analyzeCVPath, "cv", "", "Path to CV text file (mutually exclusive with --cv-url)")
	analyzeCommand.Flags().StringVar(&analyzeCVURL, "cv-url", "", "URL to fetch the CV from (mutually exclusive with --cv)")
	analyzeCommand.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role to analyze against (required)")
	analyzeCommand.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the Markdown report to this file (default: stdout)")
	analyzeCommand.Flags().BoolVar(&analyzeRemote, "remote", false, "Consult the remote market data provider before the built-in dataset")
	analyzeCommand.Flags().IntVar(&analyzeRemoteTimeoutMS, "remote-timeout-ms", 0, "Remote market lookup timeout in milliseconds")
	analyzeCommand.Flags().StringVar(&analyzeMarketURL, "market-url", "", "Remote market data provider base URL (optional, defaults to MARKET_DATA_URL env var)")
	analyzeCommand.Flags().StringVar(&analyzeMarketAPIKey, "market-api-key", "", "Remote market data API key (optional, defaults to MARKET_API_KEY env var)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed stage output")
	analyzeCommand.Flags().BoolVar(&analyzeJSONLog, "json-log", false, "Emit logs as JSON instead of console format")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	opts := config.Default()
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		opts = *loaded
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides. Only override when the flag was
	// explicitly set.
	if cmd.Flags().Changed("remote") {
		opts.EnableRemoteMarketData = analyzeRemote
	}
	if cmd.Flags().Changed("remote-timeout-ms") {
		opts.RemoteTimeoutMS = analyzeRemoteTimeoutMS
	}
	if cmd.Flags().Changed("market-url") {
		opts.MarketDataURL = analyzeMarketURL
	}
	if cmd.Flags().Changed("market-api-key") {
		opts.MarketAPIKey = analyzeMarketAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		opts.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("json-log") {
		opts.JSONLog = analyzeJSONLog
	}

	// Step 3: Environment fallbacks for remote provider settings
	if opts.MarketDataURL == "" {
		opts.MarketDataURL = os.Getenv("MARKET_DATA_URL")
	}
	if opts.MarketAPIKey == "" {
		opts.MarketAPIKey = os.Getenv("MARKET_API_KEY")
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	// Step 4: Ingest the CV
	if analyzeCVPath == "" && analyzeCVURL == "" {
		return fmt.Errorf("one of --cv or --cv-url is required")
	}
	if analyzeCVPath != "" && analyzeCVURL != "" {
		return fmt.Errorf("--cv and --cv-url are mutually exclusive")
	}

	var rawCV string
	var err error
	if analyzeCVURL != "" {
		rawCV, err = ingestion.IngestFromURL(ctx, analyzeCVURL)
	} else {
		rawCV, err = ingestion.IngestFromFile(analyzeCVPath)
	}
	if err != nil {
		return fmt.Errorf("CV ingestion failed: %w", err)
	}

	// Step 5: Run the pipeline
	log, err := logger.New(opts.JSONLog, opts.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	p := pipeline.New(opts, log)
	if opts.Verbose {
		p.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Stage, event.Message)
		}
	}

	result, err := p.Run(ctx, rawCV, analyzeRole)
	if err != nil {
		return err
	}

	if opts.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCandidateRecord(result.Candidate)
		printer.PrintSkillAnalysis(result.Skills)
		printer.PrintMarketProfile(result.Market)
		printer.PrintGapSummary(result.Gaps)
	}

	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	// Step 6: Deliver the report
	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, []byte(result.Report), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", analyzeOut)
		return nil
	}
	_, _ = fmt.Fprint(os.Stdout, result.Report)
	return nil
}
