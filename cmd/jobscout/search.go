package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seetoh/jobscout/internal/config"
	"github.com/seetoh/jobscout/internal/connectors"
	"github.com/seetoh/jobscout/internal/emailer"
	"github.com/seetoh/jobscout/internal/keywords"
	"github.com/seetoh/jobscout/internal/observability"
	"github.com/seetoh/jobscout/internal/pipeline"
	"github.com/seetoh/jobscout/internal/queryplan"
	"github.com/seetoh/jobscout/internal/report"
	"github.com/seetoh/jobscout/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job sites for a target role and write a ranked Excel report",
	Long:  "Search the configured job sites for a target role, score and deduplicate the postings, rank them, and write an Excel report with a Notes sheet of run diagnostics.",
	RunE:  runSearch,
}

var (
	searchRole       string
	searchDays       int
	searchSources    []string
	searchMax        int
	searchRawCap     int
	searchOutput     string
	searchEmailTo    string
	searchConfigFile string
	searchBrowser    bool
	searchVerbose    bool
)

func init() {
	searchCmd.Flags().StringVarP(&searchRole, "role", "r", "", "Target role to search for (required)")
	searchCmd.Flags().IntVar(&searchDays, "days", 0, "Only keep postings verified within this many days")
	searchCmd.Flags().StringSliceVarP(&searchSources, "sources", "s", nil, "Job sites to search, in order (default: all registered)")
	searchCmd.Flags().IntVar(&searchMax, "max", 0, "Maximum rows in the final report")
	searchCmd.Flags().IntVar(&searchRawCap, "raw-cap", 0, "Stop collecting once this many raw postings exist")
	searchCmd.Flags().StringVarP(&searchOutput, "out", "o", "", "Path of the Excel report to write (default: jobs.xlsx)")
	searchCmd.Flags().StringVar(&searchEmailTo, "email-to", "", "Email the finished report to this address")
	searchCmd.Flags().StringVarP(&searchConfigFile, "config", "c", "", "Path to JSON config file")
	searchCmd.Flags().BoolVar(&searchBrowser, "browser", false, "Use a headless browser for JavaScript-rendered sites")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print detailed run information")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	cfg, err := loadSearchConfig()
	if err != nil {
		return err
	}

	log := observability.NewLogger(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	recorder := connectors.NewRecorder()
	registry := connectors.DefaultRegistry(recorder, log, cfg.UseBrowser)

	sources := cfg.Sources
	if len(sources) == 0 {
		sources = registry.Names()
	}

	request := types.SearchRequest{
		TargetRole:       cfg.Role,
		PostedWithinDays: cfg.PostedWithinDays,
		Sources:          sources,
		MaxFinal:         cfg.MaxFinal,
		RawCap:           cfg.RawCap,
		EmailTo:          cfg.EmailTo,
	}

	ctx := context.Background()
	result, err := pipeline.Run(ctx, request, pipeline.Options{
		Registry: registry,
		Recorder: recorder,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		ks := keywords.Expand(request.TargetRole)
		printer.PrintSearchPlan(ks, queryplan.Build(ks.TargetRole, ks.AdjacentTitles, ks.CoreKeywords))
		printer.PrintSourceCounts(request.Sources, result.PerSource)
		printer.PrintTopPostings(result.Final)
		printer.PrintFetchDiagnostics(recorder.Entries())
	}

	if err := report.Write(result, cfg.Output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Report written: %s (%d postings)\n", cfg.Output, len(result.Final))

	if cfg.EmailTo != "" {
		e := emailer.New(emailer.DefaultSettings())
		subject := emailer.DefaultSubject(request.TargetRole)
		body := emailer.DefaultBody(request.TargetRole, len(result.Final))
		if err := e.SendReport(cfg.EmailTo, subject, body, cfg.Output); err != nil {
			return fmt.Errorf("report was written but could not be emailed: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Report emailed to %s\n", cfg.EmailTo)
	}

	return nil
}

// loadSearchConfig merges the optional JSON config file under the CLI flags.
// Flags win; file values fill anything the flags left unset.
func loadSearchConfig() (config.Config, error) {
	flags := config.Config{
		Role:             searchRole,
		PostedWithinDays: searchDays,
		Sources:          searchSources,
		MaxFinal:         searchMax,
		RawCap:           searchRawCap,
		Output:           searchOutput,
		EmailTo:          searchEmailTo,
		UseBrowser:       searchBrowser,
		Verbose:          searchVerbose,
	}

	merged := flags
	if searchConfigFile != "" {
		fileCfg, err := config.LoadConfig(searchConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
		// Bool flags always win over the file.
		merged.UseBrowser = searchBrowser || fileCfg.UseBrowser
		merged.Verbose = searchVerbose || fileCfg.Verbose
	}

	if merged.Role == "" {
		return config.Config{}, fmt.Errorf("target role is required (use --role or the config file)")
	}
	if merged.Output == "" {
		merged.Output = "jobs.xlsx"
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
