package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vitae/internal/chart"
	"vitae/internal/model"
	"vitae/internal/pipeline"
)

var (
	outJSON       string
	outMD         string
	outChart      string
	timeout       time.Duration
	userAgent     string
	maxBytes      int64
	noCache       bool
	noRobots      bool
	noFooter      bool
	skipMalformed bool
	currentYear   int
	tableClass    string
	columnHeader  string
	llmProvider   string
	llmModel      string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Scan a page of office-holders and report lifespan statistics",
	Long: `Scan fetches a single page, extracts one record per office-holder from
its data table, parses birth and death years out of each record, and
computes age-at-death statistics over the deceased.

Outputs: a JSON report, an optional Markdown report, and an optional
HTML chart of lifespans (living holders drawn to the current year).

Example:
  vitae scan https://en.wikipedia.org/wiki/List_of_prime_ministers_of_Australia
  vitae scan https://example.com/listing --md report.md --chart lifespans.html
  vitae scan https://example.com/listing --skip-malformed --llm openai`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	scanCmd.Flags().StringVar(&outChart, "chart", "", "output HTML chart path (optional)")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// HTTP flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "Vitae/0.1 (lifespan scanner)", "HTTP User-Agent")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 4_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	scanCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip the robots.txt check")

	// Extraction and report flags
	scanCmd.Flags().StringVar(&tableClass, "table-class", "wikitable", "CSS class marking the data table")
	scanCmd.Flags().StringVar(&columnHeader, "column", "Name(Birth–Death)Constituency", "header of the composite column")
	scanCmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "skip unparseable records instead of aborting")
	scanCmd.Flags().IntVar(&currentYear, "current-year", 0, "year charted for living holders (default: this year)")

	// LLM flags
	scanCmd.Flags().StringVar(&llmProvider, "llm", "", "enable narrative generation (openai, ollama)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = defaultCacheDir()
	cfg.Extract.TableClass = tableClass
	cfg.Extract.Column = columnHeader
	cfg.Report.Verbose = verbose
	cfg.Report.CurrentYear = currentYear
	cfg.Report.SkipMalformed = skipMalformed
	cfg.Report.IncludeFooter = !noFooter

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	log := newLogger()
	p := pipeline.NewPipeline(cfg, log)

	report, err := p.Scan(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	renderer := p.Renderer()
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		log.Debug().Str("out", outJSON).Msg("wrote JSON report")
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		log.Debug().Str("out", outMD).Msg("wrote Markdown report")
	}
	if outChart != "" {
		if err := chart.Write(report, outChart); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		log.Debug().Str("out", outChart).Msg("wrote chart")
	}

	renderer.RenderSummary(report)
	return nil
}
