package main

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eps-group/leadgen-cli/internal/extract"
	"github.com/eps-group/leadgen-cli/internal/model"
	"github.com/eps-group/leadgen-cli/internal/pipeline"
	"github.com/eps-group/leadgen-cli/pkg/cse"
)

var (
	searchQuery     string
	searchIndiamart bool
	searchMax       int
	searchScoredOut string
	searchExportOut string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Harvest leads from web search and score them",
	Long: `Runs a Google Programmable Search query, turns each result into a raw
lead row (website + snippet), and feeds the batch through the scoring
pipeline.

Examples:
  leadgen-cli search --query "evaporator manufacturer site:.in"
  leadgen-cli search --query "vacuum pump supplier" --indiamart --max 30`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Search.Key == "" || cfg.Search.CX == "" {
			return eris.New("search credentials are required (LEADGEN_SEARCH_KEY, LEADGEN_SEARCH_CX)")
		}

		client := cse.NewClient(cfg.Search.Key, cfg.Search.CX, cse.WithBaseURL(cfg.Search.BaseURL))

		max := searchMax
		if max <= 0 {
			max = cfg.Search.MaxResults
		}

		var opts []cse.SearchOption
		if searchIndiamart {
			opts = append(opts, cse.WithSiteRestrict("indiamart.com"))
		}
		items, err := client.Search(ctx, searchQuery, max, opts...)
		if err != nil {
			return eris.Wrap(err, "search: query")
		}

		rows := make([]model.RawRow, 0, len(items))
		for _, item := range items {
			link := item.Link
			if link == "" {
				link = item.FormattedURL
			}
			rows = append(rows, model.RawRow{
				"website": link,
				"notes":   "google:" + item.Title + " | " + item.Snippet,
			})
		}
		rows = extract.TagSource(rows, "google_search")

		campaign := campaignFromFlags()
		campaign.LeadSource = "Outbound List"
		runID := uuid.NewString()
		res := pipeline.New(pipeline.DefaultDictionaries()).Run(rows, campaign)

		if err := writeScoredCSV(searchScoredOut, res.Scored); err != nil {
			return err
		}
		if err := writeExportCSV(searchExportOut, res.Export); err != nil {
			return err
		}

		zap.L().Info("search complete",
			zap.String("run_id", runID),
			zap.String("query", searchQuery),
			zap.Int("results", len(items)),
			zap.Int("kept", len(res.Kept)),
		)
		return nil
	},
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchQuery, "query", "", "search query (required)")
	f.BoolVar(&searchIndiamart, "indiamart", false, "restrict results to indiamart.com")
	f.IntVar(&searchMax, "max", 0, "max results (0 = config default)")
	f.StringVar(&searchScoredOut, "scored-out", "scored_leads.csv", "path for the full scored CSV")
	f.StringVar(&searchExportOut, "export-out", "hubspot_import.csv", "path for the HubSpot-ready CSV")
	_ = searchCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(searchCmd)
}
