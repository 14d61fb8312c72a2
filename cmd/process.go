package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eps-group/leadgen-cli/internal/extract"
	"github.com/eps-group/leadgen-cli/internal/model"
	"github.com/eps-group/leadgen-cli/internal/pipeline"
)

var (
	processInputs     []string
	processSource     string
	processMinScore   int
	processIndustries []string
	processRegions    []string
	processProducts   []string
	processScoredOut  string
	processExportOut  string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the scoring pipeline on lead files",
	Long: `Extracts raw rows from one or more lead files (CSV, XLSX, HTML, PDF),
normalizes them onto the canonical schema, deduplicates, scores against the
campaign dictionaries, classifies lifecycle stages, and writes a scored CSV
plus a HubSpot-ready CSV of the leads above the score threshold.

Examples:
  # Score an uploaded CSV with config-default campaign settings
  leadgen-cli process --input leads.csv

  # Event list + marketplace pages, stricter threshold
  leadgen-cli process --input expo.xlsx --input suppliers.html \
    --source event_list --min-score 75 --export-out hubspot.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		// Extract all inputs concurrently; per-file row order is kept so
		// the dedupe tie-break stays deterministic.
		perFile := make([][]model.RawRow, len(processInputs))
		g, _ := errgroup.WithContext(ctx)
		for i, path := range processInputs {
			i, path := i, path
			g.Go(func() error {
				rows, err := extract.FromFile(path)
				if err != nil {
					return eris.Wrapf(err, "process: extract %s", path)
				}
				perFile[i] = rows
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		var rows []model.RawRow
		for _, fr := range perFile {
			rows = append(rows, fr...)
		}
		if processSource != "" {
			rows = extract.TagSource(rows, processSource)
		}

		campaign := campaignFromFlags()
		runID := uuid.NewString()
		res := pipeline.New(pipeline.DefaultDictionaries()).Run(rows, campaign)

		if err := writeScoredCSV(processScoredOut, res.Scored); err != nil {
			return err
		}
		if err := writeExportCSV(processExportOut, res.Export); err != nil {
			return err
		}

		zap.L().Info("process complete",
			zap.String("run_id", runID),
			zap.Int("files", len(processInputs)),
			zap.Int("raw_rows", len(rows)),
			zap.Int("scored", len(res.Scored)),
			zap.Int("kept", len(res.Kept)),
			zap.String("scored_csv", processScoredOut),
			zap.String("export_csv", processExportOut),
		)
		return nil
	},
}

// campaignFromFlags merges config defaults with per-invocation overrides.
func campaignFromFlags() pipeline.Campaign {
	c := pipeline.Campaign{
		IndustryFocus: cfg.Campaign.IndustryFocus,
		Regions:       cfg.Campaign.Regions,
		ProductNeeds:  cfg.Campaign.ProductNeeds,
		MinScore:      cfg.Campaign.MinScore,
		LeadSource:    cfg.Campaign.LeadSource,
	}
	if len(processIndustries) > 0 {
		c.IndustryFocus = processIndustries
	}
	if len(processRegions) > 0 {
		c.Regions = processRegions
	}
	if len(processProducts) > 0 {
		c.ProductNeeds = processProducts
	}
	if processMinScore >= 0 {
		c.MinScore = processMinScore
	}
	if processSource != "" {
		c.LeadSource = processSource
	}
	return c
}

// writeScoredCSV writes the full scored table, derived fields included.
func writeScoredCSV(path string, table model.LeadTable) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "process: create scored csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{}, model.CanonicalFields...)
	header = append(header, "lead_score", "customer_type", "priority_region", "competitor_flag", "lifecycle_stage")
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "process: write scored header")
	}
	for _, rec := range table {
		row := make([]string, 0, len(header))
		for _, field := range model.CanonicalFields {
			row = append(row, rec.Field(field))
		}
		row = append(row,
			strconv.Itoa(rec.LeadScore),
			string(rec.CustomerType),
			rec.PriorityRegion,
			strconv.FormatBool(rec.CompetitorFlag),
			string(rec.LifecycleStage),
		)
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "process: write scored row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "process: flush scored csv")
}

// writeExportCSV writes the HubSpot-ready projection.
func writeExportCSV(path string, records []model.ExportRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "process: create export csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.ExportColumns); err != nil {
		return eris.Wrap(err, "process: write export header")
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return eris.Wrap(err, "process: write export row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "process: flush export csv")
}

func init() {
	f := processCmd.Flags()
	f.StringSliceVar(&processInputs, "input", nil, "lead file (csv/xlsx/xls/html/htm/pdf); repeatable")
	f.StringVar(&processSource, "source", "", "lead source label stamped on rows and export")
	f.IntVar(&processMinScore, "min-score", -1, "minimum score to keep (-1 = config default)")
	f.StringSliceVar(&processIndustries, "industries", nil, "industry focus override")
	f.StringSliceVar(&processRegions, "regions", nil, "priority regions override")
	f.StringSliceVar(&processProducts, "products", nil, "product/process focus override")
	f.StringVar(&processScoredOut, "scored-out", "scored_leads.csv", "path for the full scored CSV")
	f.StringVar(&processExportOut, "export-out", "hubspot_import.csv", "path for the HubSpot-ready CSV")
	_ = processCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(processCmd)
}
