package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eps-group/leadgen-cli/internal/extract"
	"github.com/eps-group/leadgen-cli/pkg/hubspot"
)

var syncCSVPath string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push a HubSpot-ready CSV into HubSpot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.HubSpot.Token == "" {
			return eris.New("hubspot token is required (LEADGEN_HUBSPOT_TOKEN)")
		}

		rows, err := extract.ReadCSVFile(syncCSVPath)
		if err != nil {
			return eris.Wrap(err, "sync: read csv")
		}

		contacts := make([]hubspot.Contact, 0, len(rows))
		for _, row := range rows {
			score, _ := strconv.Atoi(row["lead_score"])
			contacts = append(contacts, hubspot.Contact{
				Company:        row["company"],
				FirstName:      row["firstname"],
				LastName:       row["lastname"],
				Email:          row["email"],
				Phone:          row["phone"],
				Website:        row["website"],
				City:           row["city"],
				State:          row["state"],
				Country:        row["country"],
				JobTitle:       row["jobtitle"],
				Industry:       row["industry"],
				LifecycleStage: row["lifecyclestage"],
				LeadSource:     row["lead_source"],
				PriorityRegion: row["priority_region"],
				CompetitorFlag: row["competitor_flag"],
				LeadScore:      score,
				Notes:          row["notes"],
			})
		}

		client := hubspot.NewClient(cfg.HubSpot.Token,
			hubspot.WithBaseURL(cfg.HubSpot.BaseURL),
			hubspot.WithRateLimit(cfg.HubSpot.RequestsPerSec),
		)
		res, err := client.SyncAll(ctx, contacts)
		if err != nil {
			return eris.Wrap(err, "sync: push contacts")
		}

		zap.L().Info("sync complete",
			zap.String("csv", syncCSVPath),
			zap.Int("contacts_created", res.ContactsCreated),
			zap.Int("contacts_updated", res.ContactsUpdated),
			zap.Int("companies_created", res.CompaniesCreated),
		)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncCSVPath, "csv", "", "path to HubSpot-ready CSV (required)")
	_ = syncCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(syncCmd)
}
