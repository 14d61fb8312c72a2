package pipeline

import (
	"strconv"
	"strings"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// splitContactName separates a contact into first and last name on the
// first space. No space means the whole value is the first name.
func splitContactName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	if i := strings.Index(name, " "); i >= 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}

// Project remaps scored records to the external CRM column schema, stamping
// every row with the caller's lead source. It never fails; missing inputs
// become empty strings and an unclassified record exports as stage "lead".
func Project(table model.LeadTable, leadSource string) []model.ExportRecord {
	out := make([]model.ExportRecord, 0, len(table))
	for _, rec := range table {
		first, last := splitContactName(rec.ContactName)
		stage := rec.LifecycleStage
		if stage == "" {
			stage = model.StageLead
		}
		out = append(out, model.ExportRecord{
			Company:        rec.CompanyName,
			FirstName:      first,
			LastName:       last,
			Email:          rec.Email,
			Phone:          rec.Phone,
			Website:        rec.Website,
			City:           rec.City,
			State:          rec.State,
			Country:        rec.Country,
			JobTitle:       rec.JobTitle,
			Industry:       rec.Industry,
			LifecycleStage: string(stage),
			LeadSource:     leadSource,
			PriorityRegion: rec.PriorityRegion,
			CompetitorFlag: strconv.FormatBool(rec.CompetitorFlag),
			LeadScore:      rec.LeadScore,
			Notes:          rec.Notes,
		})
	}
	return out
}
