package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eps-group/leadgen-cli/internal/model"
)

func TestSplitContactName(t *testing.T) {
	first, last := splitContactName("Jane Doe")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Doe", last)

	// Split on the first space only.
	first, last = splitContactName("Dr. Jane Director")
	assert.Equal(t, "Dr.", first)
	assert.Equal(t, "Jane Director", last)

	first, last = splitContactName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)

	first, last = splitContactName("")
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestProject_FieldMapping(t *testing.T) {
	table := model.LeadTable{{
		CompanyName:    "Acme",
		ContactName:    "Jane Doe",
		Email:          "jane@acme.com",
		Phone:          "123",
		Website:        "acme.com",
		Country:        "India",
		State:          "MH",
		City:           "Pune",
		Industry:       "pharma",
		JobTitle:       "Director",
		Notes:          "n",
		LeadScore:      82,
		PriorityRegion: "India",
		CompetitorFlag: true,
		LifecycleStage: model.StageSQL,
	}}
	out := Project(table, "Indiamart")

	assert.Len(t, out, 1)
	e := out[0]
	assert.Equal(t, "Acme", e.Company)
	assert.Equal(t, "Jane", e.FirstName)
	assert.Equal(t, "Doe", e.LastName)
	assert.Equal(t, "Director", e.JobTitle)
	assert.Equal(t, "salesqualifiedlead", e.LifecycleStage)
	assert.Equal(t, "Indiamart", e.LeadSource)
	assert.Equal(t, "true", e.CompetitorFlag)
	assert.Equal(t, 82, e.LeadScore)
}

func TestProject_MissingInputsBecomeEmpty(t *testing.T) {
	out := Project(model.LeadTable{{}}, "Event")
	e := out[0]
	assert.Empty(t, e.Company)
	assert.Empty(t, e.FirstName)
	assert.Empty(t, e.LastName)
	assert.Equal(t, "false", e.CompetitorFlag)
	// Unclassified records export as plain leads.
	assert.Equal(t, "lead", e.LifecycleStage)
	assert.Equal(t, "Event", e.LeadSource)
}

func TestExportRecord_Row(t *testing.T) {
	e := model.ExportRecord{Company: "Acme", LeadScore: 60, CompetitorFlag: "false", LifecycleStage: "lead"}
	row := e.Row()
	assert.Len(t, row, len(model.ExportColumns))
	assert.Equal(t, "Acme", row[0])
	assert.Equal(t, "60", row[15])
}
