package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldRoundTrip(t *testing.T) {
	var rec LeadRecord
	for i, key := range CanonicalFields {
		rec.SetField(key, key+"-value")
		assert.Equal(t, key+"-value", rec.Field(key), "field %d (%s)", i, key)
	}
}

func TestSetFieldIgnoresUnknownKeys(t *testing.T) {
	rec := LeadRecord{CompanyName: "Acme"}
	rec.SetField("lead_score", "99")
	rec.SetField("random_column", "x")

	assert.Equal(t, "Acme", rec.CompanyName)
	assert.Zero(t, rec.LeadScore)
	assert.Equal(t, "", rec.Field("random_column"))
}

func TestExportRowMatchesColumnOrder(t *testing.T) {
	rec := ExportRecord{
		Company:        "Acme",
		FirstName:      "Priya",
		LastName:       "Sharma",
		Email:          "priya@acme.com",
		LifecycleStage: string(StageMQL),
		CompetitorFlag: "false",
		LeadScore:      72,
		Notes:          "source=event_list",
	}

	row := rec.Row()
	assert.Len(t, row, len(ExportColumns))
	assert.Equal(t, "Acme", row[0])
	assert.Equal(t, "priya@acme.com", row[3])
	assert.Equal(t, "marketingqualifiedlead", row[11])
	assert.Equal(t, "72", row[15])
	assert.Equal(t, "source=event_list", row[16])
}
