package pipeline

import "github.com/eps-group/leadgen-cli/internal/model"

// stageFor maps a lead score to its funnel stage. Thresholds are inclusive
// lower bounds: 80 qualifies for sales, 65 for marketing.
func stageFor(score int) model.LifecycleStage {
	switch {
	case score >= 80:
		return model.StageSQL
	case score >= 65:
		return model.StageMQL
	default:
		return model.StageLead
	}
}

// Classify assigns a lifecycle stage to every record as a pure function of
// lead_score. The input table is not mutated.
func Classify(table model.LeadTable) model.LeadTable {
	out := make(model.LeadTable, len(table))
	for i, rec := range table {
		rec.LifecycleStage = stageFor(rec.LeadScore)
		out[i] = rec
	}
	return out
}
