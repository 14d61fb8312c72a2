package pipeline

import (
	"go.uber.org/zap"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// Result bundles the outputs of a full pipeline run.
type Result struct {
	// Scored is the deduplicated table with all derived fields populated.
	Scored model.LeadTable
	// Kept is the subset of Scored at or above the campaign's minimum score.
	Kept model.LeadTable
	// Export is Kept projected into the CRM column schema.
	Export []model.ExportRecord
}

// Pipeline wires the stages together. Stages always run in the same order:
// normalize, dedupe, score, classify, threshold filter, project.
type Pipeline struct {
	scorer *Scorer
}

// New builds a pipeline over the given dictionaries.
func New(dicts Dictionaries) *Pipeline {
	return &Pipeline{scorer: NewScorer(dicts)}
}

// Run processes a raw batch end to end. An empty input yields an empty
// result, never an error: zero usable rows means no leads.
func (p *Pipeline) Run(rows []model.RawRow, c Campaign) Result {
	table := Normalize(rows)
	table = Dedupe(table)
	table = p.scorer.Score(table, c)
	table = Classify(table)

	kept := make(model.LeadTable, 0, len(table))
	for _, rec := range table {
		if rec.LeadScore >= c.MinScore {
			kept = append(kept, rec)
		}
	}

	zap.L().Info("pipeline: run complete",
		zap.Int("input_rows", len(rows)),
		zap.Int("after_dedupe", len(table)),
		zap.Int("above_threshold", len(kept)),
		zap.Int("min_score", c.MinScore),
	)

	return Result{
		Scored: table,
		Kept:   kept,
		Export: Project(kept, c.LeadSource),
	}
}
