package pipeline

import (
	"sort"
	"strings"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// canonKey lowercases and trims an identity-bearing field value.
func canonKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// completenessRank rewards a plausible email (contains "@") and website
// (contains ".") so the most complete row survives within a duplicate group.
func completenessRank(r model.LeadRecord) int {
	rank := 0
	if r.Email != "" && strings.Contains(r.Email, "@") {
		rank += 2
	}
	if r.Website != "" && strings.Contains(r.Website, ".") {
		rank++
	}
	return rank
}

// Dedupe collapses records sharing an identical canonicalized
// (company_name, email) pair, keeping the most complete row per group.
// Records with neither a company name nor an email are never merged:
// absent identity means unknown entity, not same entity. Canonicalized
// company, email, and website values are written back to surviving rows.
func Dedupe(table model.LeadTable) model.LeadTable {
	if len(table) == 0 {
		return table
	}

	work := make(model.LeadTable, len(table))
	copy(work, table)
	for i := range work {
		work[i].CompanyName = canonKey(work[i].CompanyName)
		work[i].Email = canonKey(work[i].Email)
		work[i].Website = canonKey(work[i].Website)
	}

	// Stable sort keeps original relative order as the final tie-break.
	sort.SliceStable(work, func(i, j int) bool {
		if work[i].CompanyName != work[j].CompanyName {
			return work[i].CompanyName < work[j].CompanyName
		}
		return completenessRank(work[i]) > completenessRank(work[j])
	})

	seen := make(map[[2]string]bool, len(work))
	out := make(model.LeadTable, 0, len(work))
	for _, rec := range work {
		if rec.CompanyName == "" && rec.Email == "" {
			out = append(out, rec)
			continue
		}
		key := [2]string{rec.CompanyName, rec.Email}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}
	return out
}
