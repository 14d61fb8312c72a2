// Package pipeline implements the lead processing core: column
// normalization, entity deduplication, rule-based scoring, lifecycle
// classification, and the CRM export projection. Every stage is a pure
// function over a fully materialized table.
package pipeline

import (
	"strings"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// columnAliases maps canonicalized source headers onto canonical field
// names. Headers are matched after trimming, lowercasing, and squeezing
// spaces and dashes to underscores, so "E-Mail", "e mail" and "e_mail"
// all resolve the same way.
var columnAliases = map[string]string{
	"company":        "company_name",
	"companyname":    "company_name",
	"account":        "company_name",
	"organization":   "company_name",
	"organisation":   "company_name",
	"name":           "contact_name",
	"contact":        "contact_name",
	"mail":           "email",
	"e_mail":         "email",
	"phone_number":   "phone",
	"mobile":         "phone",
	"site":           "website",
	"url":            "website",
	"state/province": "state",
	"province":       "state",
	"job":            "job_title",
	"title":          "job_title",
	"designation":    "job_title",
	"description":    "notes",
}

// canonicalHeader normalizes a source column header for alias lookup.
func canonicalHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	for strings.Contains(h, "__") {
		h = strings.ReplaceAll(h, "__", "_")
	}
	return h
}

// resolveColumn maps a source header to a canonical field name.
// Returns ("", false) for columns that have no place in the schema.
func resolveColumn(header string) (string, bool) {
	key := canonicalHeader(header)
	if target, ok := columnAliases[key]; ok {
		return target, true
	}
	for _, f := range model.CanonicalFields {
		if key == f {
			return f, true
		}
	}
	return "", false
}

// Normalize maps arbitrary source rows onto the canonical schema. Unmatched
// source columns are dropped, absent canonical fields stay null, and
// malformed input never fails: worst case every field is empty. Normalizing
// an already-canonical table is a no-op.
func Normalize(rows []model.RawRow) model.LeadTable {
	table := make(model.LeadTable, 0, len(rows))
	for _, raw := range rows {
		var rec model.LeadRecord
		for header, value := range raw {
			if field, ok := resolveColumn(header); ok {
				// Later duplicate headers must not clobber an
				// already-populated field with an empty value.
				if value != "" || rec.Field(field) == "" {
					rec.SetField(field, value)
				}
			}
		}
		table = append(table, rec)
	}
	return table
}
