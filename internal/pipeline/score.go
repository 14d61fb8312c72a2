package pipeline

import (
	"strings"

	"go.uber.org/zap"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// Campaign carries the caller-supplied scoring configuration: which
// industries, regions, and product lines the current outreach targets,
// plus the score threshold and source label applied after scoring.
type Campaign struct {
	IndustryFocus []string `json:"industry_focus"`
	Regions       []string `json:"regions"`
	ProductNeeds  []string `json:"product_needs"`
	MinScore      int      `json:"min_score"`
	LeadSource    string   `json:"lead_source"`
}

// A Rule computes one additive score contribution from a pristine copy of
// the record. Rules never see each other's output; the scorer folds their
// contributions and clamps the sum to [0,100] once at the end.
type Rule struct {
	Name  string
	Score func(s *Scorer, in model.LeadRecord, c Campaign) int
}

// decisionMakerTitles are substrings of contact names that hint at buying
// authority.
var decisionMakerTitles = []string{
	"director", "manager", "head", "vp", "chief", "owner",
	"ceo", "cto", "operations", "procurement", "maintenance", "project",
}

// freeMailDomains are consumer mail providers; a corporate domain is worth
// more than a free one.
var freeMailDomains = []string{"@gmail.", "@yahoo.", "@hotmail.", "@outlook."}

// Scorer evaluates the rule set against each record of a table.
type Scorer struct {
	dicts Dictionaries
	rules []Rule
}

// NewScorer builds a scorer over the given keyword dictionaries.
func NewScorer(dicts Dictionaries) *Scorer {
	s := &Scorer{dicts: dicts}
	s.rules = []Rule{
		{Name: "has_email", Score: ruleHasEmail},
		{Name: "has_phone", Score: ruleHasPhone},
		{Name: "has_website", Score: ruleHasWebsite},
		{Name: "industry_fit", Score: ruleIndustryFit},
		{Name: "product_fit", Score: ruleProductFit},
		{Name: "region_fit", Score: ruleRegionFit},
		{Name: "decision_maker", Score: ruleDecisionMaker},
		{Name: "email_domain", Score: ruleEmailDomain},
		{Name: "competitor", Score: ruleCompetitor},
	}
	return s
}

// Rules exposes the rule set, mainly so callers can log or inspect it.
func (s *Scorer) Rules() []Rule { return s.rules }

// Score computes lead_score, customer_type, priority_region, and
// competitor_flag for every record. Contributions are additive, read from a
// pristine copy of the row, and the sum is clamped to [0,100] once at the
// end. The input table is not mutated.
func (s *Scorer) Score(table model.LeadTable, c Campaign) model.LeadTable {
	out := make(model.LeadTable, len(table))
	for i, rec := range table {
		in := rec // pristine copy read by every rule

		total := 0
		for _, rule := range s.rules {
			total += rule.Score(s, in, c)
		}

		rec.LeadScore = clampScore(total)
		rec.PriorityRegion, _ = s.priorityRegion(in, c)
		rec.CompetitorFlag = s.competitorMention(in)
		rec.CustomerType = s.customerType(in)
		out[i] = rec
	}
	zap.L().Debug("scorer: batch scored",
		zap.Int("records", len(out)),
		zap.Int("rules", len(s.rules)),
	)
	return out
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// containsAny reports whether any keyword appears as a case-insensitive
// substring of the haystack.
func containsAny(haystack string, keywords []string) bool {
	h := strings.ToLower(haystack)
	for _, k := range keywords {
		if k != "" && strings.Contains(h, k) {
			return true
		}
	}
	return false
}

func joinFields(parts ...string) string {
	return strings.Join(parts, " ")
}

func ruleHasEmail(_ *Scorer, in model.LeadRecord, _ Campaign) int {
	if in.Email != "" {
		return 10
	}
	return 0
}

func ruleHasPhone(_ *Scorer, in model.LeadRecord, _ Campaign) int {
	if in.Phone != "" {
		return 5
	}
	return 0
}

func ruleHasWebsite(_ *Scorer, in model.LeadRecord, _ Campaign) int {
	if in.Website != "" {
		return 5
	}
	return 0
}

// ruleIndustryFit awards 15 points per matching focus industry, uncapped:
// a lead straddling two target industries is worth more than one in either.
func ruleIndustryFit(s *Scorer, in model.LeadRecord, c Campaign) int {
	hay := joinFields(in.Industry, in.Notes)
	points := 0
	for _, ind := range c.IndustryFocus {
		if containsAny(hay, s.dicts.Industry[ind]) {
			points += 15
		}
	}
	return points
}

// ruleProductFit awards 15 points per matching focus product or process.
func ruleProductFit(s *Scorer, in model.LeadRecord, c Campaign) int {
	hay := joinFields(in.Notes, in.Website)
	points := 0
	for _, p := range c.ProductNeeds {
		if containsAny(hay, s.dicts.Product[p]) {
			points += 15
		}
	}
	return points
}

func ruleRegionFit(s *Scorer, in model.LeadRecord, c Campaign) int {
	if _, ok := s.priorityRegion(in, c); ok {
		return 10
	}
	return 0
}

func ruleDecisionMaker(_ *Scorer, in model.LeadRecord, _ Campaign) int {
	if containsAny(in.ContactName, decisionMakerTitles) {
		return 10
	}
	return 0
}

// ruleEmailDomain always contributes: -5 for a free-mail address, +5
// otherwise. A null email cannot match a free domain, so it earns the +5.
func ruleEmailDomain(_ *Scorer, in model.LeadRecord, _ Campaign) int {
	if containsAny(in.Email, freeMailDomains) {
		return -5
	}
	return 5
}

func ruleCompetitor(s *Scorer, in model.LeadRecord, _ Campaign) int {
	if s.competitorMention(in) {
		return -20
	}
	return 0
}

// priorityRegion returns the first configured region, in the caller's list
// order, whose hint set matches the record's location and contact text.
func (s *Scorer) priorityRegion(in model.LeadRecord, c Campaign) (string, bool) {
	hay := joinFields(in.Country, in.State, in.City, in.Email, in.Website)
	for _, reg := range c.Regions {
		if containsAny(hay, s.dicts.Region[reg]) {
			return reg, true
		}
	}
	return "", false
}

func (s *Scorer) competitorMention(in model.LeadRecord) bool {
	hay := joinFields(in.Notes, in.Website, in.CompanyName)
	return containsAny(hay, s.dicts.Competitors)
}

// customerType probes the types in fixed priority order; the first match
// wins and the classification never moves the score.
func (s *Scorer) customerType(in model.LeadRecord) model.CustomerType {
	hay := joinFields(in.Industry, in.JobTitle, in.Notes, in.CompanyName)
	for _, ct := range customerTypeOrder {
		if containsAny(hay, s.dicts.CustomerType[ct]) {
			return ct
		}
	}
	return model.CustomerTypeUnknown
}
