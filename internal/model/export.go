package model

import "strconv"

// ExportRecord is a lead projected into the external CRM column schema.
// All values are strings; missing inputs become empty strings.
type ExportRecord struct {
	Company        string `json:"company"`
	FirstName      string `json:"firstname"`
	LastName       string `json:"lastname"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Website        string `json:"website"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	JobTitle       string `json:"jobtitle"`
	Industry       string `json:"industry"`
	LifecycleStage string `json:"lifecyclestage"`
	LeadSource     string `json:"lead_source"`
	PriorityRegion string `json:"priority_region"`
	CompetitorFlag string `json:"competitor_flag"`
	LeadScore      int    `json:"lead_score"`
	Notes          string `json:"notes"`
}

// ExportColumns is the CRM import column order.
var ExportColumns = []string{
	"company", "firstname", "lastname", "email", "phone", "website",
	"city", "state", "country", "jobtitle", "industry", "lifecyclestage",
	"lead_source", "priority_region", "competitor_flag", "lead_score", "notes",
}

// Row renders the record as CSV cells in ExportColumns order.
func (e ExportRecord) Row() []string {
	return []string{
		e.Company, e.FirstName, e.LastName, e.Email, e.Phone, e.Website,
		e.City, e.State, e.Country, e.JobTitle, e.Industry, e.LifecycleStage,
		e.LeadSource, e.PriorityRegion, e.CompetitorFlag,
		strconv.Itoa(e.LeadScore), e.Notes,
	}
}
