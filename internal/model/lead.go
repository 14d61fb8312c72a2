// Package model defines the canonical lead schema shared by every
// pipeline stage and the export projection consumed by CRM sync.
package model

// CustomerType buckets a lead by its role in the buying chain.
type CustomerType string

const (
	CustomerTypeEPC         CustomerType = "EPC"
	CustomerTypeOEM         CustomerType = "OEM"
	CustomerTypeEndUser     CustomerType = "End User"
	CustomerTypeDistributor CustomerType = "Distributor"
	CustomerTypeUnknown     CustomerType = "Unknown"
)

// LifecycleStage is the sales-funnel classification derived from the score.
type LifecycleStage string

const (
	StageLead LifecycleStage = "lead"
	StageMQL  LifecycleStage = "marketingqualifiedlead"
	StageSQL  LifecycleStage = "salesqualifiedlead"
)

// LeadRecord is one row of the working table. The eleven canonical fields
// are nullable strings; the empty string is the null sentinel (no source
// emits a meaningful empty value). Derived fields are populated only by the
// scorer and classifier, never by the normalizer.
type LeadRecord struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Industry    string `json:"industry"`
	JobTitle    string `json:"job_title"`
	Notes       string `json:"notes"`

	LeadScore      int            `json:"lead_score"`
	CustomerType   CustomerType   `json:"customer_type,omitempty"`
	PriorityRegion string         `json:"priority_region,omitempty"`
	CompetitorFlag bool           `json:"competitor_flag"`
	LifecycleStage LifecycleStage `json:"lifecycle_stage,omitempty"`
}

// LeadTable is an ordered batch of records. Order carries no meaning beyond
// acting as the deterministic tie-break during deduplication.
type LeadTable []LeadRecord

// RawRow is an un-normalized source row keyed by whatever headers the
// extractor found. The normalizer maps it onto the canonical schema.
type RawRow map[string]string

// CanonicalFields lists the eleven field keys every normalized record carries.
var CanonicalFields = []string{
	"company_name", "contact_name", "email", "phone", "website",
	"country", "state", "city", "industry", "job_title", "notes",
}

// Field returns the canonical field value by key. Unknown keys return "".
func (r *LeadRecord) Field(key string) string {
	switch key {
	case "company_name":
		return r.CompanyName
	case "contact_name":
		return r.ContactName
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	case "website":
		return r.Website
	case "country":
		return r.Country
	case "state":
		return r.State
	case "city":
		return r.City
	case "industry":
		return r.Industry
	case "job_title":
		return r.JobTitle
	case "notes":
		return r.Notes
	}
	return ""
}

// SetField assigns a canonical field by key. Unknown keys are ignored so
// that normalization can drop unmapped source columns silently.
func (r *LeadRecord) SetField(key, value string) {
	switch key {
	case "company_name":
		r.CompanyName = value
	case "contact_name":
		r.ContactName = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "website":
		r.Website = value
	case "country":
		r.Country = value
	case "state":
		r.State = value
	case "city":
		r.City = value
	case "industry":
		r.Industry = value
	case "job_title":
		r.JobTitle = value
	case "notes":
		r.Notes = value
	}
}
