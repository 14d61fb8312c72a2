package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eps-group/leadgen-cli/internal/model"
)

func TestNormalize_AliasMapping(t *testing.T) {
	rows := []model.RawRow{{
		"Company":      "Acme",
		"Name":         "Jane Doe",
		"Mail":         "jane@acme.com",
		"Phone Number": "123",
		"Site":         "acme.com",
		"Province":     "Gujarat",
		"Job":          "Plant Head",
	}}
	table := Normalize(rows)

	assert.Len(t, table, 1)
	assert.Equal(t, "Acme", table[0].CompanyName)
	assert.Equal(t, "Jane Doe", table[0].ContactName)
	assert.Equal(t, "jane@acme.com", table[0].Email)
	assert.Equal(t, "123", table[0].Phone)
	assert.Equal(t, "acme.com", table[0].Website)
	assert.Equal(t, "Gujarat", table[0].State)
	assert.Equal(t, "Plant Head", table[0].JobTitle)
}

func TestNormalize_HeaderInsensitivity(t *testing.T) {
	for _, header := range []string{"E-Mail", "e mail", "  MAIL  ", "e_mail"} {
		table := Normalize([]model.RawRow{{header: "x@y.com"}})
		assert.Equal(t, "x@y.com", table[0].Email, "header %q", header)
	}
}

func TestNormalize_UnmatchedColumnsDropped(t *testing.T) {
	table := Normalize([]model.RawRow{{
		"company": "Acme",
		"fax":     "000",
		"rating":  "5",
	}})
	assert.Equal(t, "Acme", table[0].CompanyName)
	// Unknown columns leave no trace; every other field stays null.
	assert.Empty(t, table[0].Phone)
	assert.Empty(t, table[0].Notes)
}

func TestNormalize_AbsentFieldsNull(t *testing.T) {
	table := Normalize([]model.RawRow{{"company": "Acme"}})
	for _, f := range model.CanonicalFields {
		if f == "company_name" {
			continue
		}
		assert.Empty(t, table[0].Field(f), "field %s", f)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	canonical := []model.RawRow{{
		"company_name": "Acme",
		"contact_name": "Jane",
		"email":        "jane@acme.com",
		"phone":        "1",
		"website":      "acme.com",
		"country":      "India",
		"state":        "MH",
		"city":         "Pune",
		"industry":     "pharma",
		"job_title":    "Director",
		"notes":        "n",
	}}
	once := Normalize(canonical)
	again := Normalize([]model.RawRow{{
		"company_name": once[0].CompanyName,
		"contact_name": once[0].ContactName,
		"email":        once[0].Email,
		"phone":        once[0].Phone,
		"website":      once[0].Website,
		"country":      once[0].Country,
		"state":        once[0].State,
		"city":         once[0].City,
		"industry":     once[0].Industry,
		"job_title":    once[0].JobTitle,
		"notes":        once[0].Notes,
	}})
	assert.Equal(t, once, again)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]model.RawRow{}))
}

func TestNormalize_MalformedRowNeverFails(t *testing.T) {
	table := Normalize([]model.RawRow{{"": "", "???": "junk"}})
	assert.Len(t, table, 1)
	assert.Equal(t, model.LeadRecord{}, table[0])
}

func TestCanonicalHeader(t *testing.T) {
	assert.Equal(t, "phone_number", canonicalHeader("  Phone Number "))
	assert.Equal(t, "e_mail", canonicalHeader("E-Mail"))
	assert.Equal(t, "state/province", canonicalHeader("State/Province"))
}
