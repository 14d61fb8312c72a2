package hubspot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type objectRef struct {
	ID string `json:"id"`
}

type searchResults struct {
	Results []objectRef `json:"results"`
}

// contactProperties maps a Contact onto HubSpot property names.
func contactProperties(c Contact) map[string]string {
	return map[string]string{
		"email":           c.Email,
		"firstname":       c.FirstName,
		"lastname":        c.LastName,
		"phone":           c.Phone,
		"jobtitle":        c.JobTitle,
		"lifecyclestage":  c.LifecycleStage,
		"website":         c.Website,
		"city":            c.City,
		"state":           c.State,
		"country":         c.Country,
		"industry":        c.Industry,
		"lead_source":     c.LeadSource,
		"priority_region": c.PriorityRegion,
		"competitor_flag": c.CompetitorFlag,
		"notes":           c.Notes,
		"lead_score":      strconv.Itoa(c.LeadScore),
	}
}

func (c *httpClient) EnsureCompany(ctx context.Context, domain, name string) (string, error) {
	if domain != "" {
		q := url.Values{}
		q.Set("limit", "1")
		q.Set("properties", "domain")
		q.Set("q", domain)
		body, status, err := c.do(ctx, http.MethodGet, "/crm/v3/objects/companies", q, nil)
		if err != nil {
			return "", eris.Wrap(err, "hubspot: search company")
		}
		if status == http.StatusOK {
			var found searchResults
			if err := json.Unmarshal(body, &found); err == nil && len(found.Results) > 0 {
				return found.Results[0].ID, nil
			}
		}
	}

	payload := map[string]any{
		"properties": map[string]string{"domain": domain, "name": name},
	}
	body, status, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/companies", nil, payload)
	if err != nil {
		return "", eris.Wrap(err, "hubspot: create company")
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return "", eris.Errorf("hubspot: create company status %d: %s", status, string(body))
	}
	var created objectRef
	if err := json.Unmarshal(body, &created); err != nil {
		return "", eris.Wrap(err, "hubspot: decode company")
	}
	return created.ID, nil
}

func (c *httpClient) UpsertContact(ctx context.Context, contact Contact, companyID string) (string, bool, error) {
	props := map[string]any{"properties": contactProperties(contact)}

	var contactID string
	created := false

	if contact.Email != "" {
		q := url.Values{}
		q.Set("limit", "1")
		q.Set("properties", "email")
		q.Set("q", contact.Email)
		body, status, err := c.do(ctx, http.MethodGet, "/crm/v3/objects/contacts", q, nil)
		if err != nil {
			return "", false, eris.Wrap(err, "hubspot: search contact")
		}
		if status == http.StatusOK {
			var found searchResults
			if err := json.Unmarshal(body, &found); err == nil && len(found.Results) > 0 {
				contactID = found.Results[0].ID
			}
		}
	}

	if contactID != "" {
		body, status, err := c.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+contactID, nil, props)
		if err != nil {
			return "", false, eris.Wrap(err, "hubspot: update contact")
		}
		if status != http.StatusOK {
			return "", false, eris.Errorf("hubspot: update contact status %d: %s", status, string(body))
		}
	} else {
		body, status, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", nil, props)
		if err != nil {
			return "", false, eris.Wrap(err, "hubspot: create contact")
		}
		if status != http.StatusCreated && status != http.StatusOK {
			return "", false, eris.Errorf("hubspot: create contact status %d: %s", status, string(body))
		}
		var obj objectRef
		if err := json.Unmarshal(body, &obj); err != nil {
			return "", false, eris.Wrap(err, "hubspot: decode contact")
		}
		contactID = obj.ID
		created = true
	}

	if companyID != "" {
		path := "/crm/v3/objects/contacts/" + contactID + "/associations/companies/" + companyID + "/contact_to_company"
		if _, _, err := c.do(ctx, http.MethodPut, path, nil, nil); err != nil {
			// Association failure is not worth failing the sync over.
			zap.L().Warn("hubspot: associate contact failed",
				zap.String("contact_id", contactID),
				zap.String("company_id", companyID),
				zap.Error(err),
			)
		}
	}

	return contactID, created, nil
}

// SyncAll upserts every contact, resolving its company first when the row
// carries a company name or website domain. Company resolution failures are
// logged and skipped so one bad row cannot sink the batch.
func (c *httpClient) SyncAll(ctx context.Context, contacts []Contact) (*SyncResult, error) {
	res := &SyncResult{}
	for _, contact := range contacts {
		domain := Domain(contact.Website)

		var companyID string
		if contact.Company != "" || domain != "" {
			name := contact.Company
			if name == "" {
				name = domain
			}
			id, err := c.EnsureCompany(ctx, domain, name)
			if err != nil {
				zap.L().Warn("hubspot: company resolution failed",
					zap.String("company", contact.Company),
					zap.String("domain", domain),
					zap.Error(err),
				)
			} else {
				companyID = id
				res.CompaniesCreated++
			}
		}

		_, created, err := c.UpsertContact(ctx, contact, companyID)
		if err != nil {
			return res, eris.Wrap(err, "hubspot: sync contact")
		}
		if created {
			res.ContactsCreated++
		} else {
			res.ContactsUpdated++
		}
	}
	return res, nil
}
