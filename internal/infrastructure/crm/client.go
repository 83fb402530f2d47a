// Package crm implements the REST client for the GHL-style CRM the quoting
// backend is embedded in. Calls authorize with the stored OAuth credential,
// refreshing it through the token endpoint when it has expired.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"

	contactuc "quotecraft/internal/application/contact/usecases"
	purchaseuc "quotecraft/internal/application/purchase/usecases"
	"quotecraft/internal/domain/crmauth"
	"quotecraft/internal/shared/config"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

const (
	requestTimeout = 15 * time.Second
	// invoiceDueDays is how far past the issue date an invoice falls due.
	invoiceDueDays = 2
	// maxResponseSize caps CRM response bodies (1MB).
	maxResponseSize = 1 << 20
)

type Client struct {
	httpClient *http.Client
	cfg        *config.CRMConfig
	credRepo   crmauth.Repository
	logger     logger.Interface
}

func NewClient(cfg *config.CRMConfig, credRepo crmauth.Repository, logger logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		cfg:        cfg,
		credRepo:   credRepo,
		logger:     logger,
	}
}

var (
	_ purchaseuc.CRMGateway   = (*Client)(nil)
	_ contactuc.InvoiceIssuer = (*Client)(nil)
)

// UpdateContactFields writes custom field values onto a CRM contact.
func (c *Client) UpdateContactFields(ctx context.Context, contactID string, fields []purchaseuc.CustomFieldUpdate) error {
	body := map[string]interface{}{"customFields": fields}
	return c.do(ctx, http.MethodPut, "/contacts/"+url.PathEscape(contactID), body, nil)
}

// AddTags appends tags to a CRM contact. Existing tags are preserved by the
// CRM side.
func (c *Client) AddTags(ctx context.Context, contactID string, tags ...string) error {
	if len(tags) == 0 {
		return nil
	}
	body := map[string]interface{}{"tags": tags}
	return c.do(ctx, http.MethodPost, "/contacts/"+url.PathEscape(contactID)+"/tags", body, nil)
}

type productSearchResponse struct {
	Products []struct {
		ID string `json:"_id"`
	} `json:"products"`
}

type productCreateResponse struct {
	ID string `json:"_id"`
}

// GetOrCreateProduct resolves a CRM product by name, creating it when the
// search comes back empty.
func (c *Client) GetOrCreateProduct(ctx context.Context, locationID, name string, price decimal.Decimal) (string, error) {
	query := url.Values{}
	query.Set("locationId", locationID)
	query.Set("search", name)

	var search productSearchResponse
	if err := c.do(ctx, http.MethodGet, "/products/?"+query.Encode(), nil, &search); err != nil {
		// A failed search still allows a create attempt; the worst case is
		// a duplicate product, which the CRM tolerates.
		c.logger.Warnw("product search failed, attempting create", "error", err, "product_name", name)
	} else if len(search.Products) > 0 {
		return search.Products[0].ID, nil
	}

	body := map[string]interface{}{
		"name":             name,
		"locationId":       locationID,
		"description":      "Auto-created product: " + name,
		"productType":      "SERVICE",
		"availableInStore": true,
		"isTaxesEnabled":   false,
		"isLabelEnabled":   false,
		"slug":             slugify(name),
	}
	var created productCreateResponse
	if err := c.do(ctx, http.MethodPost, "/products/", body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

type invoiceCreateResponse struct {
	ID string `json:"_id"`
}

// CreateInvoice raises a one-item invoice against a contact, due two days
// after issue.
func (c *Client) CreateInvoice(ctx context.Context, req contactuc.InvoiceRequest) (string, error) {
	now := time.Now()
	issueDate := now.Format("2006-01-02")
	dueDate := now.AddDate(0, 0, invoiceDueDays).Format("2006-01-02")

	// The invoice API takes amounts in cents.
	amountCents := req.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	businessName := req.BusinessName
	if businessName == "" {
		businessName = "Business Name"
	}

	body := map[string]interface{}{
		"altId":    req.LocationID,
		"altType":  "location",
		"name":     fmt.Sprintf("%s - %s", req.ProductName, req.ContactName),
		"currency": "USD",
		"businessDetails": map[string]interface{}{
			"name": businessName,
		},
		"items": []map[string]interface{}{
			{
				"name":         req.ProductName,
				"description":  "Service: " + req.ProductName,
				"productId":    req.ProductID,
				"currency":     "USD",
				"amount":       amountCents,
				"qty":          1,
				"type":         "one_time",
				"taxInclusive": false,
			},
		},
		"discount": map[string]interface{}{
			"value": 0.0,
			"type":  "percentage",
		},
		"title": "INVOICE",
		"contactDetails": map[string]interface{}{
			"id":      req.ContactID,
			"name":    req.ContactName,
			"phoneNo": req.ContactPhone,
			"email":   req.ContactEmail,
			"address": map[string]interface{}{
				"addressLine1": req.Address1,
				"city":         req.City,
				"state":        req.State,
				"countryCode":  req.Country,
				"postalCode":   "",
			},
		},
		"issueDate":             issueDate,
		"dueDate":               dueDate,
		"liveMode":              true,
		"automaticTaxesEnabled": false,
		"invoiceNumberPrefix":   "INV-",
	}
	if req.ContactEmail != "" {
		body["sentTo"] = map[string]interface{}{"email": []string{req.ContactEmail}}
	}

	var created invoiceCreateResponse
	if err := c.do(ctx, http.MethodPost, "/invoices/", body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// do runs one authorized CRM call and decodes the response into out when it
// is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode crm request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build crm request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Version", c.cfg.APIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewExternalServiceError("crm request failed", err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.NewExternalServiceError("failed to read crm response", err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warnw("crm call rejected",
			"method", method, "path", path, "status", resp.StatusCode, "body", string(raw))
		return errors.NewExternalServiceError(
			fmt.Sprintf("crm returned status %d", resp.StatusCode), string(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.NewExternalServiceError("failed to decode crm response", err.Error())
		}
	}
	return nil
}

// accessToken returns a live bearer token, refreshing the stored credential
// through the OAuth token endpoint when it has expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	cred, err := c.credRepo.GetLatest(ctx)
	if err != nil {
		return "", err
	}

	if !cred.Expired(time.Now()) {
		return cred.AccessToken, nil
	}

	oauthCfg := &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.cfg.AuthURL,
			TokenURL: c.cfg.TokenURL,
		},
	}
	stale := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		Expiry:       cred.ExpiresAt,
	}

	fresh, err := oauthCfg.TokenSource(ctx, stale).Token()
	if err != nil {
		return "", errors.NewExternalServiceError("failed to refresh crm token", err.Error())
	}

	if fresh.AccessToken != cred.AccessToken {
		cred.AccessToken = fresh.AccessToken
		if fresh.RefreshToken != "" {
			cred.RefreshToken = fresh.RefreshToken
		}
		cred.ExpiresAt = fresh.Expiry
		if err := c.credRepo.Upsert(ctx, cred); err != nil {
			c.logger.Warnw("failed to persist refreshed crm token", "error", err)
		}
	}

	return fresh.AccessToken, nil
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}
