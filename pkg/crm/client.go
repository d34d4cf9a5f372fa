package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client is the HTTP wrapper for a generic CRM sync endpoint. Sync calls are
// one-way: the triage flow fires them and logs failures without blocking.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a CRM client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ContactSyncRequest upserts a contact derived from a parsed email.
type ContactSyncRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// ActivityLogRequest records a meeting-related activity against a contact.
type ActivityLogRequest struct {
	ContactEmail string `json:"contact_email"`
	Kind         string `json:"kind"` // "meeting_scheduled", "meeting_rescheduled", "meeting_cancelled"
	Subject      string `json:"subject"`
	OccursAt     string `json:"occurs_at,omitempty"` // RFC3339
	Notes        string `json:"notes,omitempty"`
}

// SyncResult is the CRM's acknowledgement of a sync call.
type SyncResult struct {
	SyncID string `json:"sync_id"`
	Status string `json:"status"`
}

// SyncContact upserts a contact via POST /api/v1/contacts/sync.
func (c *Client) SyncContact(ctx context.Context, req ContactSyncRequest) (*SyncResult, error) {
	return c.post(ctx, "/api/v1/contacts/sync", req)
}

// LogActivity records an activity via POST /api/v1/activities.
func (c *Client) LogActivity(ctx context.Context, req ActivityLogRequest) (*SyncResult, error) {
	return c.post(ctx, "/api/v1/activities", req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*SyncResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal crm request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build crm request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	// Lets the CRM side deduplicate retried deliveries.
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call crm API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("crm API error %d: %s", resp.StatusCode, string(raw))
	}

	var result SyncResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode crm response: %w", err)
	}
	return &result, nil
}
