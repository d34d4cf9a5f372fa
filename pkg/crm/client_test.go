package crm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"email-meeting-triage/pkg/crm"
)

func TestCRMClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Idempotency-Key") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch r.URL.Path {
		case "/api/v1/contacts/sync":
			var req crm.ContactSyncRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Email == "boom@example.com" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"sync_id": "cs-1", "status": "synced"}`))

		case "/api/v1/activities":
			var req crm.ActivityLogRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Kind == "" {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"sync_id": "al-1", "status": "logged"}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := crm.NewClient(ts.URL, "test-token")

	t.Run("SyncContact Success", func(t *testing.T) {
		result, err := client.SyncContact(context.Background(), crm.ContactSyncRequest{
			Name:    "Sarah Johnson",
			Email:   "sarah.j@techcorp.com",
			Company: "TechCorp Inc.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SyncID != "cs-1" || result.Status != "synced" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("SyncContact Error", func(t *testing.T) {
		_, err := client.SyncContact(context.Background(), crm.ContactSyncRequest{
			Email: "boom@example.com",
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("LogActivity Success", func(t *testing.T) {
		result, err := client.LogActivity(context.Background(), crm.ActivityLogRequest{
			ContactEmail: "sarah.j@techcorp.com",
			Kind:         "meeting_scheduled",
			Subject:      "Meeting with Sarah Johnson",
			OccursAt:     "2024-01-15T14:00:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SyncID != "al-1" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("LogActivity Rejected", func(t *testing.T) {
		_, err := client.LogActivity(context.Background(), crm.ActivityLogRequest{
			ContactEmail: "sarah.j@techcorp.com",
		})
		if err == nil {
			t.Fatalf("expected error from 422 response")
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // cancel immediately

		_, err := client.SyncContact(ctx, crm.ContactSyncRequest{Email: "a@b.com"})
		if err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}
