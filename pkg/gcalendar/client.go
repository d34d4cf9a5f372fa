package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a client from a credentials JSON file
// (Service Account or OAuth Desktop with a saved token.json).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a client from raw credentials bytes.
// Service Account JSON is tried first, then OAuth installed-app credentials
// paired with a token.json in the working directory.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("OAuth Desktop credentials need a token.json: run scripts/gcal-auth first")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a calendar event and returns a simplified view of it.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	for _, a := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: a})
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	out := fromAPIEvent(created)
	out.StartTime = req.StartTime
	out.EndTime = req.EndTime
	return &out, nil
}

// ListEvents returns events in [TimeMin, TimeMax), ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	max := req.MaxResults
	if max <= 0 {
		max = 50
	}

	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(max)

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, fromAPIEvent(item))
	}
	return events, nil
}

// FreeBusy returns the busy intervals on a calendar inside [timeMin, timeMax).
func (c *Client) FreeBusy(ctx context.Context, calID string, timeMin, timeMax time.Time) ([]BusyInterval, error) {
	calID = calendarID(calID)
	resp, err := c.service.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[calID]
	if !ok {
		return nil, nil
	}

	intervals := make([]BusyInterval, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		start, startErr := time.Parse(time.RFC3339, b.Start)
		end, endErr := time.Parse(time.RFC3339, b.End)
		if startErr != nil || endErr != nil {
			continue
		}
		intervals = append(intervals, BusyInterval{Start: start, End: end})
	}
	return intervals, nil
}

// MoveEvent shifts an existing event to a new start/end time.
func (c *Client) MoveEvent(ctx context.Context, req MoveEventRequest) (*Event, error) {
	calID := calendarID(req.CalendarID)

	existing, err := c.service.Events.Get(calID, req.EventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", req.EventID, err)
	}

	existing.Start = &calendar.EventDateTime{
		DateTime: req.StartTime.Format(time.RFC3339),
		TimeZone: req.Timezone,
	}
	existing.End = &calendar.EventDateTime{
		DateTime: req.EndTime.Format(time.RFC3339),
		TimeZone: req.Timezone,
	}
	if req.Reason != "" {
		existing.Description = appendNote(existing.Description, "Rescheduled: "+req.Reason)
	}

	updated, err := c.service.Events.Update(calID, req.EventID, existing).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", req.EventID, err)
	}

	out := fromAPIEvent(updated)
	out.StartTime = req.StartTime
	out.EndTime = req.EndTime
	return &out, nil
}

// DeleteEvent removes an event from the calendar.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func appendNote(description, note string) string {
	if description == "" {
		return note
	}
	return description + "\n\n" + note
}

func fromAPIEvent(item *calendar.Event) Event {
	e := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Status:      item.Status,
		HTMLLink:    item.HtmlLink,
		Location:    item.Location,
	}
	for _, a := range item.Attendees {
		if a != nil && a.Email != "" {
			e.Attendees = append(e.Attendees, a.Email)
		}
	}
	if item.Start != nil && item.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			e.StartTime = t
		}
	}
	if item.End != nil && item.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
			e.EndTime = t
		}
	}
	return e
}
