package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	DefaultCalendarID = "primary"
	tokenFile         = "token.json"
)

// ErrTokenMissing means Desktop App credentials were given but calendar-auth has not been run yet.
var ErrTokenMissing = errors.New("no OAuth token for desktop credentials, run `planner calendar-auth`")

// Client time-blocks tasks in one Google Calendar account.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile reads credentials and looks for token.json beside them.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, TokenPath(credentialsPath))
}

// NewClientFromCredentialsJSON accepts a Service Account key or Desktop App credentials.
// The latter need the token saved at tokenPath by Authorizer.Exchange.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, tokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP uses httpClient as-is; handy for tests and custom auth.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	a, err := NewAuthorizer(credentialsJSON)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials: %w", err)
	}
	tok, err := loadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return a.config.TokenSource(ctx, tok), nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (looked in %s)", ErrTokenMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &tok, nil
}

// CreateEvent inserts one event. Zero-length or inverted ranges are rejected before any API call.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("event %q ends before it starts", req.Summary)
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, toAPIEvent(req)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert event %q: %w", req.Summary, err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   req.Summary,
		Link:      created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func toAPIEvent(req CreateEventRequest) *calendar.Event {
	ev := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		ColorId:     req.ColorID,
		Start:       eventTime(req.StartTime, req.Timezone),
		End:         eventTime(req.EndTime, req.Timezone),
	}
	if req.ReminderMin > 0 {
		ev.Reminders = &calendar.EventReminders{
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: int64(req.ReminderMin)}},
			ForceSendFields: []string{"UseDefault"},
		}
	}
	return ev
}

func eventTime(t time.Time, tz string) *calendar.EventDateTime {
	return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: tz}
}
