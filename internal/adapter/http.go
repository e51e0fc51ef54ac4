package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/models"
)

type httpEventsAdapter struct {
	client    *resty.Client
	namespace string

	logger *logger.Logger
}

// NewHTTPEventsAdapter constructs an HTTP/REST implementation of
// [EventsAdapter]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying resty client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPEventsAdapter(cfg config.ClientAdapter, logger *logger.Logger) (EventsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpEventsAdapter{
		client:    client,
		namespace: strings.TrimRight(cfg.Namespace, "/"),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpEventsAdapter) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := h.get(ctx, "list events", h.namespace+"/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (h *httpEventsAdapter) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	var event models.Event
	if err := h.get(ctx, "get event", h.namespace+"/event/"+strconv.FormatInt(id, 10), nil, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (h *httpEventsAdapter) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := h.get(ctx, "list locations", h.namespace+"/locations", nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (h *httpEventsAdapter) GetLocation(ctx context.Context, id int64) (models.Location, error) {
	var location models.Location
	if err := h.get(ctx, "get location", h.namespace+"/location/"+strconv.FormatInt(id, 10), nil, &location); err != nil {
		return models.Location{}, err
	}
	return location, nil
}

func (h *httpEventsAdapter) ListRecurringEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := h.get(ctx, "list recurring events", h.namespace+"/recurring-events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (h *httpEventsAdapter) GetRecurringEvent(ctx context.Context, id int64) (models.Event, error) {
	var event models.Event
	if err := h.get(ctx, "get recurring event", h.namespace+"/recurring-event/"+strconv.FormatInt(id, 10), nil, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (h *httpEventsAdapter) ListOccurrences(ctx context.Context, id int64, from, to time.Time) ([]models.Occurrence, error) {
	query := map[string]string{}
	if !from.IsZero() {
		query["from"] = from.Format(time.RFC3339)
	}
	if !to.IsZero() {
		query["to"] = to.Format(time.RFC3339)
	}

	var occurrences []models.Occurrence
	path := h.namespace + "/recurring-event/" + strconv.FormatInt(id, 10) + "/occurrences"
	if err := h.get(ctx, "list occurrences", path, query, &occurrences); err != nil {
		return nil, err
	}
	return occurrences, nil
}

func (h *httpEventsAdapter) GetCalendar(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/calendar").
		SetError(&models.ErrorResponse{}).
		Get(h.namespace + "/events.ics")
	if err != nil {
		return "", fmt.Errorf("get calendar request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpEventsAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// get issues a GET and decodes a JSON body into result.
func (h *httpEventsAdapter) get(ctx context.Context, op, path string, query map[string]string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(result).
		SetError(&models.ErrorResponse{}).
		Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg(op + " failed")
		return err
	}

	return nil
}
