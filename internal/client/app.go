package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-events-rest/internal/adapter"
	"github.com/MKhiriev/go-events-rest/internal/logger"
)

// Usage lists the supported commands.
const Usage = `usage: events-client [flags] <command> [arguments]

commands:
  events                         list events
  event <id>                     show one event
  locations                      list locations
  location <id>                  show one location
  recurring-events               list recurring events
  recurring-event <id>           show one recurring event
  occurrences <id> [from] [to]   expand a recurring event (RFC 3339 bounds)
  ics                            print the iCalendar feed
  version                        print the server version
  build-info                     print the client build information
`

type command struct {
	// args is the exact number of positional arguments, or -1 for
	// occurrences which takes between one and three.
	args int
	run  func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"events": {0, func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.adapter.ListEvents(ctx)
	}},
	"event": {1, func(ctx context.Context, a *App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return a.adapter.GetEvent(ctx, id)
	}},
	"locations": {0, func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.adapter.ListLocations(ctx)
	}},
	"location": {1, func(ctx context.Context, a *App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return a.adapter.GetLocation(ctx, id)
	}},
	"recurring-events": {0, func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.adapter.ListRecurringEvents(ctx)
	}},
	"recurring-event": {1, func(ctx context.Context, a *App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return a.adapter.GetRecurringEvent(ctx, id)
	}},
	"occurrences": {-1, runOccurrences},
	"ics": {0, func(ctx context.Context, a *App, _ []string) (any, error) {
		feed, err := a.adapter.GetCalendar(ctx)
		return rawOutput(feed), err
	}},
	"version": {0, func(ctx context.Context, a *App, _ []string) (any, error) {
		version, err := a.adapter.GetServerVersion(ctx)
		return rawOutput(version), err
	}},
}

// rawOutput is printed as is instead of JSON encoded.
type rawOutput string

type App struct {
	adapter adapter.EventsAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(eventsAdapter adapter.EventsAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if eventsAdapter == nil {
		return nil, fmt.Errorf("client app: nil adapter")
	}
	if out == nil {
		return nil, fmt.Errorf("client app: nil output")
	}

	return &App{
		adapter: eventsAdapter,
		out:     out,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if cmd.args >= 0 && len(rest) != cmd.args {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrBadArguments, name, cmd.args, len(rest))
	}

	a.logger.Debug().Str("command", name).Strs("args", rest).Msg("running command")

	result, err := cmd.run(ctx, a, rest)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

func (a *App) print(result any) error {
	if raw, ok := result.(rawOutput); ok {
		s := string(raw)
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		_, err := io.WriteString(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runOccurrences(ctx context.Context, a *App, args []string) (any, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, fmt.Errorf("%w: occurrences expects 1 to 3 arguments, got %d", ErrBadArguments, len(args))
	}

	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	var from, to time.Time
	if len(args) > 1 {
		if from, err = parseTime(args[1]); err != nil {
			return nil, err
		}
	}
	if len(args) > 2 {
		if to, err = parseTime(args[2]); err != nil {
			return nil, err
		}
	}

	return a.adapter.ListOccurrences(ctx, id, from, to)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrBadArguments, s)
	}
	return id, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time %q: %w", ErrBadArguments, s, err)
	}
	return t, nil
}
