package beacon

import (
	"context"

	"github.com/beaconhq/beacon-go/logging"
)

// Transport delivers an assembled payload to the ingestion endpoint.
// Send is synchronous; the Composer supplies the goroutine that makes
// dispatch fire-and-forget. Retries, timeouts and connection handling
// all belong to the implementation, which must honor ctx.
type Transport interface {
	Send(ctx context.Context, endpoint string, p Payload) error
}

// EnvironmentProvider supplies ambient facts for envelope enrichment.
// Lookup is called once per concrete field per logging call and must be
// a fast local operation. Returning false omits the field silently.
type EnvironmentProvider interface {
	Lookup(f Field) (string, bool)
}

const (
	eventTypeScreenNavigation = "screen_navigation"
	eventTypeScreenDuration   = "screen_duration"
	eventTypeSessionDuration  = "session_duration"
	eventTypeOpenApp          = "open_app"
	eventTypeCloseApp         = "close_app"
)

// EventOptions carries the optional parameters accepted by every logging
// call. The zero value adds nothing to the envelope.
type EventOptions struct {
	// Screen, when non-empty, is merged into event_properties under "screen".
	Screen string
	// SessionID, when non-empty, is written as session_id.
	SessionID string
	// UserProperties is written verbatim as user_properties.
	UserProperties Properties
	// EventProperties is merged into event_properties; on key collision
	// with a synthesized property the caller-supplied value wins.
	EventProperties Properties
	// Fields selects the environment facts to attach. FieldAll expands to
	// the full concrete set.
	Fields []Field
}

// Composer assembles analytics event envelopes and dispatches them
// through a Transport. It owns no network logic and no queue; every call
// produces exactly one payload with exactly one envelope.
type Composer struct {
	endpoint  string
	cfg       *Config
	transport Transport
	env       EnvironmentProvider
	log       logging.Logger
}

// NewComposer wires a Composer. cfg may start unconfigured; env may be
// nil, in which case every enrichment lookup misses; a nil log disables
// diagnostic logging.
func NewComposer(endpoint string, cfg *Config, tr Transport, env EnvironmentProvider, log logging.Logger) *Composer {
	if cfg == nil {
		cfg = &Config{}
	}
	if log == nil {
		log = logging.NewNilLogger()
	}
	return &Composer{
		endpoint:  endpoint,
		cfg:       cfg,
		transport: tr,
		env:       env,
		log:       log,
	}
}

// LogEvent builds an envelope for eventType, enriches it per opts and
// dispatches it. The returned channel is buffered and receives exactly
// one value: nil on success, a transport error otherwise. Empty userID
// or eventType values pass through unchanged; the ingestion service is
// authoritative on validation.
func (c *Composer) LogEvent(ctx context.Context, userID, eventType string, opts EventOptions) <-chan error {
	return c.dispatch(ctx, c.buildEnvelope(userID, eventType, opts))
}

// LogClickEvent logs a "click_<element>" event carrying the element name
// in event_properties.
func (c *Composer) LogClickEvent(ctx context.Context, userID, element string, opts EventOptions) <-chan error {
	opts.EventProperties = mergeProperties(Properties{"element": element}, opts.EventProperties)
	return c.LogEvent(ctx, userID, "click_"+element, opts)
}

// LogScreenNavigation logs a transition between two screens. duration is
// optional; pass nil to omit it.
func (c *Composer) LogScreenNavigation(ctx context.Context, userID, fromScreen, toScreen string, duration *float64, opts EventOptions) <-chan error {
	synthesized := Properties{"from_screen": fromScreen, "to_screen": toScreen}
	if duration != nil {
		synthesized["duration"] = *duration
	}
	opts.EventProperties = mergeProperties(synthesized, opts.EventProperties)
	return c.LogEvent(ctx, userID, eventTypeScreenNavigation, opts)
}

// LogScreenDuration logs the time spent on a single screen.
func (c *Composer) LogScreenDuration(ctx context.Context, userID, screen string, duration float64, opts EventOptions) <-chan error {
	opts.Screen = screen
	opts.EventProperties = mergeProperties(Properties{"duration": duration}, opts.EventProperties)
	return c.LogEvent(ctx, userID, eventTypeScreenDuration, opts)
}

// LogSessionDuration logs the total length of a session.
func (c *Composer) LogSessionDuration(ctx context.Context, userID, sessionID string, duration float64, opts EventOptions) <-chan error {
	opts.SessionID = sessionID
	opts.EventProperties = mergeProperties(Properties{"duration": duration}, opts.EventProperties)
	return c.LogEvent(ctx, userID, eventTypeSessionDuration, opts)
}

// LogOpenAppEvent logs an application start.
func (c *Composer) LogOpenAppEvent(ctx context.Context, userID string, opts EventOptions) <-chan error {
	return c.LogEvent(ctx, userID, eventTypeOpenApp, opts)
}

// LogCloseAppEvent logs an application shutdown.
func (c *Composer) LogCloseAppEvent(ctx context.Context, userID string, opts EventOptions) <-chan error {
	return c.LogEvent(ctx, userID, eventTypeCloseApp, opts)
}

func (c *Composer) buildEnvelope(userID, eventType string, opts EventOptions) Envelope {
	e := Envelope{UserID: userID, EventType: eventType}

	if c.env != nil {
		for _, f := range expandFields(opts.Fields) {
			if value, ok := c.env.Lookup(f); ok {
				e.setField(f, value)
			}
		}
	}

	var synthesized Properties
	if opts.Screen != "" {
		synthesized = Properties{"screen": opts.Screen}
	}

	e.SessionID = opts.SessionID
	e.UserProperties = opts.UserProperties
	e.EventProperties = mergeProperties(synthesized, opts.EventProperties)
	return e
}

func (c *Composer) dispatch(ctx context.Context, e Envelope) <-chan error {
	var apiKey *string
	if key, ok := c.cfg.APIKey(); ok {
		apiKey = &key
	}
	p := Payload{APIKey: apiKey, Events: []Envelope{e}}

	done := make(chan error, 1)
	go func() {
		err := c.transport.Send(ctx, c.endpoint, p)
		if err != nil {
			c.log.Warn(ctx, "event dispatch failed", "event_type", e.EventType, "error", err)
		} else {
			c.log.Debug(ctx, "event dispatched", "event_type", e.EventType)
		}
		done <- err
	}()
	return done
}
