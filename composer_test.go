package beacon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records every payload it is handed and returns a preset
// error. Safe for concurrent use.
type fakeTransport struct {
	mu        sync.Mutex
	endpoints []string
	payloads  []Payload
	err       error
}

func (f *fakeTransport) Send(_ context.Context, endpoint string, p Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endpoints = append(f.endpoints, endpoint)
	f.payloads = append(f.payloads, p)
	return f.err
}

func (f *fakeTransport) last(t *testing.T) Payload {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.payloads)
	return f.payloads[len(f.payloads)-1]
}

// fakeProvider serves lookups from a map; absent keys miss.
type fakeProvider map[Field]string

func (f fakeProvider) Lookup(field Field) (string, bool) {
	v, ok := f[field]
	return v, ok
}

func await(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("no dispatch result delivered")
		return nil
	}
}

func newTestComposer(tr Transport, env EnvironmentProvider) (*Composer, *Config) {
	cfg := &Config{}
	return NewComposer("https://ingest.example.com/events", cfg, tr, env, nil), cfg
}

func TestLogEvent_MinimalEnvelope(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogEvent(context.Background(), "u1", "custom", EventOptions{})))

	p := tr.last(t)
	require.Len(t, p.Events, 1)

	b, err := json.Marshal(p.Events[0])
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Len(t, m, 2, "no optional parameters must mean exactly two keys")
	assert.Equal(t, "u1", m["user_id"])
	assert.Equal(t, "custom", m["event_type"])
}

func TestLogEvent_AllFieldsEnrichment(t *testing.T) {
	env := fakeProvider{
		FieldPlatform:   "ios",
		FieldCountry:    "US",
		FieldLanguage:   "en",
		FieldDeviceType: "phone",
		FieldAppVersion: "2.0.1",
		FieldOSName:     "iOS",
		FieldOSVersion:  "17.4",
	}
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, env)

	require.NoError(t, await(t, c.LogEvent(context.Background(), "u1", "custom", EventOptions{
		Fields: []Field{FieldAll},
	})))

	want := Envelope{
		UserID:     "u1",
		EventType:  "custom",
		Platform:   "ios",
		Country:    "US",
		Language:   "en",
		DeviceType: "phone",
		AppVersion: "2.0.1",
		OSName:     "iOS",
		OSVersion:  "17.4",
	}
	if diff := cmp.Diff(want, tr.last(t).Events[0]); diff != "" {
		t.Fatalf("envelope mismatch (-want +got):\n%s", diff)
	}
}

func TestLogEvent_AllEquivalentToFullSetWithDuplicates(t *testing.T) {
	env := fakeProvider{FieldPlatform: "ios", FieldCountry: "US"}

	trAll := &fakeTransport{}
	cAll, _ := newTestComposer(trAll, env)
	require.NoError(t, await(t, cAll.LogEvent(context.Background(), "u1", "e", EventOptions{
		Fields: []Field{FieldCountry, FieldAll, FieldCountry},
	})))

	trSet := &fakeTransport{}
	cSet, _ := newTestComposer(trSet, env)
	require.NoError(t, await(t, cSet.LogEvent(context.Background(), "u1", "e", EventOptions{
		Fields: concreteFields,
	})))

	assert.Equal(t, trSet.last(t).Events[0], trAll.last(t).Events[0])
}

func TestLogEvent_MissingLookupOmitsField(t *testing.T) {
	env := fakeProvider{FieldPlatform: "android"} // country unresolvable
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, env)

	require.NoError(t, await(t, c.LogEvent(context.Background(), "u1", "e", EventOptions{
		Fields: []Field{FieldPlatform, FieldCountry},
	})))

	e := tr.last(t).Events[0]
	assert.Equal(t, "android", e.Platform)
	assert.Empty(t, e.Country)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "country")
}

func TestLogEvent_OptionalParameters(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogEvent(context.Background(), "u1", "e", EventOptions{
		Screen:          "Home",
		SessionID:       "s1",
		UserProperties:  Properties{"tier": "gold"},
		EventProperties: Properties{"source": "deep_link"},
	})))

	e := tr.last(t).Events[0]
	assert.Equal(t, "s1", e.SessionID)
	assert.Equal(t, Properties{"tier": "gold"}, e.UserProperties)
	assert.Equal(t, Properties{"screen": "Home", "source": "deep_link"}, e.EventProperties)
}

func TestLogEvent_EmptyStringsPassThrough(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogEvent(context.Background(), "", "", EventOptions{})))

	e := tr.last(t).Events[0]
	assert.Empty(t, e.UserID)
	assert.Empty(t, e.EventType)
}

func TestLogClickEvent(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogClickEvent(context.Background(), "u1", "buy_button", EventOptions{})))

	e := tr.last(t).Events[0]
	assert.Equal(t, "click_buy_button", e.EventType)
	assert.Equal(t, Properties{"element": "buy_button"}, e.EventProperties)
}

func TestLogClickEvent_CallerOverridesElement(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogClickEvent(context.Background(), "u1", "buy_button", EventOptions{
		EventProperties: Properties{"element": "renamed"},
	})))

	assert.Equal(t, Properties{"element": "renamed"}, tr.last(t).Events[0].EventProperties)
}

func TestLogScreenNavigation(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogScreenNavigation(context.Background(), "u1", "Home", "Details", nil, EventOptions{})))

	e := tr.last(t).Events[0]
	assert.Equal(t, "screen_navigation", e.EventType)
	assert.Equal(t, Properties{"from_screen": "Home", "to_screen": "Details"}, e.EventProperties)
	assert.NotContains(t, e.EventProperties, "screen")
}

func TestLogScreenNavigation_WithDuration(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	d := 2.5
	require.NoError(t, await(t, c.LogScreenNavigation(context.Background(), "u1", "Home", "Details", &d, EventOptions{})))

	assert.Equal(t, Properties{"from_screen": "Home", "to_screen": "Details", "duration": 2.5},
		tr.last(t).Events[0].EventProperties)
}

func TestLogScreenDuration_CallerWinsOnDuration(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogScreenDuration(context.Background(), "u1", "Home", 5.0, EventOptions{
		EventProperties: Properties{"duration": 99.0},
	})))

	e := tr.last(t).Events[0]
	assert.Equal(t, "screen_duration", e.EventType)
	assert.Equal(t, Properties{"duration": 99.0, "screen": "Home"}, e.EventProperties)
}

func TestLogSessionDuration(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogSessionDuration(context.Background(), "u1", "s1", 42.0, EventOptions{})))

	e := tr.last(t).Events[0]
	assert.Equal(t, "session_duration", e.EventType)
	assert.Equal(t, "s1", e.SessionID)
	assert.Equal(t, Properties{"duration": 42.0}, e.EventProperties)
}

func TestLogOpenAndCloseAppEvents(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogOpenAppEvent(context.Background(), "u1", EventOptions{})))
	require.NoError(t, await(t, c.LogCloseAppEvent(context.Background(), "u1", EventOptions{})))

	tr.mu.Lock()
	defer tr.mu.Unlock()
	require.Len(t, tr.payloads, 2)
	assert.Equal(t, "open_app", tr.payloads[0].Events[0].EventType)
	assert.Equal(t, "close_app", tr.payloads[1].Events[0].EventType)
	assert.Nil(t, tr.payloads[0].Events[0].EventProperties, "open_app synthesizes no properties")
	assert.Nil(t, tr.payloads[1].Events[0].EventProperties, "close_app synthesizes no properties")
}

func TestDispatch_UnconfiguredKeyIsNull(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogOpenAppEvent(context.Background(), "u1", EventOptions{})))
	assert.Nil(t, tr.last(t).APIKey)
}

func TestDispatch_KeyRotation(t *testing.T) {
	tr := &fakeTransport{}
	c, cfg := newTestComposer(tr, fakeProvider{})

	cfg.Configure("KEY1")
	cfg.Configure("KEY2")
	require.NoError(t, await(t, c.LogOpenAppEvent(context.Background(), "u1", EventOptions{})))

	key := tr.last(t).APIKey
	require.NotNil(t, key)
	assert.Equal(t, "KEY2", *key)
}

func TestDispatch_UsesConfiguredEndpoint(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{})

	require.NoError(t, await(t, c.LogOpenAppEvent(context.Background(), "u1", EventOptions{})))

	tr.mu.Lock()
	defer tr.mu.Unlock()
	assert.Equal(t, []string{"https://ingest.example.com/events"}, tr.endpoints)
}

func TestDispatch_TransportErrorPropagatedUnchanged(t *testing.T) {
	sentinel := errors.New("server rejected payload: 503")
	tr := &fakeTransport{err: sentinel}
	c, _ := newTestComposer(tr, fakeProvider{})

	err := await(t, c.LogOpenAppEvent(context.Background(), "u1", EventOptions{}))
	require.ErrorIs(t, err, sentinel)
}

func TestDispatch_FailedSendDoesNotPoisonSubsequentCalls(t *testing.T) {
	tr := &fakeTransport{err: errors.New("network failure")}
	c, cfg := newTestComposer(tr, fakeProvider{})
	cfg.Configure("KEY")

	require.Error(t, await(t, c.LogOpenAppEvent(context.Background(), "u1", EventOptions{})))

	tr.mu.Lock()
	tr.err = nil
	tr.mu.Unlock()

	require.NoError(t, await(t, c.LogCloseAppEvent(context.Background(), "u1", EventOptions{})))
	key, ok := cfg.APIKey()
	require.True(t, ok)
	assert.Equal(t, "KEY", key)
}

func TestConcurrentCalls_IndependentEnvelopes(t *testing.T) {
	tr := &fakeTransport{}
	c, _ := newTestComposer(tr, fakeProvider{FieldPlatform: "linux"})

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i)
			done := c.LogScreenDuration(context.Background(), userID, fmt.Sprintf("screen-%d", i), float64(i), EventOptions{
				Fields: []Field{FieldPlatform},
			})
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Error("no dispatch result delivered")
			}
		}(i)
	}
	wg.Wait()

	tr.mu.Lock()
	defer tr.mu.Unlock()
	require.Len(t, tr.payloads, n)
	for _, p := range tr.payloads {
		require.Len(t, p.Events, 1)
		e := p.Events[0]
		var i int
		_, err := fmt.Sscanf(e.UserID, "user-%d", &i)
		require.NoError(t, err)
		assert.Equal(t, Properties{"screen": fmt.Sprintf("screen-%d", i), "duration": float64(i)}, e.EventProperties)
		assert.Equal(t, "linux", e.Platform)
	}
}
