// Package beacon is a client-side facade for structured analytics events.
//
// # Overview
//
// The package provides:
//  1. A Composer with one generic logging primitive (LogEvent) and
//     convenience wrappers for clicks, screen navigation, screen and
//     session durations, and app open/close events. Every call builds a
//     single event Envelope, optionally enriches it with environment
//     facts, wraps it in a Payload and hands it to a Transport.
//  2. Consumer-side contracts for the two collaborators: Transport (the
//     network exchange, see the transport subpackage for the HTTP
//     implementation) and EnvironmentProvider (ambient platform, locale
//     and device facts, see the envinfo subpackage).
//  3. A Config holder for the API key, owned by the caller and shared by
//     reference between call sites.
//
// # Dispatch
//
// Logging calls never block on the network. Each returns a buffered
// channel that receives exactly one value: nil on success, or one of the
// transport sentinel errors otherwise. The Composer performs no retries
// and keeps no queue; a failed send leaves Config and subsequent calls
// untouched.
//
// # Error Handling
//
// All failures originate in the Transport and can be matched with
// errors.Is against the sentinels in the transport subpackage:
// ErrInvalidEndpoint, ErrInvalidPayload, ErrNetworkFailure and
// ErrServerRejected.
//
// # Concurrency
//
// A Composer is safe for concurrent use. Envelopes are pure functions of
// the call parameters plus the Config and EnvironmentProvider snapshots
// at call time; concurrent calls share no per-call state.
package beacon
