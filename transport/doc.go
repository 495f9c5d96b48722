// Package transport implements the network exchange behind the
// beacon.Transport contract.
//
// # Overview
//
// HTTP posts payloads as JSON to the ingestion endpoint. Every failure is
// classified into one of four sentinel errors that callers can match with
// errors.Is:
//
//   - ErrInvalidEndpoint: the endpoint is not an absolute http(s) URL.
//   - ErrInvalidPayload:  the payload cannot be serialized to JSON.
//   - ErrNetworkFailure:  the exchange could not complete (DNS, connect,
//     timeout); the underlying cause stays in the error chain.
//   - ErrServerRejected:  the service responded outside the 2xx range.
//
// All errors are terminal; the transport performs no retries.
package transport
