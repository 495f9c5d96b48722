package transport

import "errors"

var (
	ErrInvalidEndpoint = errors.New("invalid ingestion endpoint")
	ErrInvalidPayload  = errors.New("payload not serializable")
	ErrNetworkFailure  = errors.New("network failure")
	ErrServerRejected  = errors.New("server rejected payload")
)
