package beacon

import "github.com/google/uuid"

// Properties is a mapping of JSON-compatible values attached to an event.
// Values that cannot be serialized surface as an ErrInvalidPayload from
// the transport, never as a panic.
type Properties map[string]any

// mergeProperties combines a synthesized property set with caller-supplied
// values. Keys present in both take the caller-supplied value. Returns nil
// when the merge is empty, so empty maps never reach the wire.
func mergeProperties(synthesized, supplied Properties) Properties {
	if len(synthesized) == 0 && len(supplied) == 0 {
		return nil
	}
	merged := make(Properties, len(synthesized)+len(supplied))
	for k, v := range synthesized {
		merged[k] = v
	}
	for k, v := range supplied {
		merged[k] = v
	}
	return merged
}

// Envelope is one structured analytics event ready for transmission.
// UserID and EventType are always present; everything else is written
// only when supplied or derived.
type Envelope struct {
	UserID          string     `json:"user_id"`
	EventType       string     `json:"event_type"`
	SessionID       string     `json:"session_id,omitempty"`
	UserProperties  Properties `json:"user_properties,omitempty"`
	EventProperties Properties `json:"event_properties,omitempty"`

	Platform   string `json:"platform,omitempty"`
	Country    string `json:"country,omitempty"`
	Language   string `json:"language,omitempty"`
	DeviceType string `json:"device_type,omitempty"`
	AppVersion string `json:"app_version,omitempty"`
	OSName     string `json:"os_name,omitempty"`
	OSVersion  string `json:"os_version,omitempty"`
}

func (e *Envelope) setField(f Field, value string) {
	switch f {
	case FieldPlatform:
		e.Platform = value
	case FieldCountry:
		e.Country = value
	case FieldLanguage:
		e.Language = value
	case FieldDeviceType:
		e.DeviceType = value
	case FieldAppVersion:
		e.AppVersion = value
	case FieldOSName:
		e.OSName = value
	case FieldOSVersion:
		e.OSVersion = value
	}
}

// Payload is the request body crossing the Transport boundary. APIKey is
// null when the Config was never configured; the ingestion service is
// authoritative on rejecting such requests. Events always holds exactly
// one envelope.
type Payload struct {
	APIKey *string    `json:"api_key"`
	Events []Envelope `json:"events"`
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}
