// pkg/functions/functions.go
package functions

import (
	"context"
	"net/http"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Kind tags the calling convention a registered body expects. The registry
// stores the tag as inert data; it never invokes or validates the body.
type Kind string

const (
	KindHTTP       Kind = "http"
	KindEvent      Kind = "event"
	KindCloudEvent Kind = "cloud_event"
)

// Valid reports whether k is one of the three known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindHTTP, KindEvent, KindCloudEvent:
		return true
	}
	return false
}

// EventMetadata is the delivery metadata handed to an EventFunction alongside
// the raw payload.
type EventMetadata struct {
	ID      string
	Type    string
	Source  string
	Subject string
	Time    time.Time
}

// Documented calling conventions per kind. Registration stores bodies untyped;
// shape enforcement belongs to the dispatch layer.
type (
	// HTTPFunction handles one request/response exchange.
	HTTPFunction func(w http.ResponseWriter, r *http.Request)

	// EventFunction receives a raw payload plus its delivery metadata.
	EventFunction func(ctx context.Context, data []byte, meta EventMetadata) error

	// CloudEventFunction receives a single structured event object combining
	// payload and context.
	CloudEventFunction func(ctx context.Context, e cloudevents.Event) error
)

// Definition is the immutable record of one registered function. Constructed
// only by Register; name and kind never change afterward.
type Definition struct {
	name string
	kind Kind
	body any
}

func (d Definition) Name() string { return d.name }
func (d Definition) Kind() Kind   { return d.kind }

// Body returns the callable exactly as supplied at registration.
func (d Definition) Body() any { return d.body }
