// Package trigger implements the Azure Functions custom-handler boundary:
// the host POSTs an invocation payload to /<FunctionName> and expects an
// InvokeResponse back. Both functions are thin adapters over the same
// maintenance pass.
package trigger

import (
	"encoding/json"
	"strings"
)

// InvokeRequest is the custom-handler invocation envelope.
type InvokeRequest struct {
	Data     map[string]json.RawMessage `json:"Data"`
	Metadata map[string]json.RawMessage `json:"Metadata"`
}

// InvokeResponse is the custom-handler reply envelope.
type InvokeResponse struct {
	Outputs     map[string]any `json:"Outputs"`
	Logs        []string       `json:"Logs"`
	ReturnValue any            `json:"ReturnValue"`
}

// BlobName extracts the changed object's container-relative name from a blob
// trigger payload. The host reports the full "container/path" in the
// BlobTrigger metadata entry.
func (r InvokeRequest) BlobName() string {
	raw, ok := r.Metadata["BlobTrigger"]
	if !ok {
		return ""
	}
	var path string
	if err := json.Unmarshal(raw, &path); err != nil {
		return ""
	}
	if _, name, found := strings.Cut(path, "/"); found {
		return name
	}
	return path
}

// BlobSize extracts the changed object's byte length from the trigger
// metadata, zero when absent.
func (r InvokeRequest) BlobSize() int64 {
	raw, ok := r.Metadata["Properties"]
	if !ok {
		return 0
	}
	var properties struct {
		Length        int64 `json:"Length"`
		ContentLength int64 `json:"ContentLength"`
	}
	if err := json.Unmarshal(raw, &properties); err != nil {
		return 0
	}
	if properties.Length > 0 {
		return properties.Length
	}
	return properties.ContentLength
}

// EventID extracts the event identifier from an event-grid trigger payload.
func (r InvokeRequest) EventID() string {
	raw, ok := r.Data["event"]
	if !ok {
		return ""
	}
	var event struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &event); err != nil {
		return ""
	}
	return event.ID
}
