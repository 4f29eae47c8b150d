package trigger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlobNameStripsContainer(t *testing.T) {
	request := InvokeRequest{Metadata: map[string]json.RawMessage{
		"BlobTrigger": json.RawMessage(`"repo/pool/foo_1.0.deb"`),
	}}
	assert.Equal(t, "pool/foo_1.0.deb", request.BlobName())
}

func TestBlobNameMissingMetadata(t *testing.T) {
	assert.Empty(t, InvokeRequest{}.BlobName())
}

func TestBlobSize(t *testing.T) {
	request := InvokeRequest{Metadata: map[string]json.RawMessage{
		"Properties": json.RawMessage(`{"Length": 4096}`),
	}}
	assert.Equal(t, int64(4096), request.BlobSize())
	assert.Zero(t, InvokeRequest{}.BlobSize())
}

func TestEventID(t *testing.T) {
	request := InvokeRequest{Data: map[string]json.RawMessage{
		"event": json.RawMessage(`{"id": "evt-42", "subject": "/x"}`),
	}}
	assert.Equal(t, "evt-42", request.EventID())
	assert.Empty(t, InvokeRequest{}.EventID())
}
