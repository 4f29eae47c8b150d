package adapters

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"apt-repo-function/internal/ports"
	"apt-repo-function/internal/types"
)

type memoryObject struct {
	payload      []byte
	lastModified string
	tags         map[string]string
}

// MemoryBlobAdapter is an in-memory container used by unit tests and the
// serve --dev mode. Enumeration is lexicographic by name, matching the
// behavior of the Azure listing API. Upload counts are tracked so tests can
// assert the no-write idempotence property.
type MemoryBlobAdapter struct {
	mu      sync.Mutex
	objects map[string]*memoryObject
	uploads map[string]int

	// Clock stamps LastModified on Upload. Replaceable in tests.
	Clock func() time.Time
}

func NewMemoryBlobAdapter() *MemoryBlobAdapter {
	return &MemoryBlobAdapter{
		objects: map[string]*memoryObject{},
		uploads: map[string]int{},
		Clock:   time.Now,
	}
}

func (m *MemoryBlobAdapter) List(_ context.Context) ([]types.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.objects))
	for name := range m.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	infos := make([]types.ObjectInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, m.objectInfo(name))
	}
	return infos, nil
}

func (m *MemoryBlobAdapter) Exists(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[name]
	return ok, nil
}

func (m *MemoryBlobAdapter) Properties(_ context.Context, name string) (types.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[name]; !ok {
		return types.ObjectInfo{}, notFoundError(name)
	}
	return m.objectInfo(name), nil
}

func (m *MemoryBlobAdapter) Download(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	object, ok := m.objects[name]
	if !ok {
		return nil, notFoundError(name)
	}
	payload := make([]byte, len(object.payload))
	copy(payload, object.payload)
	return payload, nil
}

func (m *MemoryBlobAdapter) Upload(_ context.Context, name string, data []byte, tags map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload := make([]byte, len(data))
	copy(payload, data)
	m.objects[name] = &memoryObject{
		payload:      payload,
		lastModified: m.Clock().UTC().Format(http.TimeFormat),
		tags:         copyTags(tags),
	}
	m.uploads[name]++
	return nil
}

// Seed places an object with an explicit last-modified string, bypassing the
// upload counter. Test fixtures use it to stand in for external uploads.
func (m *MemoryBlobAdapter) Seed(name string, payload []byte, lastModified string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = &memoryObject{
		payload:      append([]byte(nil), payload...),
		lastModified: lastModified,
		tags:         copyTags(tags),
	}
}

// Touch rewrites an object's last-modified string in place, simulating the
// store observing a fresh upload of the same artifact.
func (m *MemoryBlobAdapter) Touch(name string, lastModified string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if object, ok := m.objects[name]; ok {
		object.lastModified = lastModified
	}
}

// UploadCount reports how many Upload calls have hit the named object.
func (m *MemoryBlobAdapter) UploadCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploads[name]
}

func (m *MemoryBlobAdapter) objectInfo(name string) types.ObjectInfo {
	object := m.objects[name]
	return types.ObjectInfo{
		Name:         name,
		LastModified: object.lastModified,
		Tags:         copyTags(object.tags),
	}
}

func copyTags(tags map[string]string) map[string]string {
	out := map[string]string{}
	for key, value := range tags {
		out[key] = value
	}
	return out
}

func notFoundError(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("object not found: " + name)
}

var _ ports.BlobStorePort = (*MemoryBlobAdapter)(nil)
