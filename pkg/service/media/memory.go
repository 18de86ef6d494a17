package media

import (
	"context"
	"sync"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/google/uuid"
)

// Memory keeps media payloads in process memory. It exists for tests
// and for local development without a bucket.
type Memory struct {
	mu      sync.Mutex
	objects map[string][]byte
}

var _ interfaces.MediaStore = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		objects: make(map[string][]byte),
	}
}

func (s *Memory) Put(ctx context.Context, data []byte, mimeType string) (*model.MediaRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uri := "mem://" + uuid.NewString()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.objects[uri] = copied

	return &model.MediaRef{
		URI:      uri,
		MIMEType: mimeType,
		Size:     int64(len(data)),
	}, nil
}

// Get returns a stored payload, for assertions in tests.
func (s *Memory) Get(uri string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[uri]
	return data, ok
}
