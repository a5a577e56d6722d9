package media

import (
	"context"
	"sync"
)

// Memory keeps files in process. Used with MEDIA_DRIVER=memory and in tests.
type Memory struct {
	mu      sync.Mutex
	baseURL string
	files   map[string][]byte
}

func NewMemory(baseURL string) *Memory {
	if baseURL == "" {
		baseURL = "http://media.local"
	}
	return &Memory{baseURL: baseURL, files: make(map[string][]byte)}
}

func (m *Memory) Upload(_ context.Context, in UploadInput) (*UploadResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	key := joinKey(in.Folder, in.FileName)

	m.mu.Lock()
	m.files[key] = append([]byte(nil), in.Data...)
	m.mu.Unlock()

	return &UploadResult{URL: m.baseURL + "/" + key, FileID: key}, nil
}

func (m *Memory) Delete(_ context.Context, fileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[fileID]; !ok {
		return ErrFileNotFound
	}
	delete(m.files, fileID)
	return nil
}

func (m *Memory) FileID(_ context.Context, url string) (string, error) {
	return objectPath(m.baseURL, url)
}

// Has reports whether a file with the given id is stored.
func (m *Memory) Has(fileID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[fileID]
	return ok
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}
