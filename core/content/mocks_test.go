package content

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"catcare-web/core/domain"
	"catcare-web/core/errors"
)

// mockContentSource is a mock implementation of the ContentSource interface
type mockContentSource struct {
	mu               sync.Mutex
	queries          []domain.EntryQuery
	getEntriesFunc   func(ctx context.Context, query domain.EntryQuery) (*domain.EntryCollection, error)
	contentTypesFunc func(ctx context.Context) ([]domain.ContentType, error)
}

func (m *mockContentSource) GetEntries(ctx context.Context, query domain.EntryQuery) (*domain.EntryCollection, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.getEntriesFunc != nil {
		return m.getEntriesFunc(ctx, query)
	}
	return &domain.EntryCollection{}, nil
}

func (m *mockContentSource) GetContentTypes(ctx context.Context) ([]domain.ContentType, error) {
	if m.contentTypesFunc != nil {
		return m.contentTypesFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentSource) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

// mockCache is an in-memory implementation of the Cache interface
type mockCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	value, ok := m.data[key]
	if !ok {
		return nil, errors.ErrCacheMiss
	}
	return value, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// logEntry is one captured log call
type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records log calls for assertions
type mockLogger struct {
	mu     sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

// articleEntry builds a catCareHub entry with the given field values
func articleEntry(id, title, slug, category, publishDate string) domain.Entry {
	return domain.Entry{
		ID:          id,
		ContentType: domain.ArticleContentType,
		Fields: map[string]json.RawMessage{
			"title":       jsonString(title),
			"slug":        jsonString(slug),
			"category":    jsonString(category),
			"excerpt":     jsonString("Excerpt for " + title),
			"publishDate": jsonString(publishDate),
		},
	}
}

func jsonString(s string) json.RawMessage {
	data, _ := json.Marshal(s)
	return data
}
