package source

import (
	"context"

	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/stretchr/testify/mock"
)

// MockSourceStore is a mock implementation of SourceStore for testing.
type MockSourceStore struct {
	mock.Mock
}

var _ contract.SourceStore = &MockSourceStore{} // Compile-time check

// LoadTimeline implements the TableSource interface.
func (m *MockSourceStore) LoadTimeline(ctx context.Context) ([]schema.TimelineRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.TimelineRow)
	return rows, args.Error(1)
}

// LoadSubjectNames implements the TableSource interface.
func (m *MockSourceStore) LoadSubjectNames(ctx context.Context) ([]schema.SubjectName, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]schema.SubjectName)
	return names, args.Error(1)
}

// LoadSubjectYears implements the TableSource interface.
func (m *MockSourceStore) LoadSubjectYears(ctx context.Context) ([]schema.SubjectYearRecord, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.SubjectYearRecord)
	return rows, args.Error(1)
}

// Describe implements the TableSource interface.
func (m *MockSourceStore) Describe() string {
	args := m.Called()
	return args.String(0)
}

// Close implements the TableSource interface.
func (m *MockSourceStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the SourceStore interface.
func (m *MockSourceStore) GetStatus(ctx context.Context) (schema.SourceStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.SourceStatus), args.Error(1)
}
