package audit

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock implementation of Recorder for testing.
type MockRecorder struct {
	mock.Mock
}

// Record is a mock implementation of Recorder.Record.
func (m *MockRecorder) Record(ctx context.Context, entry Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
