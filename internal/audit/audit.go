// Package audit appends hook decisions to a JSON Lines file.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/michael-freling/blog-safety-hooks/internal/hooks"
)

const (
	lockSuffix     = ".lock"
	lockRetryDelay = 10 * time.Millisecond
)

// ErrLockTimeout is returned when the audit log stays locked past the context deadline.
var ErrLockTimeout = errors.New("audit log is locked by another process")

// TimeProvider returns the current time.
type TimeProvider func() time.Time

// Entry is one decision written to the audit log.
type Entry struct {
	Time     time.Time `json:"time"`
	ToolName string    `json:"tool_name"`
	Allowed  bool      `json:"allowed"`
	Rule     string    `json:"rule,omitempty"`
	Category string    `json:"category,omitempty"`
	Severity string    `json:"severity,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// NewEntry builds an entry from a rule result.
func NewEntry(toolName string, result *hooks.RuleResult) Entry {
	entry := Entry{
		ToolName: toolName,
		Allowed:  true,
	}
	if result == nil {
		return entry
	}

	entry.Allowed = result.Allowed
	entry.Rule = result.RuleName
	entry.Category = string(result.Category)
	entry.Severity = string(result.Severity)
	entry.Message = result.Message
	return entry
}

// Recorder persists decisions.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// NewRecorder returns a file recorder for path, or a recorder that discards
// entries when path is empty.
func NewRecorder(path string) Recorder {
	if path == "" {
		return nopRecorder{}
	}
	return NewFileRecorder(path)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Entry) error {
	return nil
}

// fileRecorder appends entries under an exclusive file lock, since several hook
// processes may run in parallel.
type fileRecorder struct {
	path         string
	timeProvider TimeProvider
}

// NewFileRecorder creates a recorder appending to path.
func NewFileRecorder(path string) *fileRecorder {
	return &fileRecorder{
		path:         path,
		timeProvider: time.Now,
	}
}

// SetTimeProvider sets a custom time provider for testing
func (r *fileRecorder) SetTimeProvider(tp TimeProvider) {
	r.timeProvider = tp
}

// Record appends one JSON line. Entries without a time are stamped with the current time.
func (r *fileRecorder) Record(ctx context.Context, entry Entry) error {
	if entry.Time.IsZero() {
		entry.Time = r.timeProvider().UTC()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode audit entry: %w", err)
	}
	line = append(line, '\n')

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	fileLock := flock.New(r.path + lockSuffix)
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return ErrLockTimeout
		}
		return fmt.Errorf("failed to acquire audit log lock: %w", err)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer fileLock.Unlock()

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}

	if _, err := file.Write(line); err != nil {
		file.Close()
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close audit log: %w", err)
	}
	return nil
}
