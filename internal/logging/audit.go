package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AuditEventType names a change to the order data or the edit dialog.
type AuditEventType string

const (
	AuditEditOpen     AuditEventType = "edit_open"
	AuditEditCancel   AuditEventType = "edit_cancel"
	AuditEditSubmit   AuditEventType = "edit_submit"
	AuditEditRejected AuditEventType = "edit_rejected"
	AuditStoreRestore AuditEventType = "store_restore"
	AuditSeedReload   AuditEventType = "seed_reload"
	AuditSeedError    AuditEventType = "seed_error"
)

// AuditEvent is one line of the audit log.
type AuditEvent struct {
	Timestamp time.Time
	EventType AuditEventType
	Index     int    // store index, -1 when not about one record
	RecordID  string // stable record id
	User      string
	Success   bool
	Error     string
	Message   string
}

// MarshalLogObject writes the event as flat JSON fields.
func (e AuditEvent) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("ts", e.Timestamp.UnixMilli())
	enc.AddString("event", string(e.EventType))
	enc.AddInt("index", e.Index)
	if e.RecordID != "" {
		enc.AddString("record", e.RecordID)
	}
	if e.User != "" {
		enc.AddString("user", e.User)
	}
	enc.AddBool("success", e.Success)
	if e.Error != "" {
		enc.AddString("error", e.Error)
	}
	return nil
}

var (
	auditMu   sync.Mutex
	auditFile *os.File
	auditZap  *zap.Logger
)

// AuditLogger writes audit events; it is a no-op until logging is
// initialized in debug mode.
type AuditLogger struct{}

// Audit returns the audit logger.
func Audit() *AuditLogger { return &AuditLogger{} }

func initAudit(s Settings) error {
	date := time.Now().Format("2006-01-02")
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_audit.log", date))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{MessageKey: "msg"})
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.InfoLevel)

	auditMu.Lock()
	auditFile = f
	auditZap = zap.New(core)
	auditMu.Unlock()
	return nil
}

// SetAuditCore routes audit events to core. Tests use it with
// zaptest/observer.
func SetAuditCore(core zapcore.Core) {
	closeAudit()
	auditMu.Lock()
	auditZap = zap.New(core)
	auditMu.Unlock()
}

func closeAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditZap != nil {
		_ = auditZap.Sync()
		auditZap = nil
	}
	if auditFile != nil {
		_ = auditFile.Close()
		auditFile = nil
	}
}

// Log writes one event.
func (a *AuditLogger) Log(event AuditEvent) {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditZap == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	msg := event.Message
	if msg == "" {
		msg = string(event.EventType)
	}
	auditZap.Info(msg, zap.Inline(event))
}

// EditOpened records that the dialog opened on a record.
func (a *AuditLogger) EditOpened(index int, id, user string) {
	a.Log(AuditEvent{EventType: AuditEditOpen, Index: index, RecordID: id, User: user, Success: true})
}

// EditCancelled records a cancelled dialog.
func (a *AuditLogger) EditCancelled(index int, id string) {
	a.Log(AuditEvent{EventType: AuditEditCancel, Index: index, RecordID: id, Success: true})
}

// EditSubmitted records a submit; err is the reason it was refused, if any.
func (a *AuditLogger) EditSubmitted(index int, id, user string, err error) {
	ev := AuditEvent{EventType: AuditEditSubmit, Index: index, RecordID: id, User: user, Success: err == nil}
	if err != nil {
		ev.EventType = AuditEditRejected
		ev.Error = err.Error()
	}
	a.Log(ev)
}

// SeedReloaded records a seed file reload; err is set when parsing failed.
func (a *AuditLogger) SeedReloaded(path string, count int, err error) {
	ev := AuditEvent{EventType: AuditSeedReload, Index: -1, Success: err == nil,
		Message: fmt.Sprintf("seed %s: %d orders", path, count)}
	if err != nil {
		ev.EventType = AuditSeedError
		ev.Error = err.Error()
	}
	a.Log(ev)
}

// StoreRestored records a reset to the seed.
func (a *AuditLogger) StoreRestored(count int) {
	a.Log(AuditEvent{EventType: AuditStoreRestore, Index: -1, Success: true,
		Message: fmt.Sprintf("restored %d orders", count)})
}
