package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDisabledByDefault(t *testing.T) {
	CloseAll()
	assert.False(t, IsDebugMode())
	assert.False(t, IsCategoryEnabled(CategoryStore))

	// Must not panic with nothing initialized.
	Store("replaced %d", 1)
	Audit().EditOpened(0, "id", "A")
}

func TestInitialize_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(CloseAll)

	require.NoError(t, Initialize(Settings{DebugMode: true, Level: "debug", Dir: dir, JSONFormat: true}))
	assert.True(t, IsDebugMode())

	Store("replaced order %d", 3)
	Audit().EditSubmitted(3, "rec-1", "A", nil)
	CloseAll()

	data, err := os.ReadFile(filepath.Join(dir, "ordertable.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "replaced order 3")
	assert.Contains(t, string(data), `"logger":"store"`)

	matches, err := filepath.Glob(filepath.Join(dir, "*_audit.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	audit, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(audit), `"event":"edit_submit"`)
	assert.Contains(t, string(audit), `"record":"rec-1"`)
}

func TestInitialize_ProductionModeIsSilent(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(CloseAll)

	require.NoError(t, Initialize(Settings{DebugMode: false, Dir: dir}))
	Store("nothing")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInitialize_RequiresDir(t *testing.T) {
	t.Cleanup(CloseAll)
	assert.Error(t, Initialize(Settings{DebugMode: true}))
}

func TestCategoryFilter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	InitializeWithCore(core, map[string]bool{"table": false})
	t.Cleanup(CloseAll)

	Table("hidden")
	Dialog("opened %d", 2)
	TableDebug("hidden too")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "opened 2", entry.Message)
	assert.Equal(t, "dialog", entry.LoggerName)
	assert.False(t, IsCategoryEnabled(CategoryTable))
	assert.True(t, IsCategoryEnabled(CategorySeed))
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	InitializeWithCore(core, nil)
	t.Cleanup(CloseAll)

	Get(CategorySeed).With("path", "orders.yaml").Warn("reload failed")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "orders.yaml", logs.All()[0].ContextMap()["path"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestAuditEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetAuditCore(core)
	t.Cleanup(CloseAll)

	a := Audit()
	a.EditOpened(1, "r1", "A")
	a.EditSubmitted(1, "r1", "A", errors.New("Weight (Kg): must be a number"))
	a.SeedReloaded("orders.yaml", 4, nil)
	a.StoreRestored(4)

	require.Equal(t, 4, logs.Len())
	all := logs.All()
	assert.Equal(t, "edit_open", all[0].ContextMap()["event"])
	assert.Equal(t, "edit_rejected", all[1].ContextMap()["event"])
	assert.Equal(t, false, all[1].ContextMap()["success"])
	assert.True(t, strings.HasPrefix(all[2].Message, "seed orders.yaml"))
	assert.Equal(t, "store_restore", all[3].ContextMap()["event"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("chatty"))
}
