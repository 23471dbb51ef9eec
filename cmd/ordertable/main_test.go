package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ordertable/internal/config"
	"ordertable/internal/logging"
	"ordertable/internal/seed"
	"ordertable/internal/store"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleSeed = `
- user: Asha
  shipper: BlueDart
  weight: 2
  cost: 10
  source: Pune
  destination: Goa
  status: delivered
- user: Bilal
  shipper: DTDC
  weight: 1
  cost: 5
  source: Delhi
  destination: Agra
  status: ""
- user: Chitra
  shipper: Ekart
  weight: 3
  cost: 7
  source: Pune
  destination: Delhi
  status: out-for-delivery
`

// resetFlags puts every package-level flag back to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ORDERTABLE_SEED_FILE", "ORDERTABLE_PAGE_SIZE", "ORDERTABLE_VALIDATION", "ORDERTABLE_LOG_LEVEL", "ORDERTABLE_DARK_MODE"} {
		t.Setenv(k, "")
	}
	logger = zap.NewNop()
	verbose = false
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	seedPath = ""
	listSort, listDesc = "", false
	listSource, listDest, listDelivered = "", "", false
	listPage, listPageSize = 1, 0
	configForce = false
}

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0644))
	return path
}

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := fn(cmd, args)
	return out.String(), err
}

// userOrder returns the users in the order they appear in output.
func userOrder(out string, users ...string) []string {
	type pos struct {
		user string
		at   int
	}
	var found []pos
	for _, u := range users {
		if i := strings.Index(out, u); i >= 0 {
			found = append(found, pos{u, i})
		}
	}
	for i := 1; i < len(found); i++ {
		for j := i; j > 0 && found[j].at < found[j-1].at; j-- {
			found[j], found[j-1] = found[j-1], found[j]
		}
	}
	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.user
	}
	return names
}

func TestList_DefaultSortsByCost(t *testing.T) {
	resetFlags(t)
	seedPath = writeSeed(t)

	out, err := run(t, runList)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bilal", "Chitra", "Asha"}, userOrder(out, "Asha", "Bilal", "Chitra"))
	assert.Contains(t, out, "Cost (₹) ▲")
	assert.Contains(t, out, "1–3 of 3")
}

func TestList_FilterAndDescending(t *testing.T) {
	resetFlags(t)
	seedPath = writeSeed(t)
	listSource = "Pune"
	listSort = "cost"
	listDesc = true

	out, err := run(t, runList)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha", "Chitra"}, userOrder(out, "Asha", "Bilal", "Chitra"))
	assert.Contains(t, out, "Cost (₹) ▼")
}

func TestList_Delivered(t *testing.T) {
	resetFlags(t)
	seedPath = writeSeed(t)
	listDelivered = true

	out, err := run(t, runList)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha"}, userOrder(out, "Asha", "Bilal", "Chitra"))
}

func TestList_Pagination(t *testing.T) {
	resetFlags(t)
	listPageSize = 5
	listPage = 3

	out, err := run(t, runList)
	require.NoError(t, err)
	assert.Contains(t, out, "11–13 of 13")
	assert.Contains(t, out, "page 3/3")

	listPage = 99
	out, err = run(t, runList)
	require.NoError(t, err)
	assert.Contains(t, out, "page 3/3", "an out-of-range page is clamped")
}

func TestList_BadFlags(t *testing.T) {
	resetFlags(t)
	listSort = "price"
	_, err := run(t, runList)
	assert.Error(t, err)

	resetFlags(t)
	listPageSize = 7
	_, err = run(t, runList)
	assert.Error(t, err)

	resetFlags(t)
	listPage = 0
	_, err = run(t, runList)
	assert.Error(t, err)
}

func TestSeedDump(t *testing.T) {
	resetFlags(t)
	dst := filepath.Join(t.TempDir(), "out", "orders.yaml")

	out, err := run(t, runSeedDump, dst)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 13 orders")

	list, err := seed.Load(dst)
	require.NoError(t, err)
	assert.Len(t, list, 13)
}

func TestConfigInit(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")

	_, err := run(t, runConfigInit, path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = run(t, runConfigInit, path)
	assert.Error(t, err, "existing file is kept without --force")

	configForce = true
	_, err = run(t, runConfigInit, path)
	assert.NoError(t, err)
}

func TestLoadConfig_SeedFlagOverridesConfig(t *testing.T) {
	resetFlags(t)
	cfg := config.DefaultConfig()
	cfg.SeedFile = "/does/not/exist.yaml"
	require.NoError(t, cfg.Save(configPath))

	seedPath = writeSeed(t)
	loaded, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, seedPath, loaded.SeedFile)

	list, err := loadSeed(loaded)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestLogConfig(t *testing.T) {
	resetFlags(t)
	core, logs := observer.New(zapcore.DebugLevel)
	logging.InitializeWithCore(core, nil)
	t.Cleanup(logging.CloseAll)

	cfg := config.DefaultConfig()
	cfg.Validation = "strict"
	logConfig(cfg)

	entries := logs.FilterLoggerName(string(logging.CategoryConfig)).All()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "validation=strict")
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Contains(t, entries[1].Message, "log_format=json")
}

func TestWatchSeed_ClosesWatcherWhenStartFails(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "missing", "orders.yaml")
	w, err := seed.NewWatcher(path, store.New(nil))
	require.NoError(t, err)

	assert.Error(t, watchSeed(context.Background(), w))
}

func TestWatchSeed_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	w, err := seed.NewWatcher(writeSeed(t), store.New(nil))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, watchSeed(ctx, w))
}
