package seed

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"ordertable/internal/orders"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sample = `
- user: A
  shipper: BlueDart
  weight: 2.5
  cost: 10
  source: Pune
  destination: Goa
  status: delivered
- user: B
  shipper: DTDC
  weight: heavy
  cost: 5
  source: Delhi
  destination: Agra
  status: ""
`

func TestDecode(t *testing.T) {
	list, err := Decode([]byte(sample))
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "A", list[0].User)
	assert.Equal(t, orders.StatusDelivered, list[0].Status)
	w, ok := list[0].Weight.Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, w)

	assert.False(t, list[1].Weight.Valid())
	assert.Equal(t, "heavy", list[1].Weight.String())
	assert.Equal(t, orders.StatusPending, list[1].Status)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(""))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode([]byte("[]"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode([]byte("- user: A\n  price: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Decode([]byte("user: A"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump", "orders.yaml")
	in := orders.Default()
	in[0].ID = "should-not-be-written"

	require.NoError(t, Save(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should-not-be-written")

	out, err := Load(path)
	require.NoError(t, err)

	in[0].ID = ""
	if diff := cmp.Diff(in, out, cmp.AllowUnexported(orders.Number{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type recorder struct {
	mu     sync.Mutex
	resets [][]orders.Order
}

func (r *recorder) Reset(seed []orders.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets = append(r.resets, seed)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resets)
}

func (r *recorder) last() []orders.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resets[len(r.resets)-1]
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	rec := &recorder{}
	w, err := NewWatcher(path, rec)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("- user: C\n  cost: 1\n  weight: 1\n"), 0644))

	require.Eventually(t, func() bool { return rec.count() >= 1 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "C", rec.last()[0].User)
	assert.GreaterOrEqual(t, w.Stats().Reloads, 1)
}

func TestWatcher_IgnoresBadFileAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	rec := &recorder{}
	w, err := NewWatcher(path, rec)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte(sample), 0644))
	require.NoError(t, os.WriteFile(path, []byte("- user: [broken"), 0644))

	require.Eventually(t, func() bool { return w.Stats().Failures >= 1 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 0, rec.count())
	assert.NotEmpty(t, w.Stats().LastError)
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := NewWatcher(path, &recorder{})
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx), "second start is a no-op")

	cancel()
	w.Stop()
	w.Stop()
}
