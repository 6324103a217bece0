package views

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/storage"
	"github.com/mmynk/homekeeper/internal/storage/memory"
)

var family = []string{"Dad", "Mum", "Tomas"}

// sequentialIDs returns an id generator yielding id-1, id-2, ...
func sequentialIDs() records.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newStore(t *testing.T, snap storage.Snapshot) storage.Store {
	t.Helper()
	store := memory.New()
	require.NoError(t, storage.Load(context.Background(), store, snap))
	t.Cleanup(func() { store.Close() })
	return store
}

func ids[T records.Record[T]](seq []T) []string {
	out := make([]string, len(seq))
	for i, rec := range seq {
		out[i] = rec.RecordID()
	}
	return out
}

func day(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(s string) Option {
	return WithClock(func() time.Time { return day(s) })
}

func recorder() (*notify.Recorder, Option) {
	rec := &notify.Recorder{}
	return rec, WithNotifier(rec)
}
