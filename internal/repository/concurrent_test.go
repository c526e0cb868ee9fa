package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/prodplan/internal/db"
	"github.com/alexanderramin/prodplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// document builds a JSON array of n records, so a torn write would fail to
// decode or have the wrong length for its own "n" field.
func document(n int) []byte {
	records := make([]map[string]int, n)
	for i := range records {
		records[i] = map[string]int{"n": n, "i": i}
	}
	data, _ := json.Marshal(records)
	return data
}

func checkDocument(data []byte) error {
	var records []map[string]int
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("torn document: %w", err)
	}
	for _, r := range records {
		if r["n"] != len(records) {
			return fmt.Errorf("mixed document: record says n=%d, have %d", r["n"], len(records))
		}
	}
	return nil
}

// readDuringWrites runs one sequential writer and several readers against
// repo and fails on the first document that is not a complete version.
func readDuringWrites(t *testing.T, repo SlotRepo) {
	t.Helper()
	ctx := context.Background()
	const key = "prod_planning_data"
	const writes = 30

	require.NoError(t, repo.Replace(ctx, key, document(1)))

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 2; i <= writes; i++ {
			if err := repo.Replace(ctx, key, document(i)); err != nil {
				errs <- fmt.Errorf("write %d: %w", i, err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				data, err := repo.Read(ctx, key)
				if err != nil {
					errs <- fmt.Errorf("read: %w", err)
					return
				}
				if err := checkDocument(data); err != nil {
					errs <- err
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	final, err := repo.Read(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, string(document(writes)), string(final))
}

func TestConcurrentAccess_SQLSlotReadDuringWrite(t *testing.T) {
	repo := NewSQLSlotRepo(testutil.NewTestFileDB(t), db.DialectSQLite)
	readDuringWrites(t, repo)

	rev, err := repo.Revision(context.Background(), "prod_planning_data")
	require.NoError(t, err)
	assert.Equal(t, int64(30), rev)
}

func TestConcurrentAccess_FileSlotReadDuringWrite(t *testing.T) {
	readDuringWrites(t, NewFileSlotRepo(t.TempDir()))
}

func TestConcurrentAccess_MemorySlotReadDuringWrite(t *testing.T) {
	readDuringWrites(t, NewMemorySlotRepo())
}
