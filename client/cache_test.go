package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/payops/internal/domain"
)

func TestCacheServesCachedList(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusOK, []domain.Payout{{ID: "payout-001", Status: domain.StatusPending}})
	}))
	defer server.Close()

	cache := NewCache(NewAPIClient(server.URL))
	ctx := context.Background()

	first, err := cache.PayoutList(ctx, "all")
	assert.NoError(t, err)
	second, err := cache.PayoutList(ctx, "all")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCacheKeysPerFilter(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusOK, []domain.Payout{})
	}))
	defer server.Close()

	cache := NewCache(NewAPIClient(server.URL))
	ctx := context.Background()

	_, err := cache.PayoutList(ctx, "all")
	assert.NoError(t, err)
	_, err = cache.PayoutList(ctx, "held")
	assert.NoError(t, err)
	_, err = cache.PayoutList(ctx, "")
	assert.NoError(t, err)

	// "" and "all" share a key.
	assert.Equal(t, int32(2), hits.Load())
}

func TestCacheDeduplicatesInFlightFetches(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		writeEnvelope(w, http.StatusOK, domain.FundsSnapshot{Currency: "USD"})
	}))
	defer server.Close()

	cache := NewCache(NewAPIClient(server.URL))
	ctx := context.Background()

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			snapshot, err := cache.Snapshot(ctx)
			assert.NoError(t, err)
			assert.Equal(t, "USD", snapshot.Currency)
		}()
	}
	close(start)

	// Let the first request reach the server and the rest of the callers
	// join the in-flight fetch before releasing it.
	for hits.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestCacheInvalidateForcesRefetch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusOK, []domain.Payout{{ID: "payout-001"}})
	}))
	defer server.Close()

	cache := NewCache(NewAPIClient(server.URL))
	ctx := context.Background()

	_, err := cache.PayoutList(ctx, "all")
	assert.NoError(t, err)

	cache.Invalidate(payoutKeyPrefix)

	_, err = cache.PayoutList(ctx, "all")
	assert.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCacheDropsStaleFillAfterInvalidation(t *testing.T) {
	var hits atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
			<-release
		}
		writeEnvelope(w, http.StatusOK, []domain.Payout{{ID: "payout-001"}})
	}))
	defer server.Close()

	cache := NewCache(NewAPIClient(server.URL))
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := cache.PayoutList(ctx, "all")
		assert.NoError(t, err)
	}()

	<-started
	cache.Invalidate(payoutKeyPrefix)
	close(release)
	<-done

	// The in-flight response must not repopulate the invalidated key.
	_, err := cache.PayoutList(ctx, "all")
	assert.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCacheReturnsListCopies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []domain.Payout{{ID: "payout-001", Status: domain.StatusPending}})
	}))
	defer server.Close()

	cache := NewCache(NewAPIClient(server.URL))
	ctx := context.Background()

	first, err := cache.PayoutList(ctx, "all")
	assert.NoError(t, err)
	first[0].Status = domain.StatusRejected

	second, err := cache.PayoutList(ctx, "all")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPending, second[0].Status)
}

func TestRefresherFocusRefreshesSnapshotAndList(t *testing.T) {
	var snapshotHits, listHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payouts/snapshot":
			snapshotHits.Add(1)
			writeEnvelope(w, http.StatusOK, domain.FundsSnapshot{Currency: "USD"})
		case "/payouts":
			listHits.Add(1)
			writeEnvelope(w, http.StatusOK, []domain.Payout{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cache := NewCache(NewAPIClient(server.URL))
	refresher := NewRefresher(cache, func() string { return "all" })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		refresher.Start(ctx)
	}()

	refresher.Focus()
	for snapshotHits.Load() == 0 || listHits.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	assert.GreaterOrEqual(t, snapshotHits.Load(), int32(1))
	assert.GreaterOrEqual(t, listHits.Load(), int32(1))
}
