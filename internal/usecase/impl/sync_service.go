package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/repository"
	"borgo/internal/domain/service"
	"borgo/internal/usecase"

	"github.com/pkg/errors"
)

// syncService keeps the listing snapshot eventually consistent with the
// remote store: full fetch on start, changefeed subscription afterwards, and
// a full re-fetch on any change event. Re-fetching everything on every event
// is deliberate at this data scale; it buys a snapshot that can never mix two
// generations of rows.
type syncService struct {
	repo   repository.ListingRepository
	feed   service.ChangeFeed
	logger *slog.Logger

	snap listingSnapshot

	// reloadMu serializes every reload, whether it comes from the loop or from
	// a manual Refetch: overlapping fetches must never race on the snapshot.
	reloadMu sync.Mutex

	reloadCh chan struct{}
	done     chan struct{}
	closed   atomic.Bool
	closeOne sync.Once
	sub      service.Subscription
	wg       sync.WaitGroup
}

// NewSyncService creates a new sync service instance. Start must be called
// before the snapshot carries data; the fx lifecycle hook in main does that.
func NewSyncService(repo repository.ListingRepository, feed service.ChangeFeed, logger *slog.Logger) usecase.SyncUsecase {
	return &syncService{
		repo:     repo,
		feed:     feed,
		logger:   logger,
		reloadCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start performs the initial fetch, subscribes to the changefeed and launches
// the reload loop.
func (s *syncService) Start(ctx context.Context) error {
	err := s.reload(ctx)

	s.sub = s.feed.Subscribe([]string{service.TableListings, service.TableUsers}, s.onChange)

	s.wg.Add(1)
	go s.reloadLoop()

	return err
}

// onChange schedules a reload. A burst of events while one reload is pending
// coalesces into a single signal; the callback itself never blocks.
func (s *syncService) onChange(event *service.ChangeEvent) {
	s.logger.Debug("change event received",
		slog.String("table", event.Table),
		slog.String("kind", string(event.Kind)),
		slog.String("recordID", event.RecordID),
	)

	select {
	case s.reloadCh <- struct{}{}:
	default:
	}
}

func (s *syncService) reloadLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			return
		case <-s.reloadCh:
			if err := s.reload(context.Background()); err != nil {
				s.logger.Warn("reload after change event failed", slog.Any("error", err))
			}
		}
	}
}

// reload fetches the full remote collection and replaces the snapshot
// atomically. On failure the last-known-good snapshot stays in place and a
// user-visible message is recorded. After Close it is a no-op, so a stray
// event or late response never touches a closed service.
func (s *syncService) reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if s.closed.Load() {
		return nil
	}

	listings, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.snap.Fail(domainerrors.ErrFetchFailed.Message())

		return errors.Wrap(err, "failed to fetch listings")
	}

	s.snap.Replace(listings)

	return nil
}

// Refetch forces one synchronous reload.
func (s *syncService) Refetch(ctx context.Context) error {
	return s.reload(ctx)
}

// Snapshot returns a copy of the current listing snapshot.
func (s *syncService) Snapshot() []*entity.Listing {
	return s.snap.All()
}

// LastError returns the user-visible message of the last failed reload.
func (s *syncService) LastError() string {
	return s.snap.LastError()
}

// Close unsubscribes from the changefeed and stops the reload loop.
func (s *syncService) Close() error {
	s.closeOne.Do(func() {
		s.closed.Store(true)
		if s.sub != nil {
			s.sub.Unsubscribe()
		}
		close(s.done)
		s.wg.Wait()
	})

	return nil
}
