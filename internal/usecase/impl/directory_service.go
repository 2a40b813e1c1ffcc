// Package impl provides the implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"borgo/internal/domain/entity"
	domainerrors "borgo/internal/domain/errors"
	"borgo/internal/domain/geo"
	"borgo/internal/domain/repository"
	"borgo/internal/domain/service"
	"borgo/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// defaultResultCap bounds one directory page when the config leaves it unset.
const defaultResultCap = 10

type directoryService struct {
	sync        usecase.SyncUsecase
	commentRepo repository.CommentRepository
	geolocation service.Geolocation
	logger      *slog.Logger
	resultCap   int
}

// NewDirectoryService creates a new directory service instance.
func NewDirectoryService(
	syncUC usecase.SyncUsecase,
	commentRepo repository.CommentRepository,
	geolocation service.Geolocation,
	logger *slog.Logger,
	resultCap int,
) usecase.DirectoryUsecase {
	if resultCap <= 0 {
		resultCap = defaultResultCap
	}

	return &directoryService{
		sync:        syncUC,
		commentRepo: commentRepo,
		geolocation: geolocation,
		logger:      logger,
		resultCap:   resultCap,
	}
}

// Browse runs the ranking pipeline over the synced snapshot: visibility
// filter, category and text filters, ordering, cap. It never fails; when no
// position can be resolved the distance order degrades to the rating order.
func (s *directoryService) Browse(ctx context.Context, query *usecase.BrowseQuery) []*usecase.RankedListing {
	if query == nil {
		query = &usecase.BrowseQuery{}
	}

	position := s.resolvePosition(ctx, query)

	needle := strings.ToLower(strings.TrimSpace(query.Query))

	results := make([]*usecase.RankedListing, 0, s.resultCap)
	for _, listing := range s.sync.Snapshot() {
		if !listing.Visible() {
			continue
		}
		if query.CategoryID != "" && listing.CategoryID != query.CategoryID {
			continue
		}
		if needle != "" && !matchesQuery(listing, needle) {
			continue
		}

		ranked := &usecase.RankedListing{Listing: listing}
		if position != nil && geo.IsValid(listing.Location) {
			ranked.DistanceKm = geo.DistanceKm(*position, listing.Location)
			ranked.DistanceLabel = geo.FormatDistance(ranked.DistanceKm)
			ranked.HasDistance = true
		}
		results = append(results, ranked)
	}

	byDistance := query.Sort == usecase.SortByDistance && position != nil
	sort.SliceStable(results, func(i, j int) bool {
		if byDistance {
			// Listings without coordinates sink below ranked ones.
			if results[i].HasDistance != results[j].HasDistance {
				return results[i].HasDistance
			}
			if results[i].HasDistance {
				return results[i].DistanceKm < results[j].DistanceKm
			}
		}
		if results[i].Listing.Featured != results[j].Listing.Featured {
			return results[i].Listing.Featured
		}

		return results[i].Listing.Rating > results[j].Listing.Rating
	})

	if len(results) > s.resultCap {
		results = results[:s.resultCap]
	}

	return results
}

// resolvePosition prefers the position the caller supplied and falls back to
// the geolocation provider only when distance ordering actually needs one.
func (s *directoryService) resolvePosition(ctx context.Context, query *usecase.BrowseQuery) *orb.Point {
	if query.Location != nil && geo.IsValid(*query.Location) {
		return query.Location
	}
	if query.Sort != usecase.SortByDistance {
		return nil
	}

	pos, err := s.geolocation.CurrentPosition(ctx)
	if err != nil {
		s.logger.Debug("position unavailable, degrading to rating order", slog.Any("error", err))

		return nil
	}

	point := orb.Point{pos.Longitude, pos.Latitude}
	if !geo.IsValid(point) {
		return nil
	}

	return &point
}

func matchesQuery(listing *entity.Listing, needle string) bool {
	return strings.Contains(strings.ToLower(listing.Name), needle) ||
		strings.Contains(strings.ToLower(listing.Description), needle) ||
		strings.Contains(strings.ToLower(listing.Address), needle)
}

// Comments retrieves the reviews of one listing, newest first.
func (s *directoryService) Comments(ctx context.Context, listingID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := s.commentRepo.FindByListing(ctx, listingID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load listing comments")
	}

	return comments, nil
}

// AddComment records a review for a listing. The listing aggregate rating is
// recomputed by the storage layer, not here.
func (s *directoryService) AddComment(ctx context.Context, userID, listingID uuid.UUID, rating int, content string) (*entity.Comment, error) {
	if rating < 1 || rating > 5 {
		return nil, domainerrors.ErrValidationFailed
	}
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	comment := &entity.Comment{
		ID:        uuid.New(),
		ListingID: listingID,
		UserID:    userID,
		Rating:    rating,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	return comment, nil
}
