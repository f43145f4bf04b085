package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MinReviewRating     = 1
	MaxReviewRating     = 5
	MinReviewTextLength = 10
	MaxReviewPhotos     = 3
)

type ReviewInput struct {
	UserID     string            `json:"userId"`
	UserName   string            `json:"userName"`
	TargetID   string            `json:"targetId"`
	TargetType domain.TargetType `json:"targetType"`
	Rating     int               `json:"rating"`
	Text       string            `json:"text"`
	Photos     []string          `json:"photos"`
	OrderID    string            `json:"orderId,omitempty"`
}

// ReviewPatch changes the fields that are set. The target and author of a
// review never change.
type ReviewPatch struct {
	UserName *string  `json:"userName,omitempty"`
	Rating   *int     `json:"rating,omitempty"`
	Text     *string  `json:"text,omitempty"`
	Photos   []string `json:"photos,omitempty"`
	OrderID  *string  `json:"orderId,omitempty"`
}

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ReviewStore keeps every review plus the set written by the signed-in user.
// Both slices hold the most recently added review first.
type ReviewStore struct {
	store
	reviews     []domain.Review
	userReviews []domain.Review
}

func NewReviewStore(snapshots SnapshotStore, publisher EventPublisher, logger logrus.FieldLogger) *ReviewStore {
	s := &ReviewStore{}
	s.init(snapshots, publisher, logger)
	return s
}

func (s *ReviewStore) AddReview(ctx context.Context, in ReviewInput) (domain.Review, error) {
	if in.UserID == "" {
		return domain.Review{}, ErrSignInRequired
	}
	if !in.TargetType.Valid() {
		return domain.Review{}, invalid("targetType", "must be %q or %q", domain.TargetKitchen, domain.TargetDish)
	}
	if strings.TrimSpace(in.TargetID) == "" {
		return domain.Review{}, invalid("targetId", "must not be empty")
	}
	if err := validateReview(in.Rating, in.Text, in.Photos); err != nil {
		return domain.Review{}, err
	}

	s.mu.Lock()
	review := domain.Review{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		UserName:   in.UserName,
		TargetID:   in.TargetID,
		TargetType: in.TargetType,
		Rating:     in.Rating,
		Text:       strings.TrimSpace(in.Text),
		Date:       s.now(),
		Photos:     clonePhotos(in.Photos),
		OrderID:    in.OrderID,
	}
	s.reviews = append([]domain.Review{review}, s.reviews...)
	s.userReviews = append([]domain.Review{cloneReview(review)}, s.userReviews...)
	s.save(ctx, ReviewKey, s.record())
	s.mu.Unlock()

	s.publish(ctx, reviewEvent(domain.EventReviewCreated, review, review.Date))
	return cloneReview(review), nil
}

// ReviewsForTarget returns the reviews of one kitchen or dish, newest first.
func (s *ReviewStore) ReviewsForTarget(targetID string, targetType domain.TargetType) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	return newestFirst(s.reviews, func(review domain.Review) bool {
		return review.TargetID == targetID && review.TargetType == targetType
	})
}

func (s *ReviewStore) ReviewsByUser(userID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	return newestFirst(s.reviews, func(review domain.Review) bool {
		return review.UserID == userID
	})
}

// UserReviews returns the personal review set of userID, newest first.
func (s *ReviewStore) UserReviews(userID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	return newestFirst(s.userReviews, func(review domain.Review) bool {
		return review.UserID == userID
	})
}

func (s *ReviewStore) UpdateReview(ctx context.Context, id string, patch ReviewPatch) (domain.Review, error) {
	s.mu.Lock()
	idx := indexOfReview(s.reviews, id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.Review{}, ErrReviewNotFound
	}

	updated := cloneReview(s.reviews[idx])
	previous := updated.Rating
	if patch.UserName != nil {
		updated.UserName = *patch.UserName
	}
	if patch.Rating != nil {
		updated.Rating = *patch.Rating
	}
	if patch.Text != nil {
		updated.Text = strings.TrimSpace(*patch.Text)
	}
	if patch.Photos != nil {
		updated.Photos = clonePhotos(patch.Photos)
	}
	if patch.OrderID != nil {
		updated.OrderID = *patch.OrderID
	}
	if err := validateReview(updated.Rating, updated.Text, updated.Photos); err != nil {
		s.mu.Unlock()
		return domain.Review{}, err
	}

	s.reviews[idx] = updated
	if userIdx := indexOfReview(s.userReviews, id); userIdx >= 0 {
		s.userReviews[userIdx] = cloneReview(updated)
	}
	s.save(ctx, ReviewKey, s.record())
	at := s.now()
	s.mu.Unlock()

	event := reviewEvent(domain.EventReviewUpdated, updated, at)
	event.PreviousRating = previous
	s.publish(ctx, event)
	return cloneReview(updated), nil
}

// DeleteReview removes the review from both sets and reports whether it
// existed.
func (s *ReviewStore) DeleteReview(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := indexOfReview(s.reviews, id)
	userIdx := indexOfReview(s.userReviews, id)
	if idx < 0 && userIdx < 0 {
		s.mu.Unlock()
		return false
	}

	var removed domain.Review
	if idx >= 0 {
		removed = s.reviews[idx]
		s.reviews = append(s.reviews[:idx], s.reviews[idx+1:]...)
	} else {
		removed = s.userReviews[userIdx]
	}
	if userIdx >= 0 {
		s.userReviews = append(s.userReviews[:userIdx], s.userReviews[userIdx+1:]...)
	}
	s.save(ctx, ReviewKey, s.record())
	at := s.now()
	s.mu.Unlock()

	s.publish(ctx, reviewEvent(domain.EventReviewDeleted, removed, at))
	return true
}

// LikeReview adds one like. Repeated likes from the same user all count.
func (s *ReviewStore) LikeReview(ctx context.Context, id string) (domain.Review, error) {
	s.mu.Lock()
	idx := indexOfReview(s.reviews, id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.Review{}, ErrReviewNotFound
	}

	s.reviews[idx].Likes++
	if userIdx := indexOfReview(s.userReviews, id); userIdx >= 0 {
		s.userReviews[userIdx].Likes = s.reviews[idx].Likes
	}
	liked := cloneReview(s.reviews[idx])
	s.save(ctx, ReviewKey, s.record())
	at := s.now()
	s.mu.Unlock()

	s.publish(ctx, reviewEvent(domain.EventReviewLiked, liked, at))
	return liked, nil
}

// AverageRating is the mean rating of a target, 0 when it has no reviews.
func (s *ReviewStore) AverageRating(targetID string, targetType domain.TargetType) float64 {
	return s.Summary(targetID, targetType).Average
}

func (s *ReviewStore) Summary(targetID string, targetType domain.TargetType) RatingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary RatingSummary
	sum := 0
	for _, review := range s.reviews {
		if review.TargetID == targetID && review.TargetType == targetType {
			sum += review.Rating
			summary.Count++
		}
	}
	if summary.Count > 0 {
		summary.Average = float64(sum) / float64(summary.Count)
	}
	return summary
}

// LoadInitialReviews installs seeds when the store is empty. Seeds written by
// userID also become the user's own reviews. Each seed is announced as created
// so downstream rating totals include it.
func (s *ReviewStore) LoadInitialReviews(ctx context.Context, seeds []domain.Review, userID string) bool {
	s.mu.Lock()
	if len(s.reviews) > 0 || len(seeds) == 0 {
		s.mu.Unlock()
		return false
	}
	s.reviews = make([]domain.Review, 0, len(seeds))
	s.userReviews = nil
	for _, review := range seeds {
		s.reviews = append(s.reviews, cloneReview(review))
		if review.UserID == userID {
			s.userReviews = append(s.userReviews, cloneReview(review))
		}
	}
	s.save(ctx, ReviewKey, s.record())
	s.mu.Unlock()

	for _, review := range seeds {
		s.publish(ctx, reviewEvent(domain.EventReviewCreated, review, review.Date))
	}
	return true
}

func (s *ReviewStore) Load(ctx context.Context) error {
	var record domain.ReviewRecord
	found, err := s.load(ctx, ReviewKey, &record)
	if err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = record.Reviews
	s.userReviews = record.UserReviews
	return nil
}

func (s *ReviewStore) record() domain.ReviewRecord {
	return domain.ReviewRecord{
		Reviews:     cloneReviews(s.reviews),
		UserReviews: cloneReviews(s.userReviews),
	}
}

func validateReview(rating int, text string, photos []string) error {
	if rating < MinReviewRating || rating > MaxReviewRating {
		return invalid("rating", "must be between %d and %d", MinReviewRating, MaxReviewRating)
	}
	if len([]rune(strings.TrimSpace(text))) < MinReviewTextLength {
		return invalid("text", "must be at least %d characters", MinReviewTextLength)
	}
	if len(photos) > MaxReviewPhotos {
		return invalid("photos", "at most %d photos are allowed", MaxReviewPhotos)
	}
	return nil
}

// newestFirst filters reviews and orders them by date, newest first. Reviews
// with the same date keep their store order.
func newestFirst(reviews []domain.Review, keep func(domain.Review) bool) []domain.Review {
	filtered := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if keep(review) {
			filtered = append(filtered, cloneReview(review))
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}

func reviewEvent(eventType string, review domain.Review, at time.Time) domain.Event {
	return domain.Event{
		Type:       eventType,
		ReviewID:   review.ID,
		TargetID:   review.TargetID,
		TargetType: review.TargetType,
		Rating:     review.Rating,
		OrderID:    review.OrderID,
		Timestamp:  at,
	}
}

func indexOfReview(reviews []domain.Review, id string) int {
	for i, review := range reviews {
		if review.ID == id {
			return i
		}
	}
	return -1
}

func cloneReview(review domain.Review) domain.Review {
	review.Photos = clonePhotos(review.Photos)
	return review
}

func cloneReviews(reviews []domain.Review) []domain.Review {
	clone := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		clone = append(clone, cloneReview(review))
	}
	return clone
}

func clonePhotos(photos []string) []string {
	return append([]string{}, photos...)
}
