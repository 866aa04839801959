//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/review"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 5, actual.Rating())
		assert.Equal(t, "Excellent stay!", actual.Comment())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength))
				},
			},
			{
				name:   "empty comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name: "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength+1))
				},
				errIs: review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("  Trimmed comment  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", actual.Comment())
	})

	t.Run("revise re-runs validation", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		now := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
		require.NoError(t, actual.Revise(3, "Average in the end", now))
		assert.Equal(t, 3, actual.Rating())
		assert.Equal(t, "Average in the end", actual.Comment())
		assert.Equal(t, now, actual.UpdatedAt())

		assert.ErrorIs(t, actual.Revise(0, "still fine", now), review.ErrInvalidRating)
		assert.ErrorIs(t, actual.Revise(3, "  ", now), review.ErrEmptyComment)
	})

	t.Run("ownership", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsOwnedBy(b.UserID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
