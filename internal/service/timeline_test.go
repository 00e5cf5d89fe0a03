package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athletix/club-api/internal/domain"
)

// fakeActivityRepo serves pages from an in-memory slice already sorted
// newest first, the order the real DAO guarantees.
type fakeActivityRepo struct {
	activities []domain.Activity
}

func (f *fakeActivityRepo) FindPage(_ context.Context, limit, offset int) ([]domain.Activity, error) {
	if offset >= len(f.activities) {
		return nil, nil
	}

	end := offset + limit
	if end > len(f.activities) {
		end = len(f.activities)
	}

	return f.activities[offset:end], nil
}

func (f *fakeActivityRepo) IncrementLikes(_ context.Context, id uint) (domain.Activity, error) {
	for i := range f.activities {
		if f.activities[i].ID == id {
			f.activities[i].Likes++
			return f.activities[i], nil
		}
	}

	return domain.Activity{}, ErrActivityNotFound
}

func newFakeActivityRepo(n int) *fakeActivityRepo {
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	activities := make([]domain.Activity, n)
	for i := range activities {
		eventID := uint(n - i)
		activities[i] = domain.Activity{
			ID:        uint(n - i),
			EventID:   &eventID,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}

	return &fakeActivityRepo{activities: activities}
}

func TestTimelineService_GetPage(t *testing.T) {
	svc := NewTimelineService(newFakeActivityRepo(25))

	page1, err := svc.GetPage(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 10)
	assert.True(t, page1.HasMore)

	page2, err := svc.GetPage(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 10)
	assert.True(t, page2.HasMore)

	page3, err := svc.GetPage(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Len(t, page3.Items, 5)
	assert.False(t, page3.HasMore)

	// No entry repeats across pages and the order stays newest first.
	seen := make(map[uint]bool)
	var all []domain.Activity
	all = append(all, page1.Items...)
	all = append(all, page2.Items...)
	all = append(all, page3.Items...)

	for i, activity := range all {
		assert.False(t, seen[activity.ID], "activity %d served twice", activity.ID)
		seen[activity.ID] = true

		if i > 0 {
			assert.False(t, activity.CreatedAt.After(all[i-1].CreatedAt))
		}
	}
}

func TestTimelineService_GetPage_ExactMultiple(t *testing.T) {
	// 20 items and pages of 10: the second page comes back full, so the
	// client asks once more and gets an empty page.
	svc := NewTimelineService(newFakeActivityRepo(20))

	page2, err := svc.GetPage(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 10)
	assert.True(t, page2.HasMore)

	page3, err := svc.GetPage(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Empty(t, page3.Items)
	assert.False(t, page3.HasMore)
}

func TestTimelineService_LikeActivity(t *testing.T) {
	repo := newFakeActivityRepo(3)
	svc := NewTimelineService(repo)

	liked, err := svc.LikeActivity(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	liked, err = svc.LikeActivity(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)

	_, err = svc.LikeActivity(context.Background(), 99)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
