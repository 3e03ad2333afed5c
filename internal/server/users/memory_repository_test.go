package users

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser(username, email string) *User {
	return &User{
		FirstName:       "Pat",
		LastName:        "Lee",
		Username:        username,
		Email:           email,
		PasswordHash:    "hash",
		Age:             40,
		City:            "Newark",
		State:           "NJ",
		Zip:             "07102",
		ExperienceLevel: "advanced",
		Image:           DefaultImage,
		Role:            RoleUser,
	}
}

func TestInMemoryRepository_CreateAndLookups(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, sampleUser("pat", "pat@example.com"))
	require.NoError(t, err)
	require.Len(t, u.ID, 24)
	assert.Equal(t, 0.0, u.OverallRating)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, byID)

	byEmail, err := repo.GetByEmail(ctx, "pat@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByEmail(ctx, "PAT@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemoryRepository_UniqueConstraint(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleUser("pat", "pat@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleUser("pat", "other@example.com"))
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	_, err = repo.Create(ctx, sampleUser("other", "pat@example.com"))
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestInMemoryRepository_ConcurrentRegistrationOfSameUsername(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, sampleUser("race", "race@example.com"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok)
}

func TestInMemoryRepository_FindByUsernamePrefix_SortsByUsername(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for _, name := range []string{"samantha", "sam", "sammy"} {
		_, err := repo.Create(ctx, sampleUser(name, name+"@example.com"))
		require.NoError(t, err)
	}

	u, err := repo.FindByUsernamePrefix(ctx, "SAM")
	require.NoError(t, err)
	assert.Equal(t, "sam", u.Username)
}

func TestInMemoryRepository_Exists(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, sampleUser("pat", "pat@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		check    func() (bool, error)
		expected bool
	}{
		{"username taken", func() (bool, error) { return repo.ExistsUsername(ctx, "pat", "") }, true},
		{"username free", func() (bool, error) { return repo.ExistsUsername(ctx, "kim", "") }, false},
		{"username held by self", func() (bool, error) { return repo.ExistsUsername(ctx, "pat", u.ID) }, false},
		{"email taken", func() (bool, error) { return repo.ExistsEmail(ctx, "pat@example.com", "") }, true},
		{"email held by self", func() (bool, error) { return repo.ExistsEmail(ctx, "pat@example.com", u.ID) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.check()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInMemoryRepository_UpdateKeepsEmbeddedData(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, sampleUser("pat", "pat@example.com"))
	require.NoError(t, err)
	require.NoError(t, repo.appendReview(u.ID, Review{ReviewerID: "r", RevieweeID: u.ID, Rating: 3}))

	changed := sampleUser("patrick", "patrick@example.com")
	changed.Role = RoleOwner
	changed.PasswordHash = "ignored"

	got, err := repo.Update(ctx, u.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, "patrick", got.Username)
	assert.Equal(t, RoleUser, got.Role)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Len(t, got.Reviews, 1)

	_, err = repo.Update(ctx, "65a1f0c2e4b0a1b2c3d4e5f6", changed)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemoryRepository_AppendToUnknownUser(t *testing.T) {
	repo := NewInMemoryRepository()
	assert.ErrorIs(t, repo.appendBooking("65a1f0c2e4b0a1b2c3d4e5f6", Booking{}), common.ErrNotFound)
	assert.ErrorIs(t, repo.appendReview("bad", Review{}), common.ErrNotFound)
}
