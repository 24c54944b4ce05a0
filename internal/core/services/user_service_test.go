package services

import (
	"context"
	"fmt"
	"testing"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	nextID uint
	users  []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	for i, existing := range r.users {
		if existing.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	for i, existing := range r.users {
		if existing.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	total := int64(len(r.users))
	if offset >= len(r.users) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	out := make([]*models.User, 0, end-offset)
	for _, user := range r.users[offset:end] {
		cp := *user
		out = append(out, &cp)
	}
	return out, total, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(context.Background(), username)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func seedUsers(t *testing.T, repo *fakeUserRepo, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, repo.Create(context.Background(), &models.User{
			Username: fmt.Sprintf("user%02d", i),
			Email:    fmt.Sprintf("user%02d@sharebrasil.com.br", i),
			Role:     "REQUESTER",
			IsActive: true,
		}))
	}
}

func TestUserServiceListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("pages through the user list", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		seedUsers(t, repo, 25)

		first, err := svc.ListUsers(ctx, &pagination.Params{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, first.Data, 10)
		assert.Equal(t, int64(25), first.Meta.Total)
		assert.Equal(t, 3, first.Meta.TotalPages)
		assert.True(t, first.Meta.HasNext)
		assert.False(t, first.Meta.HasPrev)

		last, err := svc.ListUsers(ctx, &pagination.Params{Page: 3, Limit: 10, Offset: 20})
		require.NoError(t, err)
		assert.Len(t, last.Data, 5)
		assert.False(t, last.Meta.HasNext)
		assert.True(t, last.Meta.HasPrev)
	})

	t.Run("page past the end is empty but keeps totals", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		seedUsers(t, repo, 3)

		result, err := svc.ListUsers(ctx, &pagination.Params{Page: 5, Limit: 10, Offset: 40})
		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.Equal(t, int64(3), result.Meta.Total)
	})

	t.Run("responses never carry password hashes", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		seedUsers(t, repo, 1)

		result, err := svc.ListUsers(ctx, &pagination.Params{Page: 1, Limit: 10})
		require.NoError(t, err)
		users, ok := result.Data.([]*models.UserResponse)
		require.True(t, ok)
		require.Len(t, users, 1)
		assert.Equal(t, "user00", users[0].Username)
	})
}
