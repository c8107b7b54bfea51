package follows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

type mockFollowRepo struct {
	mock.Mock
}

func (m *mockFollowRepo) Create(ctx context.Context, follow *Follow) error {
	args := m.Called(ctx, follow)
	if args.Error(0) == nil {
		follow.ID = 100
	}
	return args.Error(0)
}

func (m *mockFollowRepo) GetByID(ctx context.Context, id int64) (*Follow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Follow), args.Error(1)
}

func (m *mockFollowRepo) GetByPair(ctx context.Context, followerID, followingID int64) (*Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Follow), args.Error(1)
}

func (m *mockFollowRepo) UpdateStatus(ctx context.Context, id int64, status Status) (*Follow, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Follow), args.Error(1)
}

func (m *mockFollowRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFollowRepo) ListAcceptedFollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockFollowRepo) ListPending(ctx context.Context, userID int64) ([]*Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Follow), args.Error(1)
}

type mockUserGetter struct {
	mock.Mock
}

func (m *mockUserGetter) GetByID(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func setup() (Service, *mockFollowRepo, *mockUserGetter) {
	repo := new(mockFollowRepo)
	ug := new(mockUserGetter)
	return NewFollowService(repo, ug), repo, ug
}

func TestFollow_PublicTargetAcceptedImmediately(t *testing.T) {
	svc, repo, ug := setup()
	ctx := context.Background()

	ug.On("GetByID", ctx, int64(2)).Return(&users.User{ID: 2, IsPublic: true}, nil)
	repo.On("GetByPair", ctx, int64(1), int64(2)).Return(nil, ErrFollowNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(f *Follow) bool {
		return f.Status == StatusAccepted && f.FollowerID == 1 && f.FollowingID == 2
	})).Return(nil)

	got, err := svc.Follow(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, got.Status)
	assert.Equal(t, int64(100), got.ID)
}

func TestFollow_PrivateTargetStartsPending(t *testing.T) {
	svc, repo, ug := setup()
	ctx := context.Background()

	ug.On("GetByID", ctx, int64(2)).Return(&users.User{ID: 2, IsPublic: false}, nil)
	repo.On("GetByPair", ctx, int64(1), int64(2)).Return(nil, ErrFollowNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(f *Follow) bool {
		return f.Status == StatusPending
	})).Return(nil)

	got, err := svc.Follow(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestFollow_Self(t *testing.T) {
	svc, repo, ug := setup()

	_, err := svc.Follow(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrCannotFollowSelf)
	assert.True(t, IsValidationError(err))
	ug.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFollow_UnknownTarget(t *testing.T) {
	svc, _, ug := setup()
	ctx := context.Background()

	ug.On("GetByID", ctx, int64(9)).Return(nil, users.ErrUserNotFound)

	_, err := svc.Follow(ctx, 1, 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.True(t, IsNotFound(err))
}

func TestFollow_ExistingEdges(t *testing.T) {
	ctx := context.Background()

	for _, status := range []Status{StatusPending, StatusAccepted} {
		t.Run(string(status)+" blocks duplicate", func(t *testing.T) {
			svc, repo, ug := setup()
			ug.On("GetByID", ctx, int64(2)).Return(&users.User{ID: 2}, nil)
			repo.On("GetByPair", ctx, int64(1), int64(2)).
				Return(&Follow{ID: 7, FollowerID: 1, FollowingID: 2, Status: status}, nil)

			_, err := svc.Follow(ctx, 1, 2)
			assert.ErrorIs(t, err, ErrAlreadyFollowing)
			assert.True(t, IsConflict(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("rejected is re-requested", func(t *testing.T) {
		svc, repo, ug := setup()
		ug.On("GetByID", ctx, int64(2)).Return(&users.User{ID: 2, IsPublic: false}, nil)
		repo.On("GetByPair", ctx, int64(1), int64(2)).
			Return(&Follow{ID: 7, FollowerID: 1, FollowingID: 2, Status: StatusRejected}, nil)
		repo.On("UpdateStatus", ctx, int64(7), StatusPending).
			Return(&Follow{ID: 7, FollowerID: 1, FollowingID: 2, Status: StatusPending}, nil)

		got, err := svc.Follow(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, got.Status)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFollow_RacingDuplicateInsert(t *testing.T) {
	svc, repo, ug := setup()
	ctx := context.Background()

	ug.On("GetByID", ctx, int64(2)).Return(&users.User{ID: 2, IsPublic: true}, nil)
	repo.On("GetByPair", ctx, int64(1), int64(2)).Return(nil, ErrFollowNotFound)
	repo.On("Create", ctx, mock.Anything).Return(ErrAlreadyFollowing)

	_, err := svc.Follow(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("removes edge", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetByPair", ctx, int64(1), int64(2)).Return(&Follow{ID: 7}, nil)
		repo.On("Delete", ctx, int64(7)).Return(nil)

		require.NoError(t, svc.Unfollow(ctx, 1, 2))
		repo.AssertExpectations(t)
	})

	t.Run("no edge", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetByPair", ctx, int64(1), int64(2)).Return(nil, ErrFollowNotFound)

		assert.ErrorIs(t, svc.Unfollow(ctx, 1, 2), ErrFollowNotFound)
	})
}

func TestAcceptReject(t *testing.T) {
	ctx := context.Background()
	pending := func() *Follow {
		return &Follow{ID: 7, FollowerID: 1, FollowingID: 2, Status: StatusPending}
	}

	t.Run("target accepts", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetByID", ctx, int64(7)).Return(pending(), nil)
		repo.On("UpdateStatus", ctx, int64(7), StatusAccepted).
			Return(&Follow{ID: 7, FollowerID: 1, FollowingID: 2, Status: StatusAccepted}, nil)

		got, err := svc.Accept(ctx, 7, 2)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, got.Status)
	})

	t.Run("target rejects", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetByID", ctx, int64(7)).Return(pending(), nil)
		repo.On("UpdateStatus", ctx, int64(7), StatusRejected).
			Return(&Follow{ID: 7, Status: StatusRejected}, nil)

		got, err := svc.Reject(ctx, 7, 2)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, got.Status)
	})

	t.Run("requester cannot accept own request", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetByID", ctx, int64(7)).Return(pending(), nil)

		_, err := svc.Accept(ctx, 7, 1)
		assert.ErrorIs(t, err, ErrNotAuthorized)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already answered", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetByID", ctx, int64(7)).
			Return(&Follow{ID: 7, FollowingID: 2, Status: StatusAccepted}, nil)

		_, err := svc.Reject(ctx, 7, 2)
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("unknown request", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetByID", ctx, int64(8)).Return(nil, ErrFollowNotFound)

		_, err := svc.Accept(ctx, 8, 2)
		assert.True(t, IsNotFound(err))
	})
}

func TestListPending(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("ListPending", ctx, int64(2)).Return(nil, nil)
	repo.On("ListPending", ctx, int64(3)).Return(nil, errors.New("db down"))

	got, err := svc.ListPending(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = svc.ListPending(ctx, 3)
	assert.Error(t, err)
}

func TestListAcceptedFollowingIDs(t *testing.T) {
	svc, repo, _ := setup()
	ctx := context.Background()

	repo.On("ListAcceptedFollowingIDs", ctx, int64(1)).Return([]int64{2, 3}, nil)

	ids, err := svc.ListAcceptedFollowingIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)
}
