package friend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"friend_profile_server/internal/dao/mysql/repository"
	"friend_profile_server/internal/dto/respond"
	"friend_profile_server/internal/model"
	"friend_profile_server/pkg/errorx"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubFriendshipRepo struct {
	row       *model.FriendProfileRow
	rowErr    error
	mutual    int64
	mutualErr error
	calls     atomic.Int32
}

func (s *stubFriendshipRepo) CountMutualFriends(ctx context.Context, userId, friendUserId int64) (int64, error) {
	s.calls.Add(1)
	return s.mutual, s.mutualErr
}

func (s *stubFriendshipRepo) FindAcceptedFriendProfile(ctx context.Context, userId, friendUserId int64) (*model.FriendProfileRow, error) {
	s.calls.Add(1)
	return s.row, s.rowErr
}

func newStubService(repo *stubFriendshipRepo) *Service {
	return NewFriendService(&repository.Repositories{Friendship: repo})
}

func TestGetFriendProfile_Merge(t *testing.T) {
	repo := &stubFriendshipRepo{
		row:    &model.FriendProfileRow{ID: 2, FullName: "Bob", PhoneNumber: "555", TotalFriendCount: 2},
		mutual: 1,
	}

	got, err := newStubService(repo).GetFriendProfile(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, &respond.GetFriendProfileRespond{
		Id: 2, FullName: "Bob", PhoneNumber: "555", TotalFriendCount: 2, MutualFriendCount: 1,
	}, got)
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestGetFriendProfile_ZeroMutual(t *testing.T) {
	repo := &stubFriendshipRepo{
		row: &model.FriendProfileRow{ID: 2, FullName: "Bob", PhoneNumber: "555"},
	}

	got, err := newStubService(repo).GetFriendProfile(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.MutualFriendCount)
	assert.Equal(t, int64(0), got.TotalFriendCount)
}

func TestGetFriendProfile_NotFound(t *testing.T) {
	repo := &stubFriendshipRepo{
		rowErr: errorx.Wrap(gorm.ErrRecordNotFound, errorx.CodeNotFound, "查询好友资料"),
	}

	_, err := newStubService(repo).GetFriendProfile(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	assert.ErrorIs(t, err, errorx.ErrNotFound)
}

func TestGetFriendProfile_StorageErrorPropagates(t *testing.T) {
	dbErr := errorx.Wrap(errors.New("connection refused"), errorx.CodeDBError, "统计共同好友")
	repo := &stubFriendshipRepo{
		row:       &model.FriendProfileRow{ID: 2, FullName: "Bob", PhoneNumber: "555"},
		mutualErr: dbErr,
	}

	_, err := newStubService(repo).GetFriendProfile(context.Background(), 1, 2)
	assert.Same(t, dbErr, err)
}

func TestGetFriendProfile_ShapeViolation(t *testing.T) {
	cases := map[string]*model.FriendProfileRow{
		"empty name":     {ID: 2, FullName: "", PhoneNumber: "555"},
		"empty phone":    {ID: 2, FullName: "Bob", PhoneNumber: ""},
		"zero id":        {ID: 0, FullName: "Bob", PhoneNumber: "555"},
		"negative count": {ID: 2, FullName: "Bob", PhoneNumber: "555", TotalFriendCount: -1},
	}
	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newStubService(&stubFriendshipRepo{row: row}).GetFriendProfile(context.Background(), 1, 2)
			require.Error(t, err)
			assert.Equal(t, errorx.CodeInternal, errorx.GetCode(err))
		})
	}
}

func TestGetFriendProfile_InvalidIds(t *testing.T) {
	repo := &stubFriendshipRepo{}
	svc := newStubService(repo)

	for _, ids := range [][2]int64{{0, 2}, {1, 0}, {-1, 2}} {
		_, err := svc.GetFriendProfile(context.Background(), ids[0], ids[1])
		assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	}
	assert.Equal(t, int32(0), repo.calls.Load())
}

func TestGetFriendProfile_Sqlite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Friendship{}))

	require.NoError(t, db.Create(&[]model.User{
		{ID: 1, FullName: "Alice", PhoneNumber: "111"},
		{ID: 2, FullName: "Bob", PhoneNumber: "555"},
		{ID: 3, FullName: "Carol", PhoneNumber: "333"},
	}).Error)
	for _, e := range [][2]int64{{1, 2}, {2, 1}, {1, 3}, {2, 3}, {3, 1}, {3, 2}} {
		require.NoError(t, db.Create(&model.Friendship{UserID: e[0], FriendUserID: e[1], Status: model.FriendshipStatusAccepted}).Error)
	}

	svc := NewFriendService(repository.NewRepositories(db))

	got, err := svc.GetFriendProfile(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, &respond.GetFriendProfileRespond{
		Id: 2, FullName: "Bob", PhoneNumber: "555", TotalFriendCount: 2, MutualFriendCount: 1,
	}, got)

	_, err = svc.GetFriendProfile(context.Background(), 1, 5)
	assert.True(t, errorx.IsNotFound(err))
}
