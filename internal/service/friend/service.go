// Package friend 提供好友资料查询业务逻辑
package friend

import (
	"context"

	"friend_profile_server/internal/dao/mysql/repository"
	"friend_profile_server/internal/dto/respond"
	"friend_profile_server/internal/model"
	"friend_profile_server/pkg/errorx"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service 好友业务逻辑实现
type Service struct {
	repos    *repository.Repositories
	validate *validator.Validate // 校验输出结构
}

// NewFriendService 构造函数
func NewFriendService(repos *repository.Repositories) *Service {
	return &Service{
		repos:    repos,
		validate: validator.New(),
	}
}

// GetFriendProfile 获取好友资料以及好友总数、共同好友数
// 要求存在 userId -> friendUserId 的已接受关系，否则返回 CodeNotFound
//
// 共同好友统计与主查询互不依赖，并发执行后再合并
func (s *Service) GetFriendProfile(ctx context.Context, userId, friendUserId int64) (*respond.GetFriendProfileRespond, error) {
	if userId <= 0 || friendUserId <= 0 {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "非法的用户ID user_id=%d friend_user_id=%d", userId, friendUserId)
	}

	var (
		row    *model.FriendProfileRow
		mutual int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repos.Friendship.CountMutualFriends(gctx, userId, friendUserId)
		if err != nil {
			return err
		}
		mutual = n
		return nil
	})
	g.Go(func() error {
		r, err := s.repos.Friendship.FindAcceptedFriendProfile(gctx, userId, friendUserId)
		if err != nil {
			return err
		}
		row = r
		return nil
	})
	if err := g.Wait(); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Wrap(err, errorx.CodeNotFound, "好友关系不存在")
		}
		zap.L().Error("get friend profile error",
			zap.Int64("user_id", userId),
			zap.Int64("friend_user_id", friendUserId),
			zap.Error(err),
		)
		return nil, err
	}

	rsp := &respond.GetFriendProfileRespond{
		Id:                row.ID,
		FullName:          row.FullName,
		PhoneNumber:       row.PhoneNumber,
		TotalFriendCount:  row.TotalFriendCount,
		MutualFriendCount: mutual,
	}
	if err := s.validate.Struct(rsp); err != nil {
		zap.L().Error("friend profile violates output shape",
			zap.Int64("user_id", userId),
			zap.Int64("friend_user_id", friendUserId),
			zap.Any("profile", rsp),
			zap.Error(err),
		)
		return nil, errorx.Wrap(err, errorx.CodeInternal, "好友资料数据异常")
	}
	return rsp, nil
}
