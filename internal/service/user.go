package service

import (
	"context"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/repository"
)

// UserService 用户资料与关注
type UserService struct {
	users   UserDirectory
	follows *repository.FollowedMovieRepository
	movies  *repository.MovieRepository
}

// NewUserService 创建用户服务
func NewUserService(repos *repository.Repositories, users UserDirectory) *UserService {
	return &UserService{users: users, follows: repos.FollowedMovie, movies: repos.Movie}
}

// GetProfile 用户资料
func (s *UserService) GetProfile(ctx context.Context, userID string) (*Result[dto.UserResponse], error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return NotFound[dto.UserResponse]("用户 %s 不存在", userID), nil
	}
	return Ok(mapper.ToUserResponse(*user), ""), nil
}

// GetAllUsers 全部用户
func (s *UserService) GetAllUsers(ctx context.Context) (*Result[[]dto.UserResponse], error) {
	users, err := s.users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	return Ok(mapper.Slice(users, mapper.ToUserResponse), ""), nil
}

// FollowMovie 关注影片，重复关注视为成功
func (s *UserService) FollowMovie(ctx context.Context, userID string, movieID int) (*Result[dto.FollowedMovieResponse], error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.FollowedMovieResponse]("影片 %d 不存在", movieID), nil
	}
	follow, err := s.follows.Follow(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	return Ok(mapper.ToFollowedMovieResponse(*follow), "关注成功"), nil
}

// UnfollowMovie 取消关注
func (s *UserService) UnfollowMovie(ctx context.Context, userID string, movieID int) (*Result[bool], error) {
	removed, err := s.follows.Unfollow(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		return NotFound[bool]("未关注影片 %d", movieID), nil
	}
	return Ok(true, "已取消关注"), nil
}

// IsFollowing 是否已关注
func (s *UserService) IsFollowing(ctx context.Context, userID string, movieID int) (*Result[bool], error) {
	following, err := s.follows.IsFollowing(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	return Ok(following, ""), nil
}

// GetFollowedMovies 关注列表
func (s *UserService) GetFollowedMovies(ctx context.Context, userID string, page dto.PageQuery) (*Result[dto.PagedResponse[dto.FollowedMovieResponse]], error) {
	p := repository.NewPage(page.PageNumber, page.PageSize)
	follows, total, err := s.follows.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	items := mapper.Slice(follows, mapper.ToFollowedMovieResponse)
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, total), ""), nil
}
