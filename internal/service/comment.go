package service

import (
	"context"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// CommentService 评论服务
type CommentService struct {
	comments *repository.CommentRepository
	movies   *repository.MovieRepository
	episodes *repository.EpisodeRepository
	users    UserDirectory
	logger   hclog.Logger
}

// NewCommentService 创建评论服务
func NewCommentService(repos *repository.Repositories, users UserDirectory, logger hclog.Logger) *CommentService {
	return &CommentService{
		comments: repos.Comment,
		movies:   repos.Movie,
		episodes: repos.Episode,
		users:    users,
		logger:   logger.Named("comment"),
	}
}

// CreateMovieComment 影片评论
func (s *CommentService) CreateMovieComment(ctx context.Context, userID string, req dto.CreateCommentRequest) (*Result[dto.CommentResponse], error) {
	req.EpisodeID = nil
	return s.create(ctx, userID, req)
}

// CreateEpisodeComment 分集评论，分集必须属于该影片
func (s *CommentService) CreateEpisodeComment(ctx context.Context, userID string, req dto.CreateCommentRequest) (*Result[dto.CommentResponse], error) {
	if req.EpisodeID == nil {
		return Invalid[dto.CommentResponse]("episodeId 不能为空"), nil
	}
	return s.create(ctx, userID, req)
}

func (s *CommentService) create(ctx context.Context, userID string, req dto.CreateCommentRequest) (*Result[dto.CommentResponse], error) {
	if userID == "" {
		return Forbidden[dto.CommentResponse]("请先登录"), nil
	}
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.CommentResponse]("%s", msg), nil
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return Invalid[dto.CommentResponse]("content 不能为空"), nil
	}

	movie, err := s.movies.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.CommentResponse]("影片 %d 不存在", req.MovieID), nil
	}
	if req.EpisodeID != nil {
		episode, err := s.episodes.GetByID(ctx, *req.EpisodeID)
		if err != nil {
			return nil, err
		}
		if episode == nil || episode.MovieID != req.MovieID {
			return NotFound[dto.CommentResponse]("分集 %d 不存在", *req.EpisodeID), nil
		}
	}

	// 先取用户资料，身份服务失败时不留下评论
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		MovieID:   req.MovieID,
		EpisodeID: req.EpisodeID,
		UserID:    userID,
		Content:   content,
	}
	if _, err := s.comments.Add(ctx, &comment); err != nil {
		return nil, err
	}
	return Ok(mapper.ToCommentResponse(comment, user), "评论成功"), nil
}

// GetMovieComments 影片评论列表
func (s *CommentService) GetMovieComments(ctx context.Context, movieID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.CommentResponse]], error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.PagedResponse[dto.CommentResponse]]("影片 %d 不存在", movieID), nil
	}
	p := repository.NewPage(page.PageNumber, page.PageSize)
	comments, total, err := s.comments.ListByMovie(ctx, movieID, p)
	if err != nil {
		return nil, err
	}
	return s.withUsers(ctx, comments, p, total)
}

// GetEpisodeComments 分集评论列表
func (s *CommentService) GetEpisodeComments(ctx context.Context, episodeID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.CommentResponse]], error) {
	episode, err := s.episodes.GetByID(ctx, episodeID)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return NotFound[dto.PagedResponse[dto.CommentResponse]]("分集 %d 不存在", episodeID), nil
	}
	p := repository.NewPage(page.PageNumber, page.PageSize)
	comments, total, err := s.comments.ListByEpisode(ctx, episodeID, p)
	if err != nil {
		return nil, err
	}
	return s.withUsers(ctx, comments, p, total)
}

// DeleteComment 删除评论，仅作者或管理员可删除
func (s *CommentService) DeleteComment(ctx context.Context, userID string, isAdmin bool, id int) (*Result[bool], error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return NotFound[bool]("评论 %d 不存在", id), nil
	}
	if !isAdmin && comment.UserID != userID {
		return Forbidden[bool]("无权删除该评论"), nil
	}
	if err := s.comments.Remove(ctx, comment); err != nil {
		return nil, err
	}
	s.logger.Info("评论已删除", "id", id, "by", userID, "admin", isAdmin)
	return Ok(true, "删除成功"), nil
}

// withUsers 一次拉取全部用户资料后在内存中关联，避免逐条请求身份服务
func (s *CommentService) withUsers(ctx context.Context, comments []model.Comment, p repository.Page, total int64) (*Result[dto.PagedResponse[dto.CommentResponse]], error) {
	items := make([]dto.CommentResponse, 0, len(comments))
	if len(comments) > 0 {
		users, err := s.users.GetUsers(ctx)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]*model.UserProfile, len(users))
		for i := range users {
			byID[users[i].UserID] = &users[i]
		}
		for _, c := range comments {
			items = append(items, mapper.ToCommentResponse(c, byID[c.UserID]))
		}
	}
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, total), ""), nil
}
