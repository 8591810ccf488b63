package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieFilterKind 影片列表的过滤方式
type MovieFilterKind int

const (
	MoviesAll       MovieFilterKind = iota // 普通列表
	MoviesByGenre                          // 指定类型
	MoviesBySeries                         // 按是否剧集
	MoviesRecent                           // 按上映时间倒序
	MoviesSameGenre                        // 与某部影片同类型（排除自身）
	MoviesSearch                           // 标题关键词
)

// MovieFilter 影片列表查询描述
type MovieFilter struct {
	Kind        MovieFilterKind
	GenreID     int
	MovieID     int
	IsSeries    bool
	Keyword     string
	OnlyVisible bool
	Page        Page
}

const moviePreloadGenres = "MovieGenres.Genre"

// MovieRepository 影片仓库
type MovieRepository struct {
	*Repository[model.Movie]
	db *gorm.DB
}

// NewMovieRepository 创建影片仓库
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{Repository: NewRepository[model.Movie](db), db: db}
}

// Create 在同一事务中写入影片及其类型关联
func (r *MovieRepository) Create(ctx context.Context, movie *model.Movie, genreIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(movie).Error; err != nil {
			return err
		}
		return replaceMovieGenres(tx, movie.ID, genreIDs)
	})
}

// Save 保存影片；genreIDs 为 nil 时保留原有类型关联
func (r *MovieRepository) Save(ctx context.Context, movie *model.Movie, genreIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(movie).Error; err != nil {
			return err
		}
		if genreIDs == nil {
			return nil
		}
		return replaceMovieGenres(tx, movie.ID, genreIDs)
	})
}

func replaceMovieGenres(tx *gorm.DB, movieID int, genreIDs []int) error {
	if err := tx.Where("movie_id = ?", movieID).Delete(&model.MovieGenre{}).Error; err != nil {
		return err
	}
	ids := uniqueIDs(genreIDs)
	if len(ids) == 0 {
		return nil
	}
	rows := make([]model.MovieGenre, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.MovieGenre{MovieID: movieID, GenreID: id})
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}

// GetWithGenres 查找影片并预加载类型，不存在返回 nil, nil
func (r *MovieRepository) GetWithGenres(ctx context.Context, id int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.WithContext(ctx).Preload(moviePreloadGenres).First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// ListWithGenres 获取全部影片（含类型）
func (r *MovieRepository) ListWithGenres(ctx context.Context) ([]model.Movie, error) {
	movies := []model.Movie{}
	err := r.db.WithContext(ctx).Preload(moviePreloadGenres).Order("id DESC").Find(&movies).Error
	return movies, err
}

// FindMovies 按过滤描述分页查询，返回当前页与总数
func (r *MovieRepository) FindMovies(ctx context.Context, f MovieFilter) ([]model.Movie, int64, error) {
	scope := r.filterScope(f)

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Movie{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := r.db.WithContext(ctx).Scopes(scope).Preload(moviePreloadGenres)
	if f.Kind == MoviesRecent {
		tx = tx.Order("release_date DESC")
	}
	movies := []model.Movie{}
	err := tx.Order("id DESC").Offset(f.Page.Offset()).Limit(f.Page.Limit()).Find(&movies).Error
	return movies, total, err
}

func (r *MovieRepository) filterScope(f MovieFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.OnlyVisible {
			tx = tx.Where("movies.is_show = ?", true)
		}
		switch f.Kind {
		case MoviesByGenre:
			sub := r.db.Model(&model.MovieGenre{}).Select("movie_id").Where("genre_id = ?", f.GenreID)
			tx = tx.Where("movies.id IN (?)", sub)
		case MoviesBySeries:
			tx = tx.Where("movies.is_series = ?", f.IsSeries)
		case MoviesSameGenre:
			genres := r.db.Model(&model.MovieGenre{}).Select("genre_id").Where("movie_id = ?", f.MovieID)
			sub := r.db.Model(&model.MovieGenre{}).Select("movie_id").Where("genre_id IN (?)", genres)
			tx = tx.Where("movies.id <> ?", f.MovieID).Where("movies.id IN (?)", sub)
		case MoviesSearch:
			tx = tx.Where("LOWER(movies.title) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(f.Keyword))+"%")
		}
		return tx
	}
}

// IncrementView 播放量 +1
func (r *MovieRepository) IncrementView(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// DeleteAggregate 删除影片及其所有从属记录
func (r *MovieRepository) DeleteAggregate(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []any{
			&model.MovieGenre{},
			&model.Comment{},
			&model.FollowedMovie{},
			&model.WatchHistory{},
			&model.Episode{},
		}
		for _, d := range dependents {
			if err := tx.Where("movie_id = ?", id).Delete(d).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Movie{}, id).Error
	})
}
