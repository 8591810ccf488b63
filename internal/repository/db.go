package repository

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/user/filmhub/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接（lib/pq 连接池交给 gorm 使用）
func InitDB(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 gorm 失败: %w", err)
	}
	return db, nil
}

// AutoMigrate 同步表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Genre{},
		&model.Movie{},
		&model.MovieGenre{},
		&model.Episode{},
		&model.Comment{},
		&model.FollowedMovie{},
		&model.WatchHistory{},
		&model.BlogTag{},
		&model.BlogPost{},
		&model.BlogPostTag{},
		&model.Tag{},
		&model.Post{},
		&model.PostTags{},
		&model.Notification{},
		&model.Order{},
	)
}

// Repositories 仓库集合
type Repositories struct {
	DB            *gorm.DB
	Movie         *MovieRepository
	Genre         *GenreRepository
	Episode       *EpisodeRepository
	Comment       *CommentRepository
	FollowedMovie *FollowedMovieRepository
	WatchHistory  *WatchHistoryRepository
	BlogPost      *BlogPostRepository
	BlogTag       *BlogTagRepository
	Post          *PostRepository
	Tag           *TagRepository
	Notification  *NotificationRepository
	Order         *OrderRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:            db,
		Movie:         NewMovieRepository(db),
		Genre:         NewGenreRepository(db),
		Episode:       NewEpisodeRepository(db),
		Comment:       NewCommentRepository(db),
		FollowedMovie: NewFollowedMovieRepository(db),
		WatchHistory:  NewWatchHistoryRepository(db),
		BlogPost:      NewBlogPostRepository(db),
		BlogTag:       NewBlogTagRepository(db),
		Post:          NewPostRepository(db),
		Tag:           NewTagRepository(db),
		Notification:  NewNotificationRepository(db),
		Order:         NewOrderRepository(db),
	}
}
