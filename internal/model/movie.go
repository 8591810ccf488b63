package model

import "time"

// Movie 影片（电影或剧集）
type Movie struct {
	ID                int          `json:"id" gorm:"primaryKey"`
	Title             string       `json:"title" gorm:"not null;index"`
	Description       string       `json:"description"`
	Director          string       `json:"director"`
	Actor             string       `json:"actor"` // 以 ", " 分隔的演员列表
	PosterURL         string       `json:"poster_url"`
	BannerURL         string       `json:"banner_url"`
	VideoURL          string       `json:"video_url"`
	IsPaid            bool         `json:"is_paid"`
	Price             int64        `json:"price"`
	IsSeries          bool         `json:"is_series" gorm:"index"`
	IsSeriesCompleted *bool        `json:"is_series_completed"`
	ViewCount         int64        `json:"view_count"`
	RateCount         int64        `json:"rate_count"`
	IsShow            bool         `json:"is_show" gorm:"index"`
	ReleaseDate       time.Time    `json:"release_date" gorm:"index"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
	Episodes          []Episode    `json:"episodes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	MovieGenres       []MovieGenre `json:"movie_genres,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// Genre 影片类型
type Genre struct {
	ID          int          `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	IsShow      bool         `json:"is_show"`
	MovieGenres []MovieGenre `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// MovieGenre 影片与类型的关联（联合主键）
type MovieGenre struct {
	MovieID int    `json:"movie_id" gorm:"primaryKey;autoIncrement:false"`
	GenreID int    `json:"genre_id" gorm:"primaryKey;autoIncrement:false"`
	Movie   *Movie `json:"-"`
	Genre   *Genre `json:"genre,omitempty"`
}

// Episode 剧集分集
type Episode struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	MovieID       int       `json:"movie_id" gorm:"not null;index"`
	Title         string    `json:"title" gorm:"not null"`
	Description   *string   `json:"description"`
	EpisodeNumber int       `json:"episode_number"`
	VideoURL      string    `json:"video_url"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	IsShow        bool      `json:"is_show"`
	CreatedAt     time.Time `json:"created_at"`
}
