package dto

import "time"

// CreateMovieRequest 创建影片
type CreateMovieRequest struct {
	Title             string    `form:"title" binding:"required,notblank,max=255"`
	Description       string    `form:"description"`
	Director          string    `form:"director" binding:"required,notblank"`
	Actors            []string  `form:"actors" binding:"required,min=1,dive,notblank,excludes=0x2C"`
	IsPaid            bool      `form:"isPaid"`
	Price             int64     `form:"price" binding:"gte=0"`
	IsSeries          bool      `form:"isSeries"`
	IsSeriesCompleted *bool     `form:"isSeriesCompleted"`
	IsShow            bool      `form:"isShow"`
	ReleaseDate       time.Time `form:"releaseDate" time_format:"2006-01-02"`
	GenreIDs          []int     `form:"genreIds"`
	Poster            *File     `form:"-" binding:"required"`
	Banner            *File     `form:"-" binding:"required"`
	Video             *File     `form:"-"`
}

// UpdateMovieRequest 更新影片，nil 字段保持不变
type UpdateMovieRequest struct {
	Title             *string    `form:"title" binding:"omitnil,notblank,max=255"`
	Description       *string    `form:"description"`
	Director          *string    `form:"director" binding:"omitnil,notblank"`
	Actors            []string   `form:"actors" binding:"omitnil,min=1,dive,notblank,excludes=0x2C"`
	IsPaid            *bool      `form:"isPaid"`
	Price             *int64     `form:"price" binding:"omitempty,gte=0"`
	IsSeries          *bool      `form:"isSeries"`
	IsSeriesCompleted *bool      `form:"isSeriesCompleted"`
	IsShow            *bool      `form:"isShow"`
	ReleaseDate       *time.Time `form:"releaseDate" time_format:"2006-01-02"`
	GenreIDs          []int      `form:"genreIds"`
	Poster            *File      `form:"-"`
	Banner            *File      `form:"-"`
	Video             *File      `form:"-"`
}

// MovieGenreResponse 影片所属类型
type MovieGenreResponse struct {
	GenreID   int    `json:"genreId"`
	GenreName string `json:"genreName"`
}

// MovieResponse 影片
type MovieResponse struct {
	ID                int                  `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Director          string               `json:"director"`
	Actors            []string             `json:"actors"`
	PosterURL         string               `json:"posterUrl"`
	BannerURL         string               `json:"bannerUrl"`
	VideoURL          string               `json:"videoUrl"`
	IsPaid            bool                 `json:"isPaid"`
	Price             int64                `json:"price"`
	IsSeries          bool                 `json:"isSeries"`
	IsSeriesCompleted *bool                `json:"isSeriesCompleted"`
	ViewCount         int64                `json:"viewCount"`
	RateCount         int64                `json:"rateCount"`
	IsShow            bool                 `json:"isShow"`
	ReleaseDate       time.Time            `json:"releaseDate"`
	CreatedAt         time.Time            `json:"createdAt"`
	Genres            []MovieGenreResponse `json:"genres"`
}

// CreateEpisodeRequest 创建分集，集数由服务端分配
type CreateEpisodeRequest struct {
	MovieID     int     `form:"movieId" binding:"required,gt=0"`
	Title       string  `form:"title" binding:"required,notblank,max=255"`
	Description *string `form:"description"`
	IsShow      bool    `form:"isShow"`
	Video       *File   `form:"-" binding:"required"`
	Thumbnail   *File   `form:"-"`
}

// UpdateEpisodeRequest 更新分集
type UpdateEpisodeRequest struct {
	Title       *string `form:"title" binding:"omitnil,notblank,max=255"`
	Description *string `form:"description"`
	IsShow      *bool   `form:"isShow"`
	Video       *File   `form:"-"`
	Thumbnail   *File   `form:"-"`
}

// EpisodeResponse 分集
type EpisodeResponse struct {
	ID            int       `json:"id"`
	MovieID       int       `json:"movieId"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	EpisodeNumber int       `json:"episodeNumber"`
	VideoURL      string    `json:"videoUrl"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	IsShow        bool      `json:"isShow"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GenreRequest 创建类型
type GenreRequest struct {
	Name   string `json:"name" binding:"required,notblank,max=100"`
	IsShow bool   `json:"isShow"`
}

// UpdateGenreRequest 更新类型
type UpdateGenreRequest struct {
	Name   *string `json:"name" binding:"omitnil,notblank,max=100"`
	IsShow *bool   `json:"isShow"`
}

// GenreResponse 类型
type GenreResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	IsShow bool   `json:"isShow"`
}
