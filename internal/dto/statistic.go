package dto

import "time"

// StatisticRequest 统计时间范围（含两端）
type StatisticRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// ViewPoint 某天的观看次数
type ViewPoint struct {
	Day   string `json:"day"`
	Views int64  `json:"views"`
}

// MovieViewStatistic 单部影片的观看趋势
type MovieViewStatistic struct {
	MovieID    int         `json:"movieId"`
	Title      string      `json:"title"`
	TotalViews int64       `json:"totalViews"`
	Points     []ViewPoint `json:"points"`
}

// TopMovieResponse 热门影片
type TopMovieResponse struct {
	MovieID int    `json:"movieId"`
	Title   string `json:"title"`
	Views   int64  `json:"views"`
}

// OverviewResponse 后台概览
type OverviewResponse struct {
	Movies   int64 `json:"movies"`
	Series   int64 `json:"series"`
	Episodes int64 `json:"episodes"`
	Genres   int64 `json:"genres"`
	Orders   int64 `json:"orders"`
	Revenue  int64 `json:"revenue"`
}
