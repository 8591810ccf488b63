package router

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/handler"
	"github.com/user/filmhub/internal/middleware"
)

const wsPath = "/api/ws"

// New 创建带全局中间件的 Gin 引擎并注册路由
func New(cfg *config.Config, h *handler.Handler, logger hclog.Logger) *gin.Engine {
	// 请求结构体的校验统一在服务层完成
	binding.Validator = nil

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger), middleware.CORS(cfg.CORSOrigins))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{wsPath})))

	store := cookie.NewStore([]byte(cfg.AppSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("filmhub_session", store), middleware.GuestID())

	RegisterRoutes(r, h, cfg.JWTSecret)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler, jwtSecret string) {
	r.GET("/health", h.Health)

	auth := middleware.RequireAuth(jwtSecret)
	admin := []gin.HandlerFunc{auth, middleware.RequireAdmin()}
	with := func(chain []gin.HandlerFunc, fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, chain...), fn)
	}

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(jwtSecret))
	api.GET("/ws", h.WebSocket)

	// ==================== 影片 ====================
	movies := api.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/all", h.AllMovies)
		movies.GET("/recent", h.RecentMovies)
		movies.GET("/series", h.TVShows)
		movies.GET("/:id", h.GetMovie)
		movies.GET("/:id/similar", h.SimilarMovies)
		movies.GET("/:id/episodes", h.MovieEpisodes)
		movies.GET("/:id/comments", h.MovieComments)
		movies.POST("/:id/view", h.IncreaseViewCount)
		movies.POST("", with(admin, h.CreateMovie)...)
		movies.PUT("/:id", with(admin, h.UpdateMovie)...)
		movies.DELETE("/:id", with(admin, h.DeleteMovie)...)
	}

	episodes := api.Group("/episodes")
	{
		episodes.GET("/:id", h.GetEpisode)
		episodes.GET("/:id/comments", h.EpisodeComments)
		episodes.POST("", with(admin, h.CreateEpisode)...)
		episodes.PUT("/:id", with(admin, h.UpdateEpisode)...)
		episodes.DELETE("/:id", with(admin, h.DeleteEpisode)...)
	}

	genres := api.Group("/genres")
	{
		genres.GET("", h.ListGenres)
		genres.GET("/all", h.AllGenres)
		genres.GET("/:id", h.GetGenre)
		genres.POST("", with(admin, h.CreateGenre)...)
		genres.PUT("/:id", with(admin, h.UpdateGenre)...)
		genres.DELETE("/:id", with(admin, h.DeleteGenre)...)
	}

	// ==================== 博客与资讯 ====================
	blogTags := api.Group("/blog-tags")
	{
		blogTags.GET("", h.ListBlogTags)
		blogTags.GET("/all", h.AllBlogTags)
		blogTags.GET("/:id", h.GetBlogTag)
		blogTags.POST("", with(admin, h.CreateBlogTag)...)
		blogTags.PUT("/:id", with(admin, h.UpdateBlogTag)...)
		blogTags.DELETE("/:id", with(admin, h.DeleteBlogTag)...)
	}

	blogPosts := api.Group("/blog-posts")
	{
		blogPosts.GET("", h.ListBlogPosts)
		blogPosts.GET("/all", h.AllBlogPosts)
		blogPosts.GET("/:id", h.GetBlogPost)
		blogPosts.POST("", with(admin, h.CreateBlogPost)...)
		blogPosts.PUT("/:id", with(admin, h.UpdateBlogPost)...)
		blogPosts.DELETE("/:id", with(admin, h.DeleteBlogPost)...)
	}

	tags := api.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.GET("/all", h.AllTags)
		tags.GET("/:id", h.GetTag)
		tags.POST("", with(admin, h.CreateTag)...)
		tags.PUT("/:id", with(admin, h.UpdateTag)...)
		tags.DELETE("/:id", with(admin, h.DeleteTag)...)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/all", h.AllPosts)
		posts.GET("/:id", h.GetPost)
		posts.POST("", with(admin, h.CreatePost)...)
		posts.PUT("/:id", with(admin, h.UpdatePost)...)
		posts.DELETE("/:id", with(admin, h.DeletePost)...)
	}

	// ==================== 互动 ====================
	comments := api.Group("/comments")
	{
		comments.POST("", auth, h.CreateComment)
		comments.DELETE("/:id", auth, h.DeleteComment)
	}

	// 游客也可以记录观看进度
	histories := api.Group("/watch-histories")
	{
		histories.GET("", h.WatchHistories)
		histories.POST("", h.RecordWatch)
		histories.GET("/progress", h.WatchProgress)
		histories.POST("/migrate", auth, h.MigrateWatchHistory)
	}

	users := api.Group("/users")
	{
		users.GET("", with(admin, h.ListUsers)...)
		users.GET("/me", auth, h.Me)
		users.GET("/me/follows", auth, h.FollowedMovies)
		users.GET("/me/follows/:movieId", auth, h.IsFollowing)
		users.POST("/me/follows/:movieId", auth, h.FollowMovie)
		users.DELETE("/me/follows/:movieId", auth, h.UnfollowMovie)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", auth, h.Notifications)
		notifications.GET("/unread-count", auth, h.UnreadCount)
		notifications.PUT("/read-all", auth, h.MarkAllAsRead)
		notifications.PUT("/:id/read", auth, h.MarkAsRead)
		notifications.DELETE("/:id", auth, h.DeleteNotification)
		notifications.POST("", with(admin, h.CreateNotification)...)
		notifications.POST("/broadcast", with(admin, h.Broadcast)...)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", auth, h.Orders)
		orders.GET("/purchased/:movieId", auth, h.HasPurchased)
		orders.POST("/checkout", auth, h.Checkout)
		orders.POST("/complete", auth, h.CompleteOrder)
	}

	// ==================== 统计（管理员）====================
	stats := api.Group("/statistics")
	stats.Use(admin...)
	{
		stats.GET("/views", h.ViewStatistics)
		stats.GET("/top", h.TopMovies)
		stats.GET("/overview", h.Overview)
	}
}
