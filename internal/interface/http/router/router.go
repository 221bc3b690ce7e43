// Package router 组装Gin引擎：全局中间件、运维端点和 /api/v1 业务路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/libraryapi/internal/infrastructure/config"
	"github.com/xiebiao/libraryapi/internal/interface/http/handler"
	"github.com/xiebiao/libraryapi/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
	"github.com/xiebiao/libraryapi/pkg/response"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Author  *handler.AuthorHandler
	Book    *handler.BookHandler
	Comment *handler.CommentHandler
	User    *handler.UserHandler
}

// NewRouter 创建Gin引擎并注册路由
// 中间件顺序：RequestID → Recovery → Tracing → Metrics → Logger
func NewRouter(cfg *config.Config, h Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Tracing(),
		middleware.Metrics(),
		middleware.Logger(),
	)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.New(apperrors.ErrCodeNotFound, "接口不存在"))
	})

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := auth.RequireAuth()

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		users.POST("/register", h.User.Register)
		users.POST("/login", h.User.Login)
		users.POST("/refresh", h.User.Refresh)
		users.POST("/logout", requireAuth, h.User.Logout)

		authors := v1.Group("/authors")
		authors.GET("", h.Author.List)
		authors.GET("/search", requireAuth, h.Author.Search)
		authors.GET("/:id", requireAuth, h.Author.Get)
		authors.POST("", requireAuth, h.Author.Create)
		authors.PUT("/:id", requireAuth, h.Author.Update)
		authors.DELETE("/:id", requireAuth, h.Author.Delete)

		books := v1.Group("/books")
		books.GET("", h.Book.List)
		books.GET("/:id", h.Book.Get)
		books.POST("", requireAuth, h.Book.Create)
		books.PUT("/:id", requireAuth, h.Book.Replace)
		books.PATCH("/:id", requireAuth, h.Book.Patch)

		books.GET("/:id/comments", h.Comment.List)
		books.GET("/:id/comments/:commentId", h.Comment.Get)
		books.POST("/:id/comments", requireAuth, h.Comment.Create)
		books.PUT("/:id/comments/:commentId", requireAuth, h.Comment.Update)
	}

	return r
}
