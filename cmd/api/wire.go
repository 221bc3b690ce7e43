//go:build wireinject
// +build wireinject

// Wire依赖注入配置，修改后执行 `wire gen ./cmd/api` 重新生成wire_gen.go
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appauthor "github.com/xiebiao/libraryapi/internal/application/author"
	appbook "github.com/xiebiao/libraryapi/internal/application/book"
	appcomment "github.com/xiebiao/libraryapi/internal/application/comment"
	appuser "github.com/xiebiao/libraryapi/internal/application/user"
	"github.com/xiebiao/libraryapi/internal/domain/author"
	"github.com/xiebiao/libraryapi/internal/domain/book"
	"github.com/xiebiao/libraryapi/internal/domain/comment"
	"github.com/xiebiao/libraryapi/internal/domain/user"
	"github.com/xiebiao/libraryapi/internal/infrastructure/config"
	"github.com/xiebiao/libraryapi/internal/infrastructure/messaging"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/libraryapi/internal/interface/http/handler"
	"github.com/xiebiao/libraryapi/internal/interface/http/middleware"
	"github.com/xiebiao/libraryapi/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、事件发布
var infrastructureSet = wire.NewSet(
	gormdb.NewDB,
	redis.NewClient,
	messaging.NewPublisher,
)

var repositorySet = wire.NewSet(
	gormdb.NewAuthorRepository,
	gormdb.NewBookRepository,
	gormdb.NewCommentRepository,
	gormdb.NewUserRepository,
	gormdb.NewTxManager,
	redis.NewSessionStore,

	// 图书服务只需要作者存在性查询，评论服务只需要图书存在性查询
	wire.Bind(new(book.AuthorDirectory), new(author.Repository)),
	wire.Bind(new(comment.BookChecker), new(book.Repository)),
)

var domainSet = wire.NewSet(
	author.NewService,
	book.NewService,
	comment.NewService,
	user.NewService,
)

var applicationSet = wire.NewSet(
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewUpdateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,

	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewReplaceBookUseCase,
	appbook.NewPatchBookUseCase,

	appcomment.NewAddCommentUseCase,
	appcomment.NewQueryCommentsUseCase,
	appcomment.NewUpdateCommentUseCase,

	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	appuser.NewRefreshUseCase,
	appuser.NewLogoutUseCase,
)

var interfaceSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,

	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewCommentHandler,
	handler.NewUserHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.NewRouter,
)

// InitializeApp 组装整个应用，cleanup按创建的逆序释放连接
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil, nil
}
