package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appauthor "github.com/xiebiao/libraryapi/internal/application/author"
	appbook "github.com/xiebiao/libraryapi/internal/application/book"
	appcomment "github.com/xiebiao/libraryapi/internal/application/comment"
	"github.com/xiebiao/libraryapi/internal/application/event"
	appuser "github.com/xiebiao/libraryapi/internal/application/user"
	"github.com/xiebiao/libraryapi/internal/domain/author"
	"github.com/xiebiao/libraryapi/internal/domain/book"
	"github.com/xiebiao/libraryapi/internal/domain/comment"
	"github.com/xiebiao/libraryapi/internal/domain/user"
	"github.com/xiebiao/libraryapi/internal/infrastructure/config"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/gormdb/testdb"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/libraryapi/internal/interface/http/handler"
	"github.com/xiebiao/libraryapi/internal/interface/http/middleware"
	"github.com/xiebiao/libraryapi/pkg/jwt"
)

// envelope 统一响应结构
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testdb.New(t)
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	jwtManager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	sessionStore := redis.NewSessionStore(client)
	tx := gormdb.NewTxManager(db)
	publisher := event.NopPublisher{}

	authorRepo := gormdb.NewAuthorRepository(db)
	bookRepo := gormdb.NewBookRepository(db)
	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo, authorRepo)
	commentService := comment.NewService(gormdb.NewCommentRepository(db), bookRepo)
	userService := user.NewServiceWithCost(gormdb.NewUserRepository(db), bcrypt.MinCost)

	h := Handlers{
		Author: handler.NewAuthorHandler(
			appauthor.NewCreateAuthorUseCase(authorService, tx, publisher),
			appauthor.NewGetAuthorUseCase(authorService),
			appauthor.NewListAuthorsUseCase(authorService),
			appauthor.NewUpdateAuthorUseCase(authorService, tx),
			appauthor.NewDeleteAuthorUseCase(authorService, bookService, tx, publisher),
		),
		Book: handler.NewBookHandler(
			appbook.NewCreateBookUseCase(bookService, tx, publisher),
			appbook.NewGetBookUseCase(bookService),
			appbook.NewListBooksUseCase(bookService),
			appbook.NewReplaceBookUseCase(bookService, tx, publisher),
			appbook.NewPatchBookUseCase(bookService, tx, publisher),
		),
		Comment: handler.NewCommentHandler(
			appcomment.NewAddCommentUseCase(commentService, tx, publisher),
			appcomment.NewQueryCommentsUseCase(commentService),
			appcomment.NewUpdateCommentUseCase(commentService, tx),
		),
		User: handler.NewUserHandler(
			appuser.NewRegisterUseCase(userService),
			appuser.NewLoginUseCase(userService, jwtManager, sessionStore, time.Hour),
			appuser.NewRefreshUseCase(jwtManager, sessionStore),
			appuser.NewLogoutUseCase(jwtManager, sessionStore),
		),
	}

	return &testServer{t: t, engine: NewRouter(cfg, h, middleware.NewAuthMiddleware(jwtManager, sessionStore))}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

// login 注册并登录，返回Access Token
func (s *testServer) login(email string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"email": email, "password": "secret123", "nickname": "reader",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/users/login", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp appuser.LoginResponse
	decode(s.t, w, &resp)
	return resp.AccessToken
}

func (s *testServer) createAuthor(token, name string) uint {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/authors", token, map[string]string{"name": name})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var item appauthor.AuthorItem
	decode(s.t, w, &item)
	return item.ID
}

func (s *testServer) createBook(token, title string, authorIDs ...uint) uint {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/books", token, map[string]interface{}{"title": title, "author_ids": authorIDs})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var detail appbook.BookDetail
	decode(s.t, w, &detail)
	return detail.ID
}

func (s *testServer) getBook(id uint) appbook.BookDetail {
	s.t.Helper()
	w := s.do(http.MethodGet, fmt.Sprintf("/api/v1/books/%d", id), "", nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var detail appbook.BookDetail
	decode(s.t, w, &detail)
	return detail
}

func authorIDs(detail appbook.BookDetail) []uint {
	ids := make([]uint, len(detail.Authors))
	for i, a := range detail.Authors {
		ids[i] = a.ID
	}
	return ids
}

func TestOpsEndpoints(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/ping", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/metrics", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/nope", "", nil).Code)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/authors"},
		{http.MethodGet, "/api/v1/authors/1"},
		{http.MethodGet, "/api/v1/authors/search?name=a"},
		{http.MethodPost, "/api/v1/books"},
		{http.MethodPut, "/api/v1/books/1"},
		{http.MethodPatch, "/api/v1/books/1"},
		{http.MethodPost, "/api/v1/books/1/comments"},
		{http.MethodPost, "/api/v1/users/logout"},
	} {
		w := s.do(tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/authors", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/books", "", nil).Code)
}

func TestAuthorsAPI(t *testing.T) {
	s := newTestServer(t)
	token := s.login("reader@example.com")

	w := s.do(http.MethodPost, "/api/v1/authors", token, map[string]string{"name": "Borges"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created appauthor.AuthorItem
	decode(t, w, &created)
	assert.Equal(t, fmt.Sprintf("/api/v1/authors/%d", created.ID), w.Header().Get("Location"))

	t.Run("同名作者返回400", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/v1/authors", token, map[string]string{"name": "Borges"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("姓名小写返回字段错误", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/v1/authors", token, map[string]string{"name": "borges"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		var fields map[string]string
		decode(t, w, &fields)
		assert.Contains(t, fields, "name")
	})

	t.Run("搜索", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/authors/search?name=org", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var items []appauthor.AuthorItem
		decode(t, w, &items)
		assert.Len(t, items, 1)

		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/authors/search", token, nil).Code)
	})

	t.Run("更新与不存在", func(t *testing.T) {
		w := s.do(http.MethodPut, fmt.Sprintf("/api/v1/authors/%d", created.ID), token, map[string]string{"name": "Jorge Luis Borges"})
		assert.Equal(t, http.StatusNoContent, w.Code)

		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/authors/999", token, nil).Code)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/api/v1/authors/999", token, nil).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/authors/abc", token, nil).Code)
	})
}

func TestBooksAPI(t *testing.T) {
	s := newTestServer(t)
	token := s.login("reader@example.com")

	a := s.createAuthor(token, "Borges")
	b := s.createAuthor(token, "Bioy Casares")
	c := s.createAuthor(token, "Ocampo")

	t.Run("作者顺序即提交顺序", func(t *testing.T) {
		w := s.do(http.MethodPost, "/api/v1/books", token, map[string]interface{}{"title": "Antología", "author_ids": []uint{b, a}})
		require.Equal(t, http.StatusCreated, w.Code)

		var detail appbook.BookDetail
		decode(t, w, &detail)
		assert.Equal(t, fmt.Sprintf("/api/v1/books/%d", detail.ID), w.Header().Get("Location"))
		assert.Equal(t, []uint{b, a}, authorIDs(s.getBook(detail.ID)))
	})

	t.Run("相同作者不同顺序", func(t *testing.T) {
		ab := s.createBook(token, "Seis problemas", a, b)
		ba := s.createBook(token, "Crónicas de Bustos", b, a)

		assert.Equal(t, []uint{a, b}, authorIDs(s.getBook(ab)))
		assert.Equal(t, []uint{b, a}, authorIDs(s.getBook(ba)))
		assert.NotEqual(t, authorIDs(s.getBook(ab)), authorIDs(s.getBook(ba)))
	})

	t.Run("作者为空或不存在", func(t *testing.T) {
		for _, ids := range [][]uint{nil, {}, {a, 999}} {
			w := s.do(http.MethodPost, "/api/v1/books", token, map[string]interface{}{"title": "Otro", "author_ids": ids})
			assert.Equal(t, http.StatusBadRequest, w.Code, "%v", ids)
		}

		w := s.do(http.MethodGet, "/api/v1/books", "", nil)
		var items []appbook.BookItem
		decode(t, w, &items)
		assert.Len(t, items, 3, "失败的请求不写入数据")
	})

	t.Run("PUT替换作者", func(t *testing.T) {
		id := s.createBook(token, "Ficciones", a, b, c)

		w := s.do(http.MethodPut, fmt.Sprintf("/api/v1/books/%d", id), token, map[string]interface{}{"title": "Ficciones", "author_ids": []uint{c}})
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		got := s.getBook(id)
		assert.Equal(t, []appbook.AuthorItem{{ID: c, Name: "Ocampo", Order: 0}}, got.Authors)

		assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/v1/books/999", token, map[string]interface{}{"title": "X", "author_ids": []uint{a}}).Code)
	})

	t.Run("PATCH", func(t *testing.T) {
		id := s.createBook(token, "Ficciones", a)
		path := fmt.Sprintf("/api/v1/books/%d", id)

		w := s.do(http.MethodPatch, path, token, `[{"op":"replace","path":"/title","value":"El Aleph"}]`)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		assert.Equal(t, "El Aleph", s.getBook(id).Title)

		w = s.do(http.MethodPatch, path, token, `[{"op":"replace","path":"/title","value":""}]`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		var fields map[string]string
		decode(t, w, &fields)
		assert.Contains(t, fields, "title")

		for _, doc := range []string{
			`[{"op":"replace","path":"/id","value":7}]`,
			`[{"op":"replace","path":"/authors","value":[]}]`,
			`not json`,
			`null`,
		} {
			assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPatch, path, token, doc).Code, doc)
		}
		assert.Equal(t, "El Aleph", s.getBook(id).Title, "失败的Patch不修改数据")

		w = s.do(http.MethodPatch, path, token, `[{"op":"replace","path":"/publication_date","value":"bad"}]`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		fields = nil
		decode(t, w, &fields)
		assert.Contains(t, fields, "publication_date")

		assert.Equal(t, http.StatusNotFound, s.do(http.MethodPatch, "/api/v1/books/999", token, `[]`).Code)
	})

	t.Run("删除作者后重新编号", func(t *testing.T) {
		id := s.createBook(token, "Crónicas", a, b, c)

		w := s.do(http.MethodDelete, fmt.Sprintf("/api/v1/authors/%d", b), token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		got := s.getBook(id)
		assert.Equal(t, []appbook.AuthorItem{
			{ID: a, Name: "Borges", Order: 0},
			{ID: c, Name: "Ocampo", Order: 1},
		}, got.Authors)
	})
}

func TestCommentsAPI(t *testing.T) {
	s := newTestServer(t)
	owner := s.login("owner@example.com")
	other := s.login("other@example.com")

	bookID := s.createBook(owner, "Ficciones", s.createAuthor(owner, "Borges"))
	base := fmt.Sprintf("/api/v1/books/%d/comments", bookID)

	w := s.do(http.MethodPost, base, owner, map[string]string{"content": "Imprescindible"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created appcomment.CommentItem
	decode(t, w, &created)
	assert.Equal(t, fmt.Sprintf("%s/%d", base, created.ID), w.Header().Get("Location"))

	t.Run("查询", func(t *testing.T) {
		w := s.do(http.MethodGet, base, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var items []appcomment.CommentItem
		decode(t, w, &items)
		assert.Len(t, items, 1)

		assert.Equal(t, http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("%s/%d", base, created.ID), "", nil).Code)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/books/999/comments", "", nil).Code)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/books/999/comments", owner, map[string]string{"content": "x"}).Code)
	})

	t.Run("只有发表者可以修改", func(t *testing.T) {
		path := fmt.Sprintf("%s/%d", base, created.ID)

		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, path, other, map[string]string{"content": "Malo"}).Code)
		assert.Equal(t, http.StatusNoContent, s.do(http.MethodPut, path, owner, map[string]string{"content": "Genial"}).Code)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, fmt.Sprintf("%s/999", base), owner, map[string]string{"content": "x"}).Code)
	})
}

func TestLogout(t *testing.T) {
	s := newTestServer(t)
	token := s.login("reader@example.com")

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/users/logout", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/authors", token, map[string]string{"name": "Borges"}).Code)
}
