package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/libraryapi/internal/application/book"
	"github.com/xiebiao/libraryapi/internal/interface/http/dto"
	"github.com/xiebiao/libraryapi/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase  *appbook.CreateBookUseCase
	getUseCase     *appbook.GetBookUseCase
	listUseCase    *appbook.ListBooksUseCase
	replaceUseCase *appbook.ReplaceBookUseCase
	patchUseCase   *appbook.PatchBookUseCase
}

func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	replaceUseCase *appbook.ReplaceBookUseCase,
	patchUseCase *appbook.PatchBookUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		replaceUseCase: replaceUseCase,
		patchUseCase:   patchUseCase,
	}
}

// List 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]appbook.BookItem}
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	items, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// Get 图书详情
// @Summary      图书详情
// @Description  authors按署名顺序排列
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookDetail}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// Create 创建图书
// @Summary      创建图书
// @Description  author_ids至少一个且全部存在，顺序即署名顺序
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookDetail}
// @Header       201 {string} Location "新图书的地址"
// @Failure      400 {object} response.Response "作者为空、重复或不存在，书名非法"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	detail, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
		AuthorIDs:       req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("/api/v1/books/%d", detail.ID), detail)
}

// Replace 全量更新图书
// @Summary      全量更新图书
// @Description  原有作者关联全部替换为author_ids，按新顺序重新编号
// @Tags         图书
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      204
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Replace(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	err = h.replaceUseCase.Execute(c.Request.Context(), appbook.ReplaceBookRequest{
		ID:              id,
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
		AuthorIDs:       req.AuthorIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Patch 局部更新图书
// @Summary      局部更新图书（JSON Patch）
// @Description  可寻址字段：/title、/publication_date
// @Tags         图书
// @Accept       json-patch+json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body []dto.PatchOperation true "RFC 6902 操作列表"
// @Success      204
// @Failure      400 {object} response.Response "Patch非法或校验失败"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) Patch(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	document, err := c.GetRawData()
	if err != nil {
		response.Error(c, bindError(err))
		return
	}

	if err := h.patchUseCase.Execute(c.Request.Context(), appbook.PatchBookRequest{ID: id, Document: document}); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
