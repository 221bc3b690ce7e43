package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/libraryapi/internal/application/author"
	"github.com/xiebiao/libraryapi/internal/interface/http/dto"
	"github.com/xiebiao/libraryapi/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	createUseCase *appauthor.CreateAuthorUseCase
	getUseCase    *appauthor.GetAuthorUseCase
	listUseCase   *appauthor.ListAuthorsUseCase
	updateUseCase *appauthor.UpdateAuthorUseCase
	deleteUseCase *appauthor.DeleteAuthorUseCase
}

func NewAuthorHandler(
	createUseCase *appauthor.CreateAuthorUseCase,
	getUseCase *appauthor.GetAuthorUseCase,
	listUseCase *appauthor.ListAuthorsUseCase,
	updateUseCase *appauthor.UpdateAuthorUseCase,
	deleteUseCase *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]appauthor.AuthorItem}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	items, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// Search 按姓名搜索作者
// @Summary      按姓名搜索作者
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        name query string true "姓名关键字（包含匹配）"
// @Success      200 {object} response.Response{data=[]appauthor.AuthorItem}
// @Failure      400 {object} response.Response "关键字为空"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/authors/search [get]
func (h *AuthorHandler) Search(c *gin.Context) {
	items, err := h.listUseCase.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// Get 作者详情
// @Summary      作者详情（含图书）
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorDetail}
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
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

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=appauthor.AuthorItem}
// @Header       201 {string} Location "新作者的地址"
// @Failure      400 {object} response.Response "姓名非法或重复"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	item, err := h.createUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{Name: req.Name})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("/api/v1/authors/%d", item.ID), item)
}

// Update 全量更新作者
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      204
// @Failure      400 {object} response.Response "姓名非法或重复"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	if err := h.updateUseCase.Execute(c.Request.Context(), appauthor.UpdateAuthorRequest{ID: id, Name: req.Name}); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete 删除作者
// @Summary      删除作者
// @Description  同时删除作者的图书关联，并重新编号受影响图书的作者顺序
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
