package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appcomment "github.com/xiebiao/libraryapi/internal/application/comment"
	"github.com/xiebiao/libraryapi/internal/interface/http/dto"
	"github.com/xiebiao/libraryapi/internal/interface/http/middleware"
	"github.com/xiebiao/libraryapi/pkg/response"
)

// CommentHandler 评论HTTP处理器（挂在/books/:id/comments下）
type CommentHandler struct {
	addUseCase    *appcomment.AddCommentUseCase
	queryUseCase  *appcomment.QueryCommentsUseCase
	updateUseCase *appcomment.UpdateCommentUseCase
}

func NewCommentHandler(
	addUseCase *appcomment.AddCommentUseCase,
	queryUseCase *appcomment.QueryCommentsUseCase,
	updateUseCase *appcomment.UpdateCommentUseCase,
) *CommentHandler {
	return &CommentHandler{
		addUseCase:    addUseCase,
		queryUseCase:  queryUseCase,
		updateUseCase: updateUseCase,
	}
}

// List 图书评论列表
// @Summary      图书评论列表
// @Tags         评论
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=[]appcomment.CommentItem}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	bookID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.queryUseCase.List(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// Get 评论详情
// @Summary      评论详情
// @Tags         评论
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        commentId path int true "评论ID"
// @Success      200 {object} response.Response{data=appcomment.CommentItem}
// @Failure      404 {object} response.Response "图书或评论不存在"
// @Router       /api/v1/books/{id}/comments/{commentId} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	bookID, commentID, err := commentPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.queryUseCase.Get(c.Request.Context(), bookID, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

// Create 发表评论
// @Summary      发表评论
// @Description  发表者为当前登录用户
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.CommentRequest true "评论内容"
// @Success      201 {object} response.Response{data=appcomment.CommentItem}
// @Header       201 {string} Location "新评论的地址"
// @Failure      400 {object} response.Response "内容为空"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	bookID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	item, err := h.addUseCase.Execute(c.Request.Context(), appcomment.AddCommentRequest{
		BookID:  bookID,
		UserID:  middleware.GetUserID(c),
		Content: req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("/api/v1/books/%d/comments/%d", bookID, item.ID), item)
}

// Update 修改评论
// @Summary      修改评论
// @Description  只有发表者可以修改
// @Tags         评论
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        commentId path int true "评论ID"
// @Param        request body dto.CommentRequest true "评论内容"
// @Success      204
// @Failure      403 {object} response.Response "不是发表者"
// @Failure      404 {object} response.Response "图书或评论不存在"
// @Router       /api/v1/books/{id}/comments/{commentId} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	bookID, commentID, err := commentPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	err = h.updateUseCase.Execute(c.Request.Context(), appcomment.UpdateCommentRequest{
		BookID:  bookID,
		ID:      commentID,
		UserID:  middleware.GetUserID(c),
		Content: req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func commentPath(c *gin.Context) (uint, uint, error) {
	bookID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return 0, 0, err
	}
	return bookID, commentID, nil
}
