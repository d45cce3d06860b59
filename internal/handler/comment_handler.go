package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"civicpulse/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents a comment submission.
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1"`
	UserName string `json:"user_name"`
}

// ListForIssue godoc
// @Summary List an issue's comments
// @Tags comments
// @Produce json
// @Param issueId path string true "Issue ID"
// @Success 200 {array} model.Comment
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments/issue/{issueId} [get]
func (h *CommentHandler) ListForIssue(c echo.Context) error {
	comments, err := h.commentService.ListForIssue(c.Request().Context(), c.Param("issueId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Create godoc
// @Summary Add a comment to an issue
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param issueId path string true "Issue ID"
// @Param request body CreateCommentRequest true "Comment data"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /comments/issue/{issueId} [post]
func (h *CommentHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Add(c.Request().Context(), identity, c.Param("issueId"), service.AddCommentInput{
		Content:  req.Content,
		UserName: req.UserName,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}
