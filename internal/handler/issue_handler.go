package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"civicpulse/internal/model"
	"civicpulse/internal/repository"
	"civicpulse/internal/service"
)

// IssueHandler handles issue endpoints.
type IssueHandler struct {
	issueService service.IssueService
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// CreateIssueRequest represents an issue submission.
type CreateIssueRequest struct {
	Title       string   `json:"title" validate:"required,min=5"`
	Description string   `json:"description" validate:"required,min=10"`
	Category    string   `json:"category" validate:"required,oneof=infrastructure sanitation safety environment utilities transportation other"`
	Location    string   `json:"location" validate:"required,min=3"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	PhotoURLs   []string `json:"photo_urls" validate:"omitempty,dive,url"`
	UserName    string   `json:"user_name"`
}

// ListIssuesRequest represents the optional listing filters. Invalid enum
// values are rejected rather than silently ignored.
type ListIssuesRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=infrastructure sanitation safety environment utilities transportation other"`
	Status   string `query:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Search   string `query:"search"`
}

// UpdateStatusRequest represents a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

// List godoc
// @Summary List issues with optional filters
// @Tags issues
// @Produce json
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param search query string false "Substring match on title, description or location"
// @Success 200 {array} model.Issue
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /issues [get]
func (h *IssueHandler) List(c echo.Context) error {
	var req ListIssuesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filter := repository.IssueFilter{Search: req.Search}
	if req.Category != "" {
		category := model.IssueCategory(req.Category)
		filter.Category = &category
	}
	if req.Status != "" {
		status := model.IssueStatus(req.Status)
		filter.Status = &status
	}
	if req.Priority != "" {
		priority := model.IssuePriority(req.Priority)
		filter.Priority = &priority
	}

	issues, err := h.issueService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, issues)
}

// Get godoc
// @Summary Fetch one issue
// @Tags issues
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {object} model.Issue
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /issues/{id} [get]
func (h *IssueHandler) Get(c echo.Context) error {
	issue, err := h.issueService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, issue)
}

// Create godoc
// @Summary Report a new issue
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIssueRequest true "Issue data"
// @Success 201 {object} model.Issue
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /issues [post]
func (h *IssueHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issue, err := h.issueService.Create(c.Request().Context(), identity, service.CreateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.IssueCategory(req.Category),
		Location:    req.Location,
		Priority:    model.IssuePriority(req.Priority),
		PhotoURLs:   req.PhotoURLs,
		UserName:    req.UserName,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, issue)
}

// UpdateStatus godoc
// @Summary Transition an issue's status
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issue ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Issue
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /issues/{id}/status [patch]
func (h *IssueHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issue, err := h.issueService.UpdateStatus(c.Request().Context(), c.Param("id"), model.IssueStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, issue)
}

// Delete godoc
// @Summary Delete an issue
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issue ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /issues/{id} [delete]
func (h *IssueHandler) Delete(c echo.Context) error {
	if err := h.issueService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "issue deleted successfully",
	})
}
