package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/platform/pagination"
	"github.com/claon/claon-admin/internal/services"
)

type reviewAnswerRequest struct {
	Content string `json:"answer_content" binding:"required"`
}

type ReviewHandler struct {
	reviewService services.ReviewService
	pages         *pagination.Factory
}

func NewReviewHandler(reviewService services.ReviewService, pages *pagination.Factory) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, pages: pages}
}

// GET /api/v1/centers/:center_id/reviews?start=&end=&tag=&is_answered=&page=&size=
func (rh *ReviewHandler) FindReviewsByCenter(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	isAnswered, ok := optionalBool(c, "is_answered")
	if !ok {
		return
	}
	params, ok := pageParams(c, rh.pages)
	if !ok {
		return
	}
	out, err := rh.reviewService.FindReviewsByCenter(requestDBC(c), subject, services.ReviewsByCenterQuery{
		CenterID:   c.Param("center_id"),
		Start:      start,
		End:        end,
		Tag:        optionalString(c, "tag"),
		IsAnswered: isAnswered,
		Params:     params,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/centers/:center_id/reviews/summary
func (rh *ReviewHandler) FindReviewsSummaryByCenter(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	out, err := rh.reviewService.FindReviewsSummaryByCenter(requestDBC(c), subject, c.Param("center_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/v1/centers/:center_id/reviews/:review_id/answer
func (rh *ReviewHandler) CreateReviewAnswer(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req reviewAnswerRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := rh.reviewService.CreateReviewAnswer(requestDBC(c), subject, c.Param("center_id"), c.Param("review_id"), req.Content)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/v1/centers/:center_id/reviews/:review_id/answer
func (rh *ReviewHandler) UpdateReviewAnswer(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req reviewAnswerRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := rh.reviewService.UpdateReviewAnswer(requestDBC(c), subject, c.Param("center_id"), c.Param("review_id"), req.Content)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/v1/centers/:center_id/reviews/:review_id/answer
func (rh *ReviewHandler) DeleteReviewAnswer(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	if err := rh.reviewService.DeleteReviewAnswer(requestDBC(c), subject, c.Param("center_id"), c.Param("review_id")); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
