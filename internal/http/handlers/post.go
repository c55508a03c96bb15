package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/platform/pagination"
	"github.com/claon/claon-admin/internal/services"
)

type PostHandler struct {
	postService services.PostService
	pages       *pagination.Factory
}

func NewPostHandler(postService services.PostService, pages *pagination.Factory) *PostHandler {
	return &PostHandler{postService: postService, pages: pages}
}

// GET /api/v1/centers/:center_id/posts?start=&end=&hold_id=&page=&size=
func (ph *PostHandler) FindPostsByCenter(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	params, ok := pageParams(c, ph.pages)
	if !ok {
		return
	}
	out, err := ph.postService.FindPostsByCenter(requestDBC(c), subject, services.PostsByCenterQuery{
		CenterID: c.Param("center_id"),
		HoldID:   optionalString(c, "hold_id"),
		Start:    start,
		End:      end,
		Params:   params,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/centers/:center_id/posts/summary
func (ph *PostHandler) FindPostsSummaryByCenter(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	out, err := ph.postService.FindPostsSummaryByCenter(requestDBC(c), subject, c.Param("center_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
