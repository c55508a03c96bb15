package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/pagination"
	"github.com/claon/claon-admin/internal/services"
)

const dateLayout = "2006-01-02"

func requestDBC(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}

// subjectOf responds 401 and returns false when the caller is not signed in.
func subjectOf(c *gin.Context) (services.Subject, bool) {
	subject, err := services.SubjectFromContext(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return services.Subject{}, false
	}
	return subject, true
}

func invalidRequest(msg string) error {
	return apierr.BadRequest(apierr.CodeInvalidRequest, msg)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondAPIError(c, apierr.New(http.StatusUnprocessableEntity, apierr.CodeUnprocessableEntity, err))
		return false
	}
	return true
}

// requiredDate parses a YYYY-MM-DD query parameter as a UTC date.
func requiredDate(c *gin.Context, name string) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		response.RespondAPIError(c, invalidRequest(name+" is required"))
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		response.RespondAPIError(c, invalidRequest(name+" must be formatted as YYYY-MM-DD"))
		return time.Time{}, false
	}
	return d, true
}

func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, ok := requiredDate(c, "start")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := requiredDate(c, "end")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		response.RespondAPIError(c, invalidRequest("end must not be before start"))
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func optionalString(c *gin.Context, name string) *string {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func optionalBool(c *gin.Context, name string) (*bool, bool) {
	raw := optionalString(c, name)
	if raw == nil {
		return nil, true
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		response.RespondAPIError(c, invalidRequest(name+" must be true or false"))
		return nil, false
	}
	return &v, true
}

func pageParams(c *gin.Context, factory *pagination.Factory) (pagination.Params, bool) {
	page, size := 0, 0
	for name, dst := range map[string]*int{"page": &page, "size": &size} {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondAPIError(c, invalidRequest(name+" must be an integer"))
			return pagination.Params{}, false
		}
		*dst = v
	}
	return factory.Params(page, size), true
}
