package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/services"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// GET /api/v1/auth/nickname/:nickname/is-duplicated
func (ah *AuthHandler) IsDuplicatedNickname(c *gin.Context) {
	out, err := ah.userService.CheckNicknameDuplication(requestDBC(c), c.Param("nickname"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/v1/auth/center/sign-up
func (ah *AuthHandler) CenterSignUp(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req centerRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := ah.userService.SignUpCenter(c.Request.Context(), subject, req.toInput())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}
