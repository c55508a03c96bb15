package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/platform/pagination"
	"github.com/claon/claon-admin/internal/services"
)

const maxUploadBytes = 10 << 20

type centerRequest struct {
	Name           string                 `json:"name" binding:"required"`
	ProfileImage   string                 `json:"profile_image"`
	Address        string                 `json:"address"`
	DetailAddress  string                 `json:"detail_address"`
	Tel            string                 `json:"tel"`
	WebURL         string                 `json:"web_url"`
	InstagramName  string                 `json:"instagram_name"`
	YoutubeURL     string                 `json:"youtube_url"`
	OperatingTimes []types.OperatingTime  `json:"operating_time"`
	Images         []types.CenterImage    `json:"center_img"`
	Utilities      []types.Utility        `json:"utility"`
	Fees           []types.CenterFee      `json:"fee"`
	FeeImages      []types.CenterFeeImage `json:"fee_img"`
	Holds          []services.HoldInput   `json:"hold_list"`
	Walls          []services.WallInput   `json:"wall_list"`
	ProofList      []string               `json:"proof_list"`
}

func (r centerRequest) toInput() services.CenterInput {
	return services.CenterInput{
		Profile: types.CenterProfile{
			Name:           r.Name,
			ProfileImage:   r.ProfileImage,
			Address:        r.Address,
			DetailAddress:  r.DetailAddress,
			Tel:            r.Tel,
			WebURL:         r.WebURL,
			InstagramName:  r.InstagramName,
			YoutubeURL:     r.YoutubeURL,
			OperatingTimes: r.OperatingTimes,
			Images:         r.Images,
			Utilities:      r.Utilities,
			Fees:           r.Fees,
			FeeImages:      r.FeeImages,
		},
		Holds:            r.Holds,
		Walls:            r.Walls,
		ApprovedFileURLs: r.ProofList,
	}
}

type CenterHandler struct {
	centerService services.CenterService
	uploadService services.UploadService
	pages         *pagination.Factory
}

func NewCenterHandler(centerService services.CenterService, uploadService services.UploadService, pages *pagination.Factory) *CenterHandler {
	return &CenterHandler{centerService: centerService, uploadService: uploadService, pages: pages}
}

// GET /api/v1/centers/name/:name
func (ch *CenterHandler) FindCentersByName(c *gin.Context) {
	out, err := ch.centerService.FindCentersByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/centers
func (ch *CenterHandler) FindCenters(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	params, ok := pageParams(c, ch.pages)
	if !ok {
		return
	}
	out, err := ch.centerService.FindCenters(requestDBC(c), subject, params)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/centers/:center_id
func (ch *CenterHandler) FindByID(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	out, err := ch.centerService.FindByID(requestDBC(c), subject, c.Param("center_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/v1/centers
func (ch *CenterHandler) Create(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req centerRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := ch.centerService.Create(c.Request.Context(), subject, req.toInput())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/v1/centers/:center_id
func (ch *CenterHandler) Update(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req centerRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := ch.centerService.Update(c.Request.Context(), subject, c.Param("center_id"), req.toInput())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/v1/centers/:center_id
func (ch *CenterHandler) Delete(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	out, err := ch.centerService.Delete(c.Request.Context(), subject, c.Param("center_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/centers/:center_id/fees
func (ch *CenterHandler) FindCenterFees(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	out, err := ch.centerService.FindCenterFees(requestDBC(c), subject, c.Param("center_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/v1/centers/:center_id/fees
func (ch *CenterHandler) UpdateCenterFees(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req services.CenterFees
	if !bindJSON(c, &req) {
		return
	}
	out, err := ch.centerService.UpdateCenterFees(requestDBC(c), subject, c.Param("center_id"), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/v1/centers/upload/:purpose (multipart field "file")
func (ch *CenterHandler) Upload(c *gin.Context) {
	purpose, err := services.ParseUploadPurpose(c.Param("purpose"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		response.RespondAPIError(c, invalidRequest("multipart field file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.RespondAPIError(c, invalidRequest("unreadable upload"))
		return
	}
	defer f.Close()

	out, err := ch.uploadService.UploadCenterFile(c.Request.Context(), purpose, fh.Filename, f)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
