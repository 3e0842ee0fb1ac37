package handlers

import (
	"context"
	"net/http"
	"strings"

	"plaiz_studio/internal/adapter/http/dto/request"
	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	usecase  usecase.IPortfolioUseCase
	maxBytes int64
}

func NewPortfolioHandler(uc usecase.IPortfolioUseCase, maxBytes int64) *PortfolioHandler {
	if maxBytes <= 0 {
		maxBytes = usecase.DefaultMaxUploadBytes
	}
	return &PortfolioHandler{usecase: uc, maxBytes: maxBytes}
}

// CreatePortfolioItem godoc
// @Summary  Worker adds a showcase item
// @Tags     portfolio
// @Accept   multipart/form-data
// @Produce  json
// @Param    title       formData  string  true   "Title"
// @Param    category    formData  string  true   "graphic_design | web_design | printing"
// @Param    project_id  formData  string  false  "Completed project the item comes from"
// @Param    image       formData  file    false  "Image (or image_url)"
// @Success  201  {object}  response.PortfolioResponse
// @Failure  400  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /portfolio [post]
func (h *PortfolioHandler) CreatePortfolioItem(c *gin.Context) {
	var form request.PortfolioForm
	if err := c.ShouldBind(&form); err != nil {
		respondInvalidPayload(c)
		return
	}
	image, appErr := readUpload(c, "image", h.maxBytes)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), middleware.GetSession(c), usecase.PortfolioInput{
		Title:     strings.TrimSpace(form.Title),
		Category:  entities.ServiceCategory(strings.ToLower(strings.TrimSpace(form.Category))),
		ProjectID: strings.TrimSpace(form.ProjectID),
		ImageURL:  strings.TrimSpace(form.ImageURL),
		Image:     image,
	})
	if err != nil {
		respondError(c, "portfolio", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPortfolioItem(item))
}

func (h *PortfolioHandler) ListPortfolio(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, "portfolio", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPortfolioItems(list))
}

func (h *PortfolioHandler) ApprovePortfolioItem(c *gin.Context) {
	h.setFlag(c, h.usecase.Approve)
}

func (h *PortfolioHandler) FeaturePortfolioItem(c *gin.Context) {
	h.setFlag(c, h.usecase.Feature)
}

func (h *PortfolioHandler) setFlag(
	c *gin.Context,
	op func(ctx context.Context, s entities.Session, id string, value bool) (entities.PortfolioItem, error),
) {
	var payload request.FlagValueRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondInvalidPayload(c)
			return
		}
	}
	item, err := op(c.Request.Context(), middleware.GetSession(c), c.Param("id"), payload.Resolve())
	if err != nil {
		respondError(c, "portfolio", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPortfolioItem(item))
}
