package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"plaiz_studio/internal/adapter/http/dto/response"
	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
	"plaiz_studio/pkg"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	usecase  usecase.IFileUseCase
	maxBytes int64
}

func NewFileHandler(uc usecase.IFileUseCase, maxBytes int64) *FileHandler {
	if maxBytes <= 0 {
		maxBytes = usecase.DefaultMaxUploadBytes
	}
	return &FileHandler{usecase: uc, maxBytes: maxBytes}
}

// UploadFile godoc
// @Summary      Worker uploads a deliverable
// @Description  The first upload while in progress moves the project to ready_for_review.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Project ID"
// @Param        file  formData  file    true  "Deliverable"
// @Success      201   {object}  response.TransitionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	upload, appErr := readUpload(c, "file", h.maxBytes)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if upload == nil {
		respondInvalidPayload(c)
		return
	}

	res, err := h.usecase.UploadFile(c.Request.Context(), middleware.GetSession(c), c.Param("id"), *upload)
	if err != nil {
		respondError(c, "file", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTransition(res))
}

func (h *FileHandler) ListFiles(c *gin.Context) {
	list, err := h.usecase.ListFiles(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, "file", err)
		return
	}
	c.JSON(http.StatusOK, response.FromFiles(list))
}

// readUpload reads one multipart part into memory. A missing part returns
// (nil, nil) so the caller decides whether it is optional.
func readUpload(c *gin.Context, field string, maxBytes int64) (*entities.FileUpload, *pkg.AppError) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errInvalidPayload
	}
	if header.Size > maxBytes {
		return nil, uploadTooLarge(maxBytes)
	}

	f, err := header.Open()
	if err != nil {
		return nil, errInvalidPayload
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, errInvalidPayload
	}
	if int64(len(body)) > maxBytes {
		return nil, uploadTooLarge(maxBytes)
	}

	return &entities.FileUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func uploadTooLarge(maxBytes int64) *pkg.AppError {
	return pkg.NewDomainErrorSimple("FILE_TOO_LARGE",
		fmt.Sprintf("File exceeds the %d MB limit", maxBytes>>20),
		http.StatusRequestEntityTooLarge)
}
