package v1

import (
	"errors"
	"fmt"
	"net/http"

	"form-data-backend/internal/delivery/http/middleware"
	"form-data-backend/internal/delivery/http/response"
	"form-data-backend/internal/domain"
	"form-data-backend/pkg/apperror"
	"form-data-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const notFoundMessage = "Not found"

type FormDataHandler struct {
	formDataUC domain.FormDataUsecase
	events     *security.SecurityLogger
}

func NewFormDataHandler(r *gin.RouterGroup, formDataUC domain.FormDataUsecase, events *security.SecurityLogger) {
	handler := &FormDataHandler{
		formDataUC: formDataUC,
		events:     events,
	}

	formData := r.Group("/form-data")
	{
		formData.POST("/", handler.CreateFormData)
		formData.GET("/search", handler.SearchFormData)
		formData.GET("/export", handler.ExportFormData)
		formData.GET("/storage/info", handler.GetStorageInfo)
		formData.GET("/:id", handler.GetFormData)
		formData.GET("/", handler.GetAllFormData)
		formData.PUT("/:id", handler.UpdateFormData)
		formData.DELETE("/:id", handler.DeleteFormData)
	}
}

// CreateFormData godoc
// @Summary      Create form data
// @Description  Stores a new profile with all of its child collections
// @Tags         form-data
// @Accept       json
// @Produce      json
// @Param        request body domain.FormData true "Profile payload"
// @Success      201  {object}  response.Response{data=domain.CreateResponse}
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /form-data/ [post]
func (h *FormDataHandler) CreateFormData(c *gin.Context) {
	var input domain.FormData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	created, err := h.formDataUC.CreateFormData(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, &input, err)
		return
	}

	response.Success(c, http.StatusCreated, "Form data created", domain.CreateResponse{ID: created.ID})
}

// SearchFormData godoc
// @Summary      Search form data
// @Description  Case-insensitive substring filters, combined with AND; omitted filters are ignored
// @Tags         form-data
// @Produce      json
// @Param        first_name  query  string  false  "First name contains"
// @Param        last_name   query  string  false  "Last name contains"
// @Param        email       query  string  false  "Email contains"
// @Param        job_title   query  string  false  "Job title contains"
// @Success      200  {object}  response.Response{data=[]domain.FormDataResponse}
// @Failure      500  {object}  response.Response
// @Router       /form-data/search [get]
func (h *FormDataHandler) SearchFormData(c *gin.Context) {
	results, err := h.formDataUC.SearchFormData(c.Request.Context(), h.filterFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search successful", results)
}

// ExportFormData godoc
// @Summary      Export form data to Excel/CSV
// @Description  Downloads the profiles matching the search filters as a spreadsheet or CSV file
// @Tags         form-data
// @Produce      application/octet-stream
// @Param        format      query  string  false  "Export format (xlsx, csv). Default: xlsx"
// @Param        first_name  query  string  false  "First name contains"
// @Param        last_name   query  string  false  "Last name contains"
// @Param        email       query  string  false  "Email contains"
// @Param        job_title   query  string  false  "Job title contains"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Router       /form-data/export [get]
func (h *FormDataHandler) ExportFormData(c *gin.Context) {
	format := c.DefaultQuery("format", domain.ExportFormatXLSX)

	data, filename, err := h.formDataUC.ExportFormData(c.Request.Context(), domain.ExportRequest{
		Filter: h.filterFromQuery(c),
		Format: format,
	})
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == domain.ExportFormatCSV {
		contentType = "text/csv; charset=utf-8"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// GetStorageInfo godoc
// @Summary      Storage info
// @Description  Total profiles stored plus row counts per child collection
// @Tags         form-data
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.StorageInfo}
// @Failure      500  {object}  response.Response
// @Router       /form-data/storage/info [get]
func (h *FormDataHandler) GetStorageInfo(c *gin.Context) {
	info, err := h.formDataUC.GetStorageInfo(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Storage info fetched", info)
}

// GetFormData godoc
// @Summary      Get form data by ID
// @Tags         form-data
// @Produce      json
// @Param        id   path      string  true  "Form data ID (UUID)"
// @Success      200  {object}  response.Response{data=domain.FormDataResponse}
// @Failure      404  {object}  response.Response
// @Router       /form-data/{id} [get]
func (h *FormDataHandler) GetFormData(c *gin.Context) {
	id := h.idParam(c)

	result, found, err := h.formDataUC.GetFormData(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if !found {
		h.notFound(c, id)
		return
	}
	response.Success(c, http.StatusOK, "Fetch successful", result)
}

// GetAllFormData godoc
// @Summary      List all form data
// @Tags         form-data
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.FormDataResponse}
// @Failure      500  {object}  response.Response
// @Router       /form-data/ [get]
func (h *FormDataHandler) GetAllFormData(c *gin.Context) {
	results, err := h.formDataUC.GetAllFormData(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Fetch all successful", results)
}

// UpdateFormData godoc
// @Summary      Replace form data
// @Description  Overwrites every field; child collections are replaced wholesale
// @Tags         form-data
// @Accept       json
// @Produce      json
// @Param        id       path  string           true  "Form data ID (UUID)"
// @Param        request  body  domain.FormData  true  "Full profile payload"
// @Success      200  {object}  response.Response{data=domain.FormDataResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /form-data/{id} [put]
func (h *FormDataHandler) UpdateFormData(c *gin.Context) {
	id := h.idParam(c)

	var input domain.FormData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, found, err := h.formDataUC.UpdateFormData(c.Request.Context(), id, &input)
	if err != nil {
		h.fail(c, &input, err)
		return
	}
	if !found {
		h.notFound(c, id)
		return
	}
	response.Success(c, http.StatusOK, "Update successful", result)
}

// DeleteFormData godoc
// @Summary      Delete form data
// @Description  Deletes the profile and its children; returns the record as it was before deletion
// @Tags         form-data
// @Produce      json
// @Param        id   path      string  true  "Form data ID (UUID)"
// @Success      200  {object}  response.Response{data=domain.FormDataResponse}
// @Failure      404  {object}  response.Response
// @Router       /form-data/{id} [delete]
func (h *FormDataHandler) DeleteFormData(c *gin.Context) {
	id := h.idParam(c)

	result, found, err := h.formDataUC.DeleteFormData(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if !found {
		h.notFound(c, id)
		return
	}
	response.Success(c, http.StatusOK, "Delete successful", result)
}

// --- helpers ---

// idParam returns the path id. Malformed ids still flow through and end as
// "not found"; the security log records them separately.
func (h *FormDataHandler) idParam(c *gin.Context) string {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.events.LogMalformedIdentifier(c.Request.Context(), id, c.ClientIP(), c.GetHeader("User-Agent"),
			middleware.GetRequestID(c), c.FullPath())
	}
	return id
}

func (h *FormDataHandler) notFound(c *gin.Context, id string) {
	c.Error(apperror.NotFound(notFoundMessage).WithDetails(map[string]interface{}{
		"id": fmt.Sprintf("Form data with ID %s not found", id),
	}))
}

// fail records validation rejections before handing the error to ErrorHandler
func (h *FormDataHandler) fail(c *gin.Context, input *domain.FormData, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindValidation {
		fields, _ := appErr.Details["fields"].([]string)
		h.events.LogValidationFailed(c.Request.Context(), input.Email, c.ClientIP(),
			middleware.GetRequestID(c), c.FullPath(), fields)
	}
	c.Error(err)
}

func (h *FormDataHandler) filterFromQuery(c *gin.Context) domain.SearchFilter {
	return domain.SearchFilter{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
		Email:     c.Query("email"),
		JobTitle:  c.Query("job_title"),
	}
}
