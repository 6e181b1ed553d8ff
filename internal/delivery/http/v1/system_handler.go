package v1

import (
	"net/http"

	"form-data-backend/internal/delivery/http/response"
	"form-data-backend/internal/domain"
	"form-data-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	healthUC domain.HealthUsecase
	title    string
	version  string
}

func NewSystemHandler(r *gin.Engine, healthUC domain.HealthUsecase, title, version string) {
	handler := &SystemHandler{healthUC: healthUC, title: title, version: version}

	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
}

// Root godoc
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, "API Server is running!", gin.H{
		"title":   h.title,
		"version": h.version,
		"docs":    "/docs/index.html",
	})
}

// Health godoc
// @Summary      Health check
// @Description  Pings the database (and Redis when configured)
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	status, healthy := h.healthUC.Check(c.Request.Context())
	if !healthy {
		details := make(map[string]interface{}, len(status))
		for k, v := range status {
			details[k] = v
		}
		response.AppError(c, apperror.New(http.StatusServiceUnavailable, "Service unhealthy", nil).WithDetails(details))
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
