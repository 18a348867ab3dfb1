package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(group *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	group.GET("/health", handler.Health)
}

// Health godoc
// @Summary      Health check
// @Description  Reports the service and dependency status
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.healthUC == nil {
		response.Success(c, http.StatusOK, "System operational", nil)
		return
	}

	status := h.healthUC.Check(c.Request.Context())
	if status["status"] != "ok" {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
