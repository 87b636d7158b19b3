package handler

import (
	"net/http"

	"enfermeria-api/internal/delivery/http/middleware"
	"enfermeria-api/internal/usecase"
	"enfermeria-api/pkg/response"
)

type StatisticsHandler struct {
	statisticsUsecase usecase.StatisticsUsecase
}

func NewStatisticsHandler(statisticsUsecase usecase.StatisticsUsecase) *StatisticsHandler {
	return &StatisticsHandler{statisticsUsecase: statisticsUsecase}
}

// GetDashboard handles the dashboard summary
// @Summary Dashboard statistics
// @Description Aggregate totals, cohort distribution, 30-day activity series and recent patients
// @Tags Statistics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /statistics [get]
func (h *StatisticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	summary, err := h.statisticsUsecase.GetDashboard(r.Context(), actor)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		internalError(w, "Failed to get statistics", err)
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", summary)
}
