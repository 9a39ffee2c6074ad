package get_statistics

import (
	"net/http"

	"github.com/m04kA/SMC-HotelOps/internal/api/handlers"
	"github.com/m04kA/SMC-HotelOps/internal/api/middleware"
)

const (
	msgInvalidActor = "отсутствует или некорректен контекст пользователя"
	msgForbidden    = "статистика доступна только администраторам и менеджерам отелей"
)

type Handler struct {
	useCase ComputeStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase ComputeStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/statistics
// Headers: X-User-ID (required), X-User-Roles, X-Hotel-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		h.logger.Warn("GET /statistics - Invalid actor context: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActor)
		return
	}

	if !actor.CanViewStatistics() {
		h.logger.Warn("GET /statistics - Access denied: user_id=%s, roles=%v", actor.UserID, actor.Roles)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	stats, err := h.useCase.Execute(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /statistics - Failed to compute statistics: user_id=%s, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /statistics - Statistics computed: user_id=%s, hotels=%d",
		actor.UserID, stats.Snapshot.TotalHotels)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(stats))
}
