package api

import (
	"net/http"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List time slots
// @Description List every slot of an activity with the seats left on a date, including full slots
// @Tags availability
// @Produce json
// @Param id path string true "Activity ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /activities/{id}/slots [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid activity id", nil)
		return
	}
	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	views, err := h.q.ListSlots(c.Request.Context(), activityID, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(activityID, date, views))
}
