package api

import (
	"net/http"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/handler/middleware"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	checkout commands.CheckoutCommands
	q        queries.BookingQueries
}

func NewBookingHandler(checkout commands.CheckoutCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{checkout: checkout, q: q}
}

// @Summary Create booking
// @Description Price, charge and persist a booking in one call. Agent tokens create agent bookings.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), userID, cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if result.Booking != nil {
		middleware.SetBookingID(c, result.Booking.ID())
	}
	c.JSON(http.StatusCreated, resdto.FromFinalizeResult(result))
}

// @Summary Get booking
// @Description Get a booking with its participants and the recomputed commission
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
