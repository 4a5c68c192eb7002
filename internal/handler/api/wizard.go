package api

import (
	"net/http"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/handler/middleware"
	"experience-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	cmds commands.WizardCommands
}

func NewWizardHandler(cmds commands.WizardCommands) *WizardHandler {
	return &WizardHandler{cmds: cmds}
}

// @Summary Start booking wizard
// @Description Open a booking session. Mobile sessions add a separate date and time step.
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartWizardRequest false "Layout"
// @Success 201 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.StartWizardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	state, err := h.cmds.Start(c.Request.Context(), userID, req.Layout)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWizardState(state))
}

// @Summary Get booking wizard
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wizard/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	userID, id, ok := h.session(c)
	if !ok {
		return
	}
	state, err := h.cmds.Get(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(state))
}

// @Summary Update wizard selection
// @Description Set activity, date, slot or participant count. Changing the activity or date clears the slot.
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.SelectWizardRequest true "Selection"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wizard/{id} [patch]
func (h *WizardHandler) Select(c *gin.Context) {
	userID, id, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.SelectWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sel, err := req.ToSelection()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	state, err := h.cmds.Select(c.Request.Context(), userID, id, sel)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(state))
}

// @Summary Advance wizard
// @Description Move to the next step. A rejected move still returns 200 with missingFields.
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardTransitionResponse
// @Failure 404 {object} map[string]string
// @Router /wizard/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	userID, id, ok := h.session(c)
	if !ok {
		return
	}
	res, err := h.cmds.Next(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardResult(res))
}

// @Summary Step wizard back
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Router /wizard/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	userID, id, ok := h.session(c)
	if !ok {
		return
	}
	state, err := h.cmds.Back(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(state))
}

// @Summary Abandon wizard
// @Description Discard the session. Refused while a submission is running.
// @Tags wizard
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/{id} [delete]
func (h *WizardHandler) Abandon(c *gin.Context) {
	userID, id, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.cmds.Abandon(c.Request.Context(), userID, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit wizard
// @Description Finalize the booking for the session. Incomplete selections return 200 with missingFields.
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.SubmitWizardRequest true "Contact and payment details"
// @Success 200 {object} resdto.WizardSubmitResponse "Rejected, see missingFields"
// @Success 201 {object} resdto.WizardSubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	userID, id, ok := h.session(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)
	var req reqdto.SubmitWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	details, err := req.ToDetails(role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), userID, id, details)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp := &resdto.WizardSubmitResponse{
		Wizard:        resdto.FromWizardState(result.State),
		MissingFields: result.Missing,
	}
	if result.Booking == nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	if result.Booking.Booking != nil {
		middleware.SetBookingID(c, result.Booking.Booking.ID())
	}
	resp.Booking = resdto.FromFinalizeResult(result.Booking)
	c.JSON(http.StatusCreated, resp)
}

func (h *WizardHandler) session(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid wizard id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
