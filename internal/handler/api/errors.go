package api

import (
	"log/slog"
	"net/http"

	"experience-booking/internal/domain/availability"
	"experience-booking/internal/domain/booking"
	"experience-booking/internal/domain/wizard"
	reqdto "experience-booking/internal/handler/dto/request"
	"experience-booking/internal/handler/httperr"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps command and query failures onto the HTTP
// contract. Order matters: the capacity and coupon checks come before the
// generic validation mark.
func abortWithUseCaseError(c *gin.Context, err error) {
	var capErr *availability.CapacityError
	switch {
	case errs.As(err, &capErr):
		httperr.AbortWithError(c, http.StatusConflict, err, capErr.Error(), gin.H{
			"remaining": capErr.Remaining,
			"requested": capErr.Requested,
		})
	case errs.Is(err, queries.ErrInvalidCoupon):
		httperr.AbortWithError(c, http.StatusBadRequest, err, queries.ErrInvalidCoupon.Error(), nil)
	case errs.Is(err, booking.ErrInvalidContact):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Contact details are incomplete", gin.H{
			"missingFields": booking.MissingFields(err),
		})
	case errs.Is(err, commands.ErrPaymentTokenRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.ErrPaymentTokenRequired.Error(), nil)
	case errs.Is(err, reqdto.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", gin.H{"reason": err.Error()})
	case errs.Is(err, commands.ErrPaymentCancelled):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment was cancelled", nil)
	case errs.Is(err, commands.ErrPaymentFailed):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment failed", nil)
	case errs.Is(err, commands.ErrPersistenceFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, commands.ErrPersistenceFailed.Error(), nil)
	case errs.Is(err, wizard.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking submission already in progress", nil)
	case errs.Is(err, queries.ErrActivityNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Activity not found", nil)
	case errs.Is(err, queries.ErrExperienceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Experience not found", nil)
	case errs.Is(err, queries.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Time slot not found", nil)
	case errs.Is(err, queries.ErrBookingNotFound), errs.Is(err, queries.ErrBookingForbidden):
		// another user's booking is reported as missing
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrWizardNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking session not found", nil)
	default:
		slog.Error("unhandled usecase error", "path", c.FullPath(), "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing identity in context"), "Unauthorized", nil)
}
