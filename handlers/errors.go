package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripnest/services/booking"
	"tripnest/utils"
)

// respondError maps the booking service error taxonomy onto HTTP statuses
// and emits the standard failure envelope. Unknown errors become opaque 500s.
func respondError(c *gin.Context, err error) {
	var (
		notFound     *booking.NotFoundError
		dateRange    *booking.InvalidDateRangeError
		emptyItems   *booking.EmptyLineItemsError
		itemNotFound *booking.LineItemNotFoundError
		badQuantity  *booking.InvalidQuantityError
		missingInfo  *booking.MissingCustomerInfoError
		validation   *booking.ValidationError
		unavailable  *booking.RoomUnavailableError
		unauthorized *booking.UnauthorizedTransitionError
		invalidTrans *booking.InvalidTransitionError
		conflict     *booking.ConflictError
	)

	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, notFound.Error(), err)
	case errors.As(err, &dateRange):
		utils.JSONError(c, http.StatusBadRequest, dateRange.Error(), err)
	case errors.As(err, &emptyItems):
		utils.JSONError(c, http.StatusBadRequest, emptyItems.Error(), err)
	case errors.As(err, &itemNotFound):
		utils.JSONError(c, http.StatusBadRequest, itemNotFound.Error(), err)
	case errors.As(err, &badQuantity):
		utils.JSONError(c, http.StatusBadRequest, badQuantity.Error(), err)
	case errors.As(err, &missingInfo):
		utils.JSONError(c, http.StatusBadRequest, missingInfo.Error(), err)
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, validation.Error(), err)
	case errors.As(err, &unavailable):
		utils.JSONError(c, http.StatusConflict, unavailable.Error(), err)
	case errors.As(err, &unauthorized):
		utils.JSONError(c, http.StatusForbidden, unauthorized.Error(), err)
	case errors.As(err, &invalidTrans):
		utils.JSONError(c, http.StatusConflict, invalidTrans.Error(), err)
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, conflict.Error(), err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong, please try again", err)
	}
}
