package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ogm710811/stem-cell-API/middlewares"
	"github.com/ogm710811/stem-cell-API/services"
)

// respondServiceError maps a service error onto the wire taxonomy. Store
// failures become a generic 500; the detail is only logged server-side.
func respondServiceError(c *gin.Context, err error) {
	var dup *services.DuplicateKeyError
	var verrs validation.Errors
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Specified id is not valid"})
	case errors.As(err, &dup):
		c.JSON(http.StatusBadRequest, gin.H{"message": dup.Message})
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": verrs.Error()})
	default:
		middlewares.HttpError(c, "Something went wrong", http.StatusInternalServerError, err)
	}
}
