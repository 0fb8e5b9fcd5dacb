package controllers

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/printmate/storefront-backend/errors"
)

// respondError maps any service error to the {message} failure body the
// storefront expects.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.Code, gin.H{"message": appErr.Message})
}
