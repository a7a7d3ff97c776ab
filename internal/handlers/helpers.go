// internal/handlers/helpers.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

// respondError maps a service error onto the response. Anything unexpected is
// logged under tag and hidden from the caller.
func respondError(c *gin.Context, tag, resource string, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.BadRequestResponse(c, validationErr.Message, nil)
	case errors.Is(err, services.ErrUnauthenticated):
		utils.UnauthorizedResponse(c, "")
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrInUse):
		utils.ConflictResponse(c, resource+" is still in use")
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error(tag)
		utils.InternalErrorResponse(c)
	}
}

// requireUser writes 401 and returns false when the request has no identity.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
	}
	return userID, ok
}

// bindJSON writes 400 and returns false when the body is not valid JSON.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return false
	}
	return true
}

func deleted(c *gin.Context, id string) {
	utils.JSONResponse(c, gin.H{"id": id})
}
