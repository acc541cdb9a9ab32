package controllers

import (
	"catalog-backend/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
)

// respondWithServiceError maps a manager error onto an HTTP status. Messages of
// unexpected errors are not exposed.
func respondWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errors.NotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errors.Forbidden):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, errors.AlreadyExists):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, errors.NotValid):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseID reads a positive numeric path parameter, answering 400 otherwise.
func parseID(c *gin.Context, param, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+what+" ID format")
		return 0, false
	}
	return uint(id), true
}
