// controllers/service.go
package controllers

import (
	"catalog-backend/services"
	"catalog-backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Services *services.ServiceManager
	Details  *services.ServiceDetailManager
}

// CreateService creates a new catalog service
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input services.ServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Services.Create(c.Request.Context(), input, utils.ActingUserID(c))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices lists the live, active services
func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.Services.ListActive(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}

	service, found, err := sc.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) GetServiceByUUID(c *gin.Context) {
	service, found, err := sc.Services.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) GetServiceBySlug(c *gin.Context) {
	service, found, err := sc.Services.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetServiceWithDetails retrieves a service with its detail sections
func (sc *ServiceController) GetServiceWithDetails(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}

	service, found, err := sc.Services.GetWithDetails(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetServiceDetails lists the detail sections of a service in display order
func (sc *ServiceController) GetServiceDetails(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}

	details, err := sc.Details.ListByServiceID(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// UpdateService overwrites an existing service
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}

	var input services.ServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Services.Update(c.Request.Context(), id, input, utils.ActingUserID(c))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id", "service")
	if !ok {
		return
	}

	if err := sc.Services.SoftDelete(c.Request.Context(), id, utils.ActingUserID(c)); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
