// controllers/service_detail.go
package controllers

import (
	"catalog-backend/services"
	"catalog-backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ServiceDetailController struct {
	Details *services.ServiceDetailManager
}

func (dc *ServiceDetailController) CreateServiceDetail(c *gin.Context) {
	var input services.ServiceDetailRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	detail, err := dc.Details.Create(c.Request.Context(), input, utils.ActingUserID(c))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (dc *ServiceDetailController) GetServiceDetail(c *gin.Context) {
	id, ok := parseID(c, "id", "service detail")
	if !ok {
		return
	}

	detail, found, err := dc.Details.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service detail not found")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (dc *ServiceDetailController) GetServiceDetailByUUID(c *gin.Context) {
	detail, found, err := dc.Details.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service detail not found")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (dc *ServiceDetailController) UpdateServiceDetail(c *gin.Context) {
	id, ok := parseID(c, "id", "service detail")
	if !ok {
		return
	}

	var input services.ServiceDetailRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	detail, err := dc.Details.Update(c.Request.Context(), id, input, utils.ActingUserID(c))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (dc *ServiceDetailController) DeleteServiceDetail(c *gin.Context) {
	id, ok := parseID(c, "id", "service detail")
	if !ok {
		return
	}

	if err := dc.Details.SoftDelete(c.Request.Context(), id, utils.ActingUserID(c)); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service detail deleted successfully"})
}
