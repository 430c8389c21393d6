package handlers

import (
	"net/http"

	doctorRepo "medibook/database/repository/doctor"
	specialtyRepo "medibook/database/repository/specialty"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the reference data the booking flow browses:
// specialties, doctors and a doctor's open slots.
type CatalogHandler struct {
	specialties specialtyRepo.SpecialtyRepository
	doctors     doctorRepo.DoctorRepository
	aggregator  schedule.Aggregator
	logger      *zap.Logger
}

func NewCatalogHandler(
	specialties specialtyRepo.SpecialtyRepository,
	doctors doctorRepo.DoctorRepository,
	aggregator schedule.Aggregator,
	logger *zap.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		specialties: specialties,
		doctors:     doctors,
		aggregator:  aggregator,
		logger:      logger,
	}
}

func (h *CatalogHandler) ListSpecialties(c *gin.Context) {
	specialties, err := h.specialties.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load specialties", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	ctx := c.Request.Context()

	specialtyID := c.Query("specialty")
	var (
		doctors interface{}
		err     error
	)
	if specialtyID != "" {
		doctors, err = h.doctors.ListBySpecialty(ctx, specialtyID)
	} else {
		doctors, err = h.doctors.List(ctx)
	}
	if err != nil {
		h.logger.Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *CatalogHandler) GetDoctor(c *gin.Context) {
	doctor, err := h.doctors.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "doctor not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// GetDoctorSlots returns the doctor's open slots grouped by date. A doctor
// with no open schedules yields an empty list, not an error.
func (h *CatalogHandler) GetDoctorSlots(c *gin.Context) {
	days, err := h.aggregator.OpenSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed to load schedules", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load schedules", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}
