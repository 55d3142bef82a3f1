package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
	"github.com/imovelhub/crm_deals_app/internal/dto"
	"github.com/imovelhub/crm_deals_app/internal/middleware"
)

type DealClosureHandler struct {
	dealClosureService portssvc.DealClosureSvcFacade
}

func NewDealClosureHandler(dealClosureService portssvc.DealClosureSvcFacade) *DealClosureHandler {
	return &DealClosureHandler{dealClosureService: dealClosureService}
}

// RegisterDealClosureRoutes registers the closure workflow routes under an
// organization scope.
func RegisterDealClosureRoutes(group *gin.RouterGroup, dealClosureService portssvc.DealClosureSvcFacade) {
	h := NewDealClosureHandler(dealClosureService)

	org := group.Group("/organizations/:orgID")
	org.POST("/leads/:leadID/close", h.closeDeal)
	org.GET("/contracts/:contractID", h.getContract)
}

// closeDeal godoc
// @Summary Close a deal for a lead
// @Description Converts a won lead into a contract with its payment schedule and commission forecasts
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   leadID path string true "Lead ID"
// @Param   closeDeal body dto.CloseDealRequest true "Deal closure parameters"
// @Success 201 {object} dto.CloseDealResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /organizations/{orgID}/leads/{leadID}/close [post]
func (h *DealClosureHandler) closeDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CloseDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid close deal request body", "error", err)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed on fields: " + strings.Join(fields, ", ")})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	orgID := c.Param("orgID")
	leadID := c.Param("leadID")

	resp, err := h.dealClosureService.CloseDeal(c.Request.Context(), orgID, leadID, req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// getContract godoc
// @Summary Get a contract with its financial entries
// @Description Retrieves a contract and its payment schedule by contract ID
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   contractID path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /organizations/{orgID}/contracts/{contractID} [get]
func (h *DealClosureHandler) getContract(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	orgID := c.Param("orgID")
	contractID := c.Param("contractID")

	resp, err := h.dealClosureService.GetContractWithEntries(c.Request.Context(), orgID, contractID, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondWithError maps service errors onto HTTP statuses.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
