package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bizbooks/ledger/internal/core/domain"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/bizbooks/ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// counterpartyHandler handles HTTP requests related to counterparties.
type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
}

// registerCounterpartyRoutes registers routes related to counterparties.
func registerCounterpartyRoutes(rg *gin.RouterGroup, counterpartyService portssvc.CounterpartySvcFacade) {
	h := &counterpartyHandler{counterpartyService: counterpartyService}

	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
		counterparties.GET("/:id", h.getCounterparty)
	}
}

func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCounterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)

	counterparty, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create counterparty")
		return
	}

	logger.Info("Counterparty created", slog.String("counterparty_id", counterparty.CounterpartyID))
	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(counterparty))
}

func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCounterpartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var role *domain.CounterpartyRole
	if params.Role != "" {
		r := domain.CounterpartyRole(params.Role)
		role = &r
	}

	counterparties, err := h.counterpartyService.ListCounterparties(c.Request.Context(), role, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list counterparties")
		return
	}

	resp := make([]dto.CounterpartyResponse, len(counterparties))
	for i := range counterparties {
		resp[i] = dto.ToCounterpartyResponse(&counterparties[i])
	}
	c.JSON(http.StatusOK, gin.H{"counterparties": resp})
}

func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	counterpartyID := c.Param("id")

	counterparty, err := h.counterpartyService.GetCounterpartyByID(c.Request.Context(), counterpartyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve counterparty")
		return
	}

	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(counterparty))
}
