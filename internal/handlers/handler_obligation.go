package handlers

import (
	"net/http"

	"github.com/bizbooks/ledger/internal/core/domain"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/bizbooks/ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// obligationHandler serves the derived debt/receivable records.
type obligationHandler struct {
	obligationService portssvc.ObligationSvcFacade
}

// registerObligationRoutes registers routes related to obligations.
func registerObligationRoutes(rg *gin.RouterGroup, obligationService portssvc.ObligationSvcFacade) {
	h := &obligationHandler{obligationService: obligationService}

	rg.GET("/obligations", h.listObligations)
}

func (h *obligationHandler) listObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	role := domain.CounterpartyRole(c.Query("role"))
	obligations, err := h.obligationService.ListObligations(c.Request.Context(), role)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list obligations")
		return
	}

	c.JSON(http.StatusOK, dto.ListObligationsResponse{
		Obligations: dto.ToObligationResponses(obligations),
	})
}
