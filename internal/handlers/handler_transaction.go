package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/bizbooks/ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests against the journal.
type transactionHandler struct {
	journalService portssvc.JournalSvcFacade
}

// registerTransactionRoutes registers routes related to journal entries.
func registerTransactionRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &transactionHandler{journalService: journalService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.appendTransaction)
		transactions.POST("/transfer", h.appendTransfer)
		transactions.POST("/:id/reverse", h.reverseTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
	}
}

func (h *transactionHandler) appendTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)

	txn, err := h.journalService.Append(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to append transaction")
		return
	}

	logger.Info("Transaction committed", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) appendTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)

	legs, err := h.journalService.AppendTransfer(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to append transfer")
		return
	}

	logger.Info("Transfer committed", slog.Int("legs", len(legs)))
	c.JSON(http.StatusCreated, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(legs),
	})
}

func (h *transactionHandler) reverseTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	userID := middleware.GetUserIDFromContext(c)

	reversed, err := h.journalService.Reverse(c.Request.Context(), transactionID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reverse transaction")
		return
	}

	logger.Info("Transaction reversed", slog.String("original_id", transactionID))
	c.JSON(http.StatusCreated, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(reversed),
	})
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListTransactionsByAccount(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.journalService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
