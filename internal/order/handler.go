package order

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fastorder/internal/llm"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgGenerateFailed = "Failed to generate order"
	msgUnavailable    = "Order generator temporarily unavailable"
	msgHistoryFailed  = "Failed to fetch recent orders"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/generate-order
// --------------------------------------------------
func (h *Handler) GenerateOrder(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := msgInvalidBody
		if errors.Is(err, ErrInvalidMode) {
			msg = err.Error()
		}
		c.JSON(http.StatusBadRequest, GenerateResponse{Error: msg})
		return
	}

	message, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, GenerateResponse{Error: verr.Reason})
		case errors.Is(err, ErrInvalidMode):
			c.JSON(http.StatusBadRequest, GenerateResponse{Error: err.Error()})
		case errors.Is(err, llm.ErrUnavailable):
			slog.Warn("llm unavailable", "error", err)
			c.JSON(http.StatusServiceUnavailable, GenerateResponse{Error: msgUnavailable})
		default:
			slog.Error("llm error", "error", err)
			c.JSON(http.StatusBadGateway, GenerateResponse{Error: msgGenerateFailed})
		}
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{GeneratedMessage: message})
}

// --------------------------------------------------
// GET /api/orders/recent
// --------------------------------------------------
func (h *Handler) Recent(c *gin.Context) {
	limit := DefaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		slog.Error("failed to list recent orders", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgHistoryFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": records})
}
