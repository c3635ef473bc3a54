package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/common/llm"
	"promptrelay.app/relay/internal/content"
	"promptrelay.app/relay/internal/http/dto"
	"promptrelay.app/relay/internal/service"
)

type GenerateHandler struct {
	service service.GenerationService
}

func NewGenerateHandler(service service.GenerationService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid generate request", "error", err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgInvalidRequestBody})
		return
	}

	contentType, ok := req.ContentType()
	if !ok {
		slog.InfoContext(ctx, "rejected generation request", "type", string(req.Type), "reason", content.ErrInvalidType)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgInvalidContentType})
		return
	}

	result, err := h.service.Generate(ctx, service.GenerateParams{
		Type:     contentType,
		FormData: req.FormData,
	})
	if err != nil {
		switch {
		case errors.Is(err, content.ErrMissingType):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgMissingContentType})
		case errors.Is(err, content.ErrInvalidType):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgInvalidContentType})
		case llm.IsAuthError(err):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.MsgInvalidAPIKey})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		GeneratedText: result.GeneratedText,
		Type:          string(result.Type),
	})
}
