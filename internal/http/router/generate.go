package router

import (
	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/internal/http/handler"
)

func GenerateRouter(rg *gin.RouterGroup, h *handler.GenerateHandler) {
	rg.POST("/generate", h.Generate)
}
