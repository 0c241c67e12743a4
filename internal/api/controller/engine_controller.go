package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/Five-In-A-Row/internal/api/models"
	"ctchen222/Five-In-A-Row/internal/api/response"
	"ctchen222/Five-In-A-Row/internal/api/service"
	"ctchen222/Five-In-A-Row/internal/game"
	"ctchen222/Five-In-A-Row/internal/validator"

	"github.com/gin-gonic/gin"
)

// EngineController handles engine-related HTTP requests.
type EngineController struct {
	engineService service.EngineService
}

// NewEngineController creates a new EngineController.
func NewEngineController(engineService service.EngineService) *EngineController {
	return &EngineController{
		engineService: engineService,
	}
}

// BestMove handles the move endpoint.
func (ec *EngineController) BestMove(c *gin.Context) {
	var req models.MoveRequest
	if !bind(c, &req) {
		return
	}

	resp, err := ec.engineService.BestMove(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, resp)
}

// Winner handles the winner endpoint.
func (ec *EngineController) Winner(c *gin.Context) {
	var req models.WinnerRequest
	if !bind(c, &req) {
		return
	}

	resp, err := ec.engineService.Winner(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, resp)
}

// Evaluate handles the evaluate endpoint.
func (ec *EngineController) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if !bind(c, &req) {
		return
	}

	resp, err := ec.engineService.Evaluate(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, resp)
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid request", "path", c.FullPath(), "error", err)
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidBoard),
		errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, service.ErrEmptyLastMove):
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrGameFinished):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "engine request failed", "path", c.FullPath(), "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
