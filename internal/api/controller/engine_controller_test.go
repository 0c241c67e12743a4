package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ctchen222/Five-In-A-Row/internal/api/models"
	"ctchen222/Five-In-A-Row/internal/api/response"
	"ctchen222/Five-In-A-Row/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func emptyBoard() []string {
	rows := make([]string, 15)
	for i := range rows {
		rows[i] = strings.Repeat(".", 15)
	}
	return rows
}

func newRouter(svc service.EngineService) *gin.Engine {
	ec := NewEngineController(svc)
	r := gin.New()
	r.POST("/move", ec.BestMove)
	r.POST("/winner", ec.Winner)
	r.POST("/evaluate", ec.Evaluate)
	return r
}

func do(t *testing.T, r http.Handler, path string, body any) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestBestMove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewMockEngineService(ctrl)
	req := models.MoveRequest{Board: emptyBoard(), Next: "O"}

	svc.EXPECT().
		BestMove(gomock.Any(), &req).
		Return(&models.MoveResponse{Row: 7, Col: 7, HasMove: true}, nil)

	w, resp := do(t, newRouter(svc), "/move", req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	extras := resp.Extras.(map[string]any)
	assert.Equal(t, float64(7), extras["row"])
	assert.Equal(t, true, extras["has_move"])
}

func TestBestMove_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "Missing side", body: map[string]any{"board": emptyBoard()}},
		{name: "Unknown side", body: models.MoveRequest{Board: emptyBoard(), Next: "Z"}},
		{name: "Short board", body: models.MoveRequest{Board: emptyBoard()[:10], Next: "X"}},
		{name: "Bad cell", body: models.MoveRequest{Board: append(emptyBoard()[:14], "..#............"), Next: "X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service.NewMockEngineService(ctrl)

			w, resp := do(t, newRouter(svc), "/move", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestBestMove_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "Finished game", err: service.ErrGameFinished, wantCode: http.StatusUnprocessableEntity},
		{name: "Unexpected failure", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service.NewMockEngineService(ctrl)
			svc.EXPECT().BestMove(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w, resp := do(t, newRouter(svc), "/move", models.MoveRequest{Board: emptyBoard(), Next: "X"})
			assert.Equal(t, tt.wantCode, w.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestWinner_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewMockEngineService(ctrl)
	svc.EXPECT().Winner(gomock.Any(), gomock.Any()).Return(&models.WinnerResponse{Winner: "X"}, nil)

	w, resp := do(t, newRouter(svc), "/winner", models.WinnerRequest{Board: emptyBoard(), LastMove: []int{7, 2}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "X", resp.Extras.(map[string]any)["winner"])
}

func TestWinner_RejectsOffBoardMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewMockEngineService(ctrl)

	w, _ := do(t, newRouter(svc), "/winner", models.WinnerRequest{Board: emptyBoard(), LastMove: []int{7, 15}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewMockEngineService(ctrl)
	svc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(&models.EvaluateResponse{Score: -20}, nil)

	w, resp := do(t, newRouter(svc), "/evaluate", models.EvaluateRequest{Board: emptyBoard()})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(-20), resp.Extras.(map[string]any)["score"])
}
