package trigger

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
)

// APIResponse is the JSON envelope of every response.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handler accepts trigger events over HTTP.
// Concurrent requests for the same model share one run.
type Handler struct {
	l     *Listener
	log   *zap.Logger
	group singleflight.Group
}

// NewHandler returns a gin engine serving POST /<version>/scaffold and GET /healthz.
func NewHandler(l *Listener, version string, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{l: l, log: log}
	r := gin.New()
	r.Use(gin.Recovery(), h.accessLog)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, APIResponse{Status: "success", Message: "ok"})
	})
	r.POST("/"+version+"/scaffold", h.Scaffold)
	return r
}

// Scaffold handles POST /<version>/scaffold.
func (h *Handler) Scaffold(c *gin.Context) {
	var ev Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Status: "error", Message: "invalid event", Error: err.Error()})
		return
	}
	if ev.Model == "" {
		c.JSON(http.StatusBadRequest, APIResponse{Status: "error", Message: "model is required"})
		return
	}
	// The run outlives a disconnecting client and is shared by joined callers.
	ctx := context.WithoutCancel(c.Request.Context())
	key := gen.ModelName(ev.Model) + "\x00" + boolKey(ev.Success)
	v, _, shared := h.group.Do(key, func() (any, error) {
		return h.l.Handle(ctx, ev), nil
	})
	rep := v.(Report)
	data := gin.H{"model": rep.Model, "table": rep.Table, "outcome": rep.Outcome, "shared": shared}
	if rep.Reason != "" {
		data["reason"] = rep.Reason
	}
	if rep.Result != nil {
		data["run_id"] = rep.Result.RunID
		data["written"] = rep.Result.Written
	}
	c.JSON(http.StatusAccepted, APIResponse{Status: "success", Data: data})
}

func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Debug("http request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
	)
}

func boolKey(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
