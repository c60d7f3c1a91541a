package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"worktrack/internal/identity"
	"worktrack/internal/model"
	"worktrack/internal/service"
	"worktrack/pkg/rbac"
)

type WorkplanHandler struct {
	svc    *service.WorkplanService
	logger *zap.Logger
}

func NewWorkplanHandler(svc *service.WorkplanService, logger *zap.Logger) *WorkplanHandler {
	return &WorkplanHandler{svc: svc, logger: logger}
}

// GetBoard returns the full board: filtered and sorted rows, column
// definitions, facet lists and the viewer's filter state.
func (h *WorkplanHandler) GetBoard(c *gin.Context) {
	user := identity.FromGinContext(c)
	h.logger.Info("GetBoard request received",
		zap.Int("staff_id", user.StaffID),
		zap.String("client_ip", c.ClientIP()),
	)

	board := h.svc.Load(c.Request.Context(), user.StaffID, user.Name)
	c.JSON(http.StatusOK, board)
}

// GetFacets returns the deduplicated filter option lists only.
func (h *WorkplanHandler) GetFacets(c *gin.Context) {
	user := identity.FromGinContext(c)
	facets := h.svc.Facets(c.Request.Context(), user.StaffID)
	c.JSON(http.StatusOK, facets)
}

// GetFilters returns the viewer's stored filter state, or the default.
func (h *WorkplanHandler) GetFilters(c *gin.Context) {
	user := identity.FromGinContext(c)
	state := h.svc.FilterStateFor(c.Request.Context(), user.StaffID, user.Name)
	c.JSON(http.StatusOK, state)
}

// PutFilters replaces the viewer's filter state.
func (h *WorkplanHandler) PutFilters(c *gin.Context) {
	user := identity.FromGinContext(c)

	if err := rbac.CheckPermission(user.StaffID, rbac.PermissionEditFilters); err != nil {
		h.logger.Warn("PutFilters: permission denied", zap.Int("staff_id", user.StaffID))
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}

	var state model.FilterState
	if err := c.ShouldBindJSON(&state); err != nil {
		h.logger.Warn("PutFilters: invalid payload",
			zap.Int("staff_id", user.StaffID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter payload"})
		return
	}

	for _, f := range state.Filters {
		if !model.KnownColumn(f.ColumnID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown column: " + f.ColumnID})
			return
		}
	}
	state.Normalize()

	if err := h.svc.SaveFilterState(c.Request.Context(), user.StaffID, state); err != nil {
		h.logger.Error("PutFilters: failed to save filter state",
			zap.Int("staff_id", user.StaffID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save filters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
