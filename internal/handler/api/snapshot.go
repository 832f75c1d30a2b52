package api

import (
	"errors"
	"net/http"

	"cosmic-courier/internal/handler/httperr"
	"cosmic-courier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	snapshotQueries queries.SnapshotQueries
}

func NewSnapshotHandler(snapshotQueries queries.SnapshotQueries) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotQueries: snapshotQueries,
	}
}

// @Summary Cosmic snapshot preview
// @Description Compute the ranked cosmic events and sky state for a date
// @Tags snapshot
// @Produce json
// @Param date query string false "Date in YYYY-MM-DD, defaults to today"
// @Success 200 {object} queries.SnapshotView
// @Failure 400 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /api/cosmic-snapshot [get]
func (h *SnapshotHandler) GetCosmicSnapshot(c *gin.Context) {
	view, err := h.snapshotQueries.CosmicSnapshot(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidSnapshotDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute cosmic snapshot", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}
