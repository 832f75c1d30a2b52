package api

import (
	"net/http"
	"time"

	"cosmic-courier/internal/infra/repository"
	"cosmic-courier/internal/pkg/clock"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	dispatch commands.DispatchCommands
	cronCfg  config.CronConfig
	clock    clock.Clock
}

func NewCronHandler(dispatch commands.DispatchCommands, cronCfg config.CronConfig, clk clock.Clock) *CronHandler {
	return &CronHandler{
		dispatch: dispatch,
		cronCfg:  cronCfg,
		clock:    clk,
	}
}

type cronRunResponse struct {
	Success bool `json:"success"`
	*commands.DispatchResult
}

type cronErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	CheckTime time.Time `json:"checkTime"`
}

// @Summary Run the notification sweep
// @Description Detect today's cosmic events and push the notification-worthy ones
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} cronRunResponse
// @Failure 401 {object} map[string]any
// @Failure 500 {object} cronErrorResponse
// @Router /cron/check-notifications [get]
func (h *CronHandler) CheckNotifications(c *gin.Context) {
	h.run(c, repository.SentByFourHourly, h.cronCfg.SweepTopN)
}

// @Summary Run the daily digest
// @Description Same detection pipeline as the sweep with the larger digest event cap
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} cronRunResponse
// @Failure 401 {object} map[string]any
// @Failure 500 {object} cronErrorResponse
// @Router /cron/daily-digest [get]
func (h *CronHandler) DailyDigest(c *gin.Context) {
	h.run(c, repository.SentByDaily, h.cronCfg.DigestTopN)
}

func (h *CronHandler) run(c *gin.Context, sentBy repository.SentBy, topN int) {
	result, err := h.dispatch.Run(c.Request.Context(), sentBy, topN)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, cronErrorResponse{
			Success:   false,
			Error:     err.Error(),
			CheckTime: h.clock.Now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, cronRunResponse{
		Success:        true,
		DispatchResult: result,
	})
}
