package api

import (
	"net/http"

	reqdto "venue-deals/internal/handler/dto/request"
	resdto "venue-deals/internal/handler/dto/response"
	"venue-deals/internal/handler/httperr"
	"venue-deals/internal/usecase/commands"
	"venue-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	cmds commands.EngagementCommands
	q    queries.EngagementQueries
}

func NewEngagementHandler(cmds commands.EngagementCommands, q queries.EngagementQueries) *EngagementHandler {
	return &EngagementHandler{cmds: cmds, q: q}
}

// @Summary Record engagement
// @Description Record a like or dislike for a deal. The caller's network origin is the source identity; a later signal from the same source replaces the earlier one.
// @Tags engagements
// @Accept json
// @Param request body reqdto.RecordEngagementRequest true "Engagement request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /engagements [post]
func (h *EngagementHandler) Record(c *gin.Context) {
	var req reqdto.RecordEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Record(c.Request.Context(), req.ToInput(c.ClientIP())); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Record engagement failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Engagement stats
// @Description Like/dislike counts, rate and bucket for one deal or all deals of a venue
// @Tags engagements
// @Produce json
// @Param deal_id query string false "Deal ID"
// @Param venue_id query string false "Venue ID"
// @Success 200 {object} resdto.EngagementStatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /engagements/stats [get]
func (h *EngagementHandler) Stats(c *gin.Context) {
	var query reqdto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	sel, err := query.Selector()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Invalid query")
		return
	}
	stats, err := h.q.StatsFor(c.Request.Context(), sel)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load engagement stats")
		return
	}
	res, err := resdto.FromEngagementStats(sel, stats)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
