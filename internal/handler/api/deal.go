package api

import (
	"net/http"

	reqdto "venue-deals/internal/handler/dto/request"
	resdto "venue-deals/internal/handler/dto/response"
	"venue-deals/internal/handler/httperr"
	"venue-deals/internal/pkg/clock"
	"venue-deals/internal/pkg/patch"
	"venue-deals/internal/usecase/commands"
	"venue-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DealHandler struct {
	cmds  commands.DealCommands
	q     queries.DealQueries
	clock clock.Clock
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries, clk clock.Clock) *DealHandler {
	reqdto.RegisterValidations()
	return &DealHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary List active deals for a venue
// @Description Deals of the venue that are live at the given instant (default now), newest first
// @Tags deals
// @Produce json
// @Param id path string true "Venue ID"
// @Param at query string false "Evaluation instant, RFC3339 or YYYY-MM-DDTHH:MM in the venue zone"
// @Success 200 {object} resdto.ActiveDealsResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /venues/{id}/deals/active [get]
func (h *DealHandler) ActiveForVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue id", nil)
		return
	}

	var query reqdto.ActiveDealsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	now := h.clock.Now()
	at, err := query.ParseAt(now.Location())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	evalAt := patch.Coalesce(at, now)

	deals, err := h.q.ActiveDealsFor(c.Request.Context(), venueID, &evalAt)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load active deals")
		return
	}

	c.JSON(http.StatusOK, resdto.ActiveDealsResponse{
		VenueID: venueID,
		At:      evalAt.In(now.Location()),
		Deals:   resdto.FromDeals(deals),
	})
}

// @Summary Get deal
// @Description Get a deal by ID together with whether it is live now
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	detail, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load deal")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealDetail(detail))
}

// @Summary Create deal
// @Description Create a deal with a one-off or recurring schedule
// @Tags deals
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDealRequest true "Create deal request"
// @Success 201 {object} resdto.CreateDealResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var req reqdto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Create deal failed")
		return
	}
	c.Header("Location", "/api/deals/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreateDealResponse{ID: id})
}

// @Summary Toggle deal kill switch
// @Description Turn a deal on or off regardless of its schedule
// @Tags deals
// @Accept json
// @Param id path string true "Deal ID"
// @Param request body reqdto.SetActivationRequest true "Activation request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /deals/{id}/activation [patch]
func (h *DealHandler) SetActivation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SetActivationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Update deal failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete deal
// @Description Hard delete a deal and its engagement records
// @Tags deals
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Delete deal failed")
		return
	}
	c.Status(http.StatusNoContent)
}
