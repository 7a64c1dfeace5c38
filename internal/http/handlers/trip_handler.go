// README: Trip handlers for list/create/detail/update/delete.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripkit/internal/modules/record"
	"tripkit/internal/modules/trip"
	"tripkit/internal/types"
)

type TripHandler struct {
	trips   *trip.Service
	records *record.Service
}

func NewTripHandler(trips *trip.Service, records *record.Service) *TripHandler {
	return &TripHandler{trips: trips, records: records}
}

type tripResponse struct {
	ID          types.ID  `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Days        int       `json:"days"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTripResponse(t *trip.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(dateLayout),
		EndDate:     t.EndDate.Format(dateLayout),
		Days:        t.Days(),
		CreatedAt:   t.CreatedAt,
	}
}

func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		writeTripError(c, err)
		return
	}
	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": out})
}

type createTripReq struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	UseAI       bool   `json:"use_ai"`
}

func (h *TripHandler) Create(c *gin.Context) {
	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	start, ok := parseDate(req.StartDate)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, ok := parseDate(req.EndDate)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid end_date")
		return
	}

	res, err := h.trips.Create(c.Request.Context(), trip.CreateCommand{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		UseAI:       req.UseAI,
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{
		"trip":           toTripResponse(res.Trip),
		"content_source": res.Source,
		"generated":      res.Summary,
	})
}

// Detail returns the trip with all child records and progress percentages.
func (h *TripHandler) Detail(c *gin.Context) {
	id := types.ID(c.Param("id"))

	t, err := h.trips.Get(c.Request.Context(), id)
	if err != nil {
		writeTripError(c, err)
		return
	}
	lists, err := h.records.ListByTrip(c.Request.Context(), id)
	if err != nil {
		writeRecordError(c, err)
		return
	}
	progress, err := h.trips.Progress(c.Request.Context(), id)
	if err != nil {
		writeTripError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"trip":     toTripResponse(t),
		"progress": progress,
		"records":  lists,
	})
}

type updateTripReq struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (h *TripHandler) Update(c *gin.Context) {
	var req updateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	start, ok := parseDate(req.StartDate)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, ok := parseDate(req.EndDate)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid end_date")
		return
	}

	t, err := h.trips.Update(c.Request.Context(), types.ID(c.Param("id")), trip.UpdateCommand{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trip": toTripResponse(t)})
}

func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": true})
}
