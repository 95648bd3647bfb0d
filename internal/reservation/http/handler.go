package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/montelzek/mydorm-backend/internal/auth"
	"github.com/montelzek/mydorm-backend/internal/pkg/response"
	"github.com/montelzek/mydorm-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
	loc     *time.Location
}

func NewHandler(service reservation.Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rsv, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		ResourceID: body.ResourceID,
		UserID:     auth.GetUserID(c),
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(rsv, h.loc))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c), false); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMine(c *gin.Context) {
	reservations, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, rsv := range reservations {
		items[i] = NewReservationResponse(rsv, h.loc)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Slots(c *gin.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	date := c.Query("date")

	slots, err := h.service.AvailableSlots(c.Request.Context(), resourceID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	// date already validated by the service
	day, _ := time.ParseInLocation("2006-01-02", date, h.loc)
	c.JSON(http.StatusOK, gin.H{"items": NewSlotResponses(slots, day, h.loc)})
}

func (h *Handler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	q := reservation.AdminQuery{
		ResourceID: c.Query("resource_id"),
		BuildingID: c.Query("building_id"),
		Date:       c.Query("date"),
		Search:     c.Query("search"),
		Page:       page,
		PageSize:   pageSize,
		SortDesc:   c.Query("sort") == "desc",
	}

	reservations, total, err := h.service.AdminPage(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, rsv := range reservations {
		items[i] = NewReservationResponse(rsv, h.loc)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) AdminCancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c), true); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
