package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/montelzek/mydorm-backend/internal/building"
	"github.com/montelzek/mydorm-backend/internal/pkg/response"
)

type Handler struct {
	service building.Service
}

func NewHandler(service building.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	keyword := c.Query("q")

	filter := building.Filter{
		Keyword:  keyword,
		Page:     page,
		PageSize: pageSize,
	}

	buildings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list buildings"})
		return
	}

	items := make([]BuildingResponse, len(buildings))
	for i, b := range buildings {
		items[i] = NewBuildingResponse(b)
	}

	resp := response.NewPageResponse(items, page, pageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == building.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get building"})
		return
	}

	c.JSON(http.StatusOK, NewBuildingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBuildingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), building.CreateRequest{
		Name:    body.Name,
		Address: body.Address,
	})
	if err != nil {
		if err == building.ErrNameRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create building"})
		return
	}

	c.JSON(http.StatusCreated, NewBuildingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBuildingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, building.UpdateRequest{
		Name:    body.Name,
		Address: body.Address,
	})
	if err != nil {
		switch err {
		case building.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		case building.ErrNameRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update building"})
		}
		return
	}

	c.JSON(http.StatusOK, NewBuildingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == building.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete building"})
		return
	}

	c.Status(http.StatusNoContent)
}
