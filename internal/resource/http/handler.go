package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/montelzek/mydorm-backend/internal/pkg/response"
	"github.com/montelzek/mydorm-backend/internal/resource"
)

type Handler struct {
	service resource.Service
}

func NewHandler(service resource.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := resource.Filter{
		BuildingID: c.Query("building_id"),
		Type:       c.Query("type"),
		Page:       page,
		PageSize:   pageSize,
	}
	if v := c.Query("is_active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}

	resources, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list resources"})
		return
	}

	items := make([]ResourceResponse, len(resources))
	for i, res := range resources {
		items[i] = NewResourceResponse(res)
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

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == resource.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get resource"})
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(res))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), resource.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Type:        body.Type,
		BuildingID:  body.BuildingID,
	})
	if err != nil {
		switch err {
		case resource.ErrEmptyName, resource.ErrInvalidBuilding, resource.ErrInvalidType:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case resource.ErrNameTaken:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create resource"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResourceResponse(res))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, resource.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if err != nil {
		switch err {
		case resource.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		case resource.ErrEmptyName:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update resource"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(res))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == resource.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete resource"})
		return
	}

	c.Status(http.StatusNoContent)
}
