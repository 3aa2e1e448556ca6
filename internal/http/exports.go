package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/service"
)

type ExportResponse struct {
	Key      string `json:"key"`
	Location string `json:"location"`
}

type ExportObjectResponse struct {
	Key          string  `json:"key"`
	Size         int64   `json:"size"`
	LastModified *string `json:"last_modified,omitempty"`
	URL          string  `json:"url"`
}

func (h *Handler) createExport(c *gin.Context) {
	res, err := h.exports.Create(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "export not found")
		return
	}
	c.JSON(http.StatusCreated, ExportResponse{Key: res.Key, Location: res.Location})
}

func (h *Handler) listExports(c *gin.Context) {
	objects, err := h.exports.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "export not found")
		return
	}

	resp := make([]ExportObjectResponse, len(objects))
	for i := range objects {
		resp[i] = exportObjectToResponse(objects[i])
	}
	c.JSON(http.StatusOK, resp)
}

func exportObjectToResponse(obj service.ExportObject) ExportObjectResponse {
	resp := ExportObjectResponse{
		Key:  obj.Key,
		Size: obj.Size,
		URL:  obj.URL,
	}
	if obj.LastModified != nil && !obj.LastModified.IsZero() {
		v := obj.LastModified.Format(time.RFC3339)
		resp.LastModified = &v
	}
	return resp
}
