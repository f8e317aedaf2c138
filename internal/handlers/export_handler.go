package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpresshq/inkpress-cms-backend/internal/services/excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	excelService *excel.Service
}

func NewExportHandler(excelService *excel.Service) *ExportHandler {
	return &ExportHandler{
		excelService: excelService,
	}
}

// ExportPosts godoc
// @Summary Export the organization's posts as an Excel file
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/posts/export [get]
func (h *ExportHandler) ExportPosts(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	buf, filename, err := h.excelService.ExportPosts(organizationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export posts", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
