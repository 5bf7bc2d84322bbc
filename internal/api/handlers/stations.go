package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"channel-radio/internal/stations"
)

// StationHandler serves the static station directory.
type StationHandler struct {
	directory *stations.Directory
}

// NewStationHandler creates a new StationHandler instance
func NewStationHandler(dir *stations.Directory) *StationHandler {
	return &StationHandler{directory: dir}
}

// GetStations returns the directory entries in declaration order.
func (h *StationHandler) GetStations(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.All())
}
