package handler

import (
	"net/http"
	"strconv"

	"github.com/VinciYan/tileserv/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/maptile"
)

// Tile serves a single slippy map tile. Coordinates must be unsigned 32-bit
// integers; the error body on 404 and 500 stays empty.
func (h *Handler) Tile(c *gin.Context) {
	log, _ := c.Get("logger")
	l := log.(logger.Logger)

	strZ := c.Param("z")
	strX := c.Param("x")
	strY := c.Param("y")

	z, err := strconv.ParseUint(strZ, 10, 32)
	if err != nil {
		l.Warn("invalid z parameter", "z", strZ, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "z should be an unsigned integer",
		})
		return
	}

	x, err := strconv.ParseUint(strX, 10, 32)
	if err != nil {
		l.Warn("invalid x parameter", "x", strX, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "x should be an unsigned integer",
		})
		return
	}

	y, err := strconv.ParseUint(strY, 10, 32)
	if err != nil {
		l.Warn("invalid y parameter", "y", strY, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "y should be an unsigned integer",
		})
		return
	}

	tile := maptile.New(uint32(x), uint32(y), maptile.Zoom(z))

	data, found, err := h.tileUseCase.GetTile(c.Request.Context(), tile)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if !found {
		c.Status(http.StatusNotFound)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}
