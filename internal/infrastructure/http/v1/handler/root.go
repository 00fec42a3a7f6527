package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const landingPage = "<h1>map source</h1>"

// Index serves the fixed landing page.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}
