package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"marketscan/service"
)

func Extra(e *gin.Engine) {
	e.GET("/overview", overview)
	e.GET("/count", count)
}

// @Tags        other
// @Summary     query overview
// @Description Query indexing progress and entity totals
// @Accept      json
// @Produce     json
// @Success     200 {object} service.Stats
// @Router      /overview [get]
func overview(c *gin.Context) {
	c.JSON(http.StatusOK, service.FetchOverview())
}

// @Tags        other
// @Summary     query aggregate counters
// @Description Query the marketplace aggregate counters, mints per category and cumulative sale figures
// @Accept      json
// @Produce     json
// @Success     200 {object} model.Count
// @Failure     400 {object} service.ErrRes
// @Router      /count [get]
func count(c *gin.Context) {
	res, err := service.GetCountRow()
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
