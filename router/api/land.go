package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"marketscan/common/utils"
	"marketscan/service"
)

func Land(e *gin.Engine) {
	e.GET("/parcel/page", pageParcel)
	e.GET("/estate/page", pageEstate)
}

// @Tags        LAND
// @Summary     query parcel list
// @Description Query the parcel list in coordinate order, optionally bounded by a coordinate rectangle
// @Accept      json
// @Produce     json
// @Param       min_x     query    string false "Lower bound on x, if empty, unbounded"
// @Param       max_x     query    string false "Upper bound on x, if empty, unbounded"
// @Param       min_y     query    string false "Lower bound on y, if empty, unbounded"
// @Param       max_y     query    string false "Upper bound on y, if empty, unbounded"
// @Param       owner     query    string false "Owner, if empty, query all"
// @Param       page      query    string false "Page, default 1"
// @Param       page_size query    string false "Page size, default 10"
// @Success     200       {object} service.ParcelsRes
// @Failure     400       {object} service.ErrRes
// @Router      /parcel/page [get]
func pageParcel(c *gin.Context) {
	req := struct {
		Page     *int   `form:"page"`
		PageSize *int   `form:"page_size"`
		MinX     *int   `form:"min_x"`
		MaxX     *int   `form:"max_x"`
		MinY     *int   `form:"min_y"`
		MaxY     *int   `form:"max_y"`
		Owner    string `form:"owner"`
	}{}
	err := c.BindQuery(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	page, size, err := utils.ParsePage(req.Page, req.PageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}

	res, err := service.FetchParcels(req.MinX, req.MinY, req.MaxX, req.MaxY, strings.ToLower(req.Owner), page, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        LAND
// @Summary     query estate list
// @Description Query the estate list
// @Accept      json
// @Produce     json
// @Param       owner     query    string false "Owner, if empty, query all"
// @Param       page      query    string false "Page, default 1"
// @Param       page_size query    string false "Page size, default 10"
// @Success     200       {object} service.EstatesRes
// @Failure     400       {object} service.ErrRes
// @Router      /estate/page [get]
func pageEstate(c *gin.Context) {
	req := struct {
		Page     *int   `form:"page"`
		PageSize *int   `form:"page_size"`
		Owner    string `form:"owner"`
	}{}
	err := c.BindQuery(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	page, size, err := utils.ParsePage(req.Page, req.PageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}

	res, err := service.FetchEstates(strings.ToLower(req.Owner), page, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
