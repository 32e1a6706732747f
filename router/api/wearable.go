package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"marketscan/common/utils"
	"marketscan/service"
)

func Wearable(e *gin.Engine) {
	e.GET("/wearable/page", pageWearable)
	e.GET("/ens/page", pageENS)
}

// @Tags        Wearable
// @Summary     query wearable list
// @Description Query the wearable list
// @Accept      json
// @Produce     json
// @Param       rarity    query    string false "Rarity, if empty, query all"
// @Param       category  query    string false "Wearable category, such as hat or upper_body, if empty, query all"
// @Param       owner     query    string false "Owner, if empty, query all"
// @Param       page      query    string false "Page, default 1"
// @Param       page_size query    string false "Page size, default 10"
// @Success     200       {object} service.WearablesRes
// @Failure     400       {object} service.ErrRes
// @Router      /wearable/page [get]
func pageWearable(c *gin.Context) {
	req := struct {
		Page     *int   `form:"page"`
		PageSize *int   `form:"page_size"`
		Rarity   string `form:"rarity"`
		Category string `form:"category"`
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

	res, err := service.FetchWearables(req.Rarity, req.Category, strings.ToLower(req.Owner), page, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        Wearable
// @Summary     query name list
// @Description Query the registered name list
// @Accept      json
// @Produce     json
// @Param       owner     query    string false "Owner, if empty, query all"
// @Param       page      query    string false "Page, default 1"
// @Param       page_size query    string false "Page size, default 10"
// @Success     200       {object} service.ENSsRes
// @Failure     400       {object} service.ErrRes
// @Router      /ens/page [get]
func pageENS(c *gin.Context) {
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

	res, err := service.FetchENSs(strings.ToLower(req.Owner), page, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
