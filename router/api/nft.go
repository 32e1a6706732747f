package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"marketscan/common/utils"
	"marketscan/service"
)

func NFT(e *gin.Engine) {
	e.GET("/nft/page", pageNFT)
	e.GET("/nft/:id", getNFT)
	e.GET("/order/page", pageOrder)
}

// @Tags        NFT
// @Summary     query NFT list
// @Description Query the NFT list in reverse order of creation time
// @Accept      json
// @Produce     json
// @Param       category  query    string false "Category, one of parcel/estate/wearable/ens, if empty, query all"
// @Param       owner     query    string false "Owner, if empty, query all"
// @Param       search    query    string false "Text to match against the search text, if empty, query all"
// @Param       on_sale   query    string false "true to only return NFTs with an open order"
// @Param       page      query    string false "Page, default 1"
// @Param       page_size query    string false "Page size, default 10"
// @Success     200       {object} service.NFTsRes
// @Failure     400       {object} service.ErrRes
// @Router      /nft/page [get]
func pageNFT(c *gin.Context) {
	req := struct {
		Page     *int   `form:"page"`
		PageSize *int   `form:"page_size"`
		Category string `form:"category"`
		Owner    string `form:"owner"`
		Search   string `form:"search"`
		OnSale   bool   `form:"on_sale"`
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

	res, err := service.FetchNFTs(req.Category, strings.ToLower(req.Owner), req.Search, req.OnSale, page, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     query one NFT
// @Description Query one NFT by its id, category-contract-tokenId
// @Accept      json
// @Produce     json
// @Param       id  path     string true "NFT id"
// @Success     200 {object} model.NFT
// @Failure     400 {object} service.ErrRes
// @Router      /nft/{id} [get]
func getNFT(c *gin.Context) {
	res, err := service.GetNFT(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     query order list
// @Description Query the marketplace order list in reverse order of creation time
// @Accept      json
// @Produce     json
// @Param       status    query    string false "Status, one of open/sold/cancelled, if empty, query all"
// @Param       nft_id    query    string false "NFT id, if empty, query all"
// @Param       owner     query    string false "Seller, if empty, query all"
// @Param       page      query    string false "Page, default 1"
// @Param       page_size query    string false "Page size, default 10"
// @Success     200       {object} service.OrdersRes
// @Failure     400       {object} service.ErrRes
// @Router      /order/page [get]
func pageOrder(c *gin.Context) {
	req := struct {
		Page     *int   `form:"page"`
		PageSize *int   `form:"page_size"`
		Status   string `form:"status"`
		NFTId    string `form:"nft_id"`
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

	res, err := service.FetchOrders(req.Status, req.NFTId, strings.ToLower(req.Owner), page, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
