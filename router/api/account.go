package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"marketscan/common/utils"
	"marketscan/service"
)

func Account(e *gin.Engine) {
	e.GET("/account/page", pageAccount)
	e.GET("/account/:addr", getAccount)
	e.POST("/account/name", setAccountName)
}

// @Tags        account
// @Summary     query account list
// @Description Query the account list, optionally sorted by a trade statistic
// @Accept      json
// @Produce     json
// @Param       order     query    string false "Sort condition, supports sales/purchases/spent/earned with DESC, if empty, natural order"
// @Param       page      query    string false "Page, default 1"
// @Param       page_size query    string false "Page size, default 10"
// @Success     200       {object} service.AccountsRes
// @Failure     400       {object} service.ErrRes
// @Router      /account/page [get]
func pageAccount(c *gin.Context) {
	req := struct {
		Page     *int   `form:"page"`
		PageSize *int   `form:"page_size"`
		Order    string `form:"order"`
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
	switch req.Order {
	case "", "sales DESC", "purchases DESC", "spent DESC", "earned DESC":
	default:
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: "unsupported sort condition"})
		return
	}

	res, err := service.FetchAccounts(page, size, req.Order)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        account
// @Summary     query one account
// @Description Query one account with its NFT and open order counts
// @Accept      json
// @Produce     json
// @Param       addr path     string true "Account address"
// @Success     200  {object} service.AccountRes
// @Failure     400  {object} service.ErrRes
// @Router      /account/{addr} [get]
func getAccount(c *gin.Context) {
	res, err := service.GetAccount(c.Param("addr"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

type NameReq struct {
	Address string `json:"address"` //account address
	Name    string `json:"name"`    //display name to set
	Sign    string `json:"sign"`    //hex signature over the name
}

// @Tags        account
// @Summary     set account name
// @Description Set the display name of an account, the signature over the name must recover to the account
// @Accept      json
// @Produce     json
// @Param       _ body NameReq true "name request"
// @Success     200
// @Failure     400 {object} service.ErrRes
// @Router      /account/name [post]
func setAccountName(c *gin.Context) {
	req := NameReq{}
	err := c.BindJSON(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	if req.Address == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: "address and name are required"})
		return
	}

	err = service.SetAccountName(req.Address, req.Name, req.Sign)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.ErrRes{ErrStr: err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
