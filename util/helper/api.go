package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxPerPage is the largest page the Management API serves.
const MaxPerPage = 100

// GetPaginationParams reads page and per_page. Missing values are zero so
// the gateway applies its defaults.
func GetPaginationParams(c *gin.Context) (page int, perPage int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0, 0, strconv.ErrSyntax
	}
	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", "0"))
	if err != nil || perPage < 0 {
		return 0, 0, strconv.ErrSyntax
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage, nil
}
