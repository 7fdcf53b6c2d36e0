package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads page and pageSize query parameters with the API
// defaults (1 and 20). page must be >= 1 and pageSize within 1..100.
func ParsePagination(c *gin.Context) (page, pageSize int, err error) {
	page, convErr := strconv.Atoi(c.DefaultQuery("page", "1"))
	if convErr != nil || page < 1 {
		return 0, 0, ErrInvalidPage
	}
	pageSize, convErr = strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if convErr != nil || pageSize < 1 || pageSize > 100 {
		return 0, 0, ErrInvalidPageSize
	}
	return page, pageSize, nil
}
