package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board-api/internal/apperr"
	"github.com/justsurfingit/job-board-api/internal/pagination"
)

const malformedBody = "Malformed request body"

// pathID parses the :id parameter. On failure the error is attached to c
// and ok is false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		_ = c.Error(apperr.Validation(map[string]string{"id": "id must be a positive integer"}))
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(apperr.BadRequest(malformedBody, err))
		return false
	}
	return true
}

func bindPageQuery(c *gin.Context) (pagination.Query, bool) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(apperr.BadRequest("Invalid paging parameters", err))
		return q, false
	}
	return q, true
}
