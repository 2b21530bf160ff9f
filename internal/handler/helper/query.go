package helper

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePage читает параметр ?page=. Отсутствующее или нечисловое значение даёт 1.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
