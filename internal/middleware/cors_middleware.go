package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Content-Type,Authorization,true"
	corsAllowMethods = "GET,PATCH,POST,DELETE,OPTIONS"
)

// CORS разрешает запросы с любого origin и добавляет
// Allow-Headers/Allow-Methods к каждому ответу, а не только к preflight.
// Списки заголовков и методов в cors.Config не передаются: библиотека
// приводит имена к каноническому виду ("true" -> "True") и затирает наши значения.
func CORS() gin.HandlerFunc {
	origins := cors.New(cors.Config{
		AllowAllOrigins: true,
	})

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		origins(c)
	}
}
