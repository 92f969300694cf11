package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// statusTexts фразы для ошибок, текст которых нельзя показывать клиенту.
var statusTexts = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusPaymentRequired:     "payment required",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "not found",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "unprocessable entity",
}

// Errors преобразует первую ошибку контекста в ответ клиенту. Наружу уходит текст
// самой ошибки только для gin.ErrorTypePublic, остальные ошибки заменяются фразой
// по статусу ответа.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		firstErr := c.Errors[0]
		msg := statusTexts[c.Writer.Status()]
		if msg == "" {
			msg = "internal server error"
		}
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		}

		// API отвечает json, text/plain отдаем только по явному Accept
		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(c.Writer.Status(), msg)
		} else {
			c.JSON(c.Writer.Status(), gin.H{"error": msg})
		}
		c.Abort()
	}
}
