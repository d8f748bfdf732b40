package middleware

import (
	"bytes"
	"net/http"

	"yatube/services"

	"github.com/gin-gonic/gin"
)

type cachingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachingWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *cachingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage кеширует готовый ответ по URL запроса.
// Пока окно кеша не истекло, отдается сохраненное тело,
// даже если посты под ним уже изменились.
func CachePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		url := c.Request.RequestURI

		if page, ok := services.GlobalPageCache.Get(c.Request.Context(), url); ok {
			RecordPageCacheHit()
			c.Data(http.StatusOK, page.ContentType, page.Body)
			c.Abort()
			return
		}
		RecordPageCacheMiss()

		writer := &cachingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			services.GlobalPageCache.Set(c.Request.Context(), url, services.CachedPage{
				Body:        writer.body.Bytes(),
				ContentType: writer.Header().Get("Content-Type"),
			})
		}
	}
}
