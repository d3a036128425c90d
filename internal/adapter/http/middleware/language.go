package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mooosty/bckndmstr/pkg/translator"
)

// LanguageMiddleware stores the caller's preferred language for error
// message translation. Raw Accept-Language value, fallback to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
