package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/AErenK/site-yonetim/pkg/translator"
)

// LanguageMiddleware sets the response language from the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep language handling simple for now: use raw header value, fallback to tr.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageTr
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
	return translator.LanguageTr
}
