package tests

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/pkg/translator"
)

const translationFolder = "../../../../../pkg/translator/translation"

var (
	adminIdentity = domain.Identity{
		ID:    "admin-1",
		Name:  "Site Yöneticisi",
		Email: "admin@kartepe.com",
		Role:  domain.RoleAdmin,
	}
	employeeIdentity = domain.Identity{
		ID:    "emp-1",
		Name:  "Ali Yılmaz",
		Email: "ali@kartepe.com",
		Role:  domain.RoleEmployee,
	}
)

// withIdentity stands in for AuthMiddleware so handlers see an authenticated
// caller without a real session cookie.
func withIdentity(identity domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageTr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}
