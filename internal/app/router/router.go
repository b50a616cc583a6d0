package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usershandler "account_backend/internal/feature/users/transport/handler"
	healthhandler "account_backend/internal/platform/http/handler"
	jwtmw "account_backend/internal/platform/jwt"
)

// NewRouter builds the HTTP route table. All API routes live under /api;
// only user creation and login are public.
func NewRouter(users *usershandler.UserHandler, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}))

	// 導通確認用
	r.GET("/healthz", healthhandler.Health)

	api := r.Group("/api")

	// 認証不要
	// 新規ユーザー登録
	api.POST("/users", users.Create)
	// ログイン（JWT 発行）
	api.POST("/login", users.Login)

	// 認証必須のルート
	// リクエストヘッダーに Bearer トークンが必要になる
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/users", users.List)
		auth.GET("/users/:id", users.Get)
		auth.PUT("/users/:id", users.Update)
		auth.DELETE("/users/:id", users.Delete)
	}

	// 未定義ルートはJSONで404を返す
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})

	return r
}
