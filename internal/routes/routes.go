package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"galleria/internal/handlers"
	"galleria/internal/middleware"
	"galleria/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	tokens *services.TokenService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	articleHandler *handlers.ArticleHandler,
	collectionHandler *handlers.CollectionHandler,
	tagHandler *handlers.TagHandler,
) *gin.Engine {

	// ---- public
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"Hello": "World"})
	})
	r.POST("/send-verification-code", authHandler.SendVerificationCode)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	r.GET("/articles", articleHandler.List)
	r.GET("/articles/:id", articleHandler.GetByID)

	r.GET("/collections", collectionHandler.List)
	r.GET("/collections/get/:id", collectionHandler.GetByID)

	r.GET("/tags/images/:image_id/tags", tagHandler.ListTags)

	// ---- protected
	authed := r.Group("/", middleware.AuthMiddleware(tokens))
	{
		authed.GET("/protected", userHandler.Protected)
		authed.POST("/user/upload-avatar", userHandler.UploadAvatar)

		authed.POST("/articles", articleHandler.Create)
		authed.POST("/collections", collectionHandler.Create)
		authed.POST("/tags/images/:image_id/tags", tagHandler.AddTags)
	}

	return r
}
