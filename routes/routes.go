package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/configs"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/controllers"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/middlewares"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	notifSvc := services.NewNotificationService(notifRepo, hub)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	adminSvc := services.NewAdminService(db, userRepo, reviewRepo, restRepo, supportRepo, cfg.HeadAdminEmail)
	reviewSvc := services.NewReviewService(db, reviewRepo, restRepo, userRepo, notifSvc)
	restSvc := services.NewRestaurantService(restRepo)
	supportSvc := services.NewSupportService(supportRepo, userRepo, notifSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc, cfg.UploadDir)
	restCtrl := controllers.NewRestaurantController(restSvc)
	supportCtrl := controllers.NewSupportController(supportSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin, entity.RoleHeadAdmin)
	moderators := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleManager, entity.RoleAdmin, entity.RoleHeadAdmin)

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", authRequired)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/me/avatar", authCtrl.UploadAvatar)
		aAuth.GET("/me/avatar", authCtrl.GetAvatar)
	}

	// Public catalogue
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)
	api.GET("/reviews", reviewCtrl.List)

	// Restaurant CRUD (admin+)
	restAdmin := api.Group("/restaurants", adminOnly)
	{
		restAdmin.POST("", restCtrl.Create)
		restAdmin.PUT("/:id", restCtrl.Update)
		restAdmin.DELETE("/:id", restCtrl.Delete)
	}

	// Reviews (authenticated)
	rv := api.Group("/reviews", authRequired)
	{
		rv.POST("", reviewCtrl.Create)
		rv.POST("/vote", reviewCtrl.Vote)
	}
	api.POST("/reviews/:id/response", moderators, reviewCtrl.Respond)
	api.GET("/profile/reviews", authRequired, reviewCtrl.ListForMe)

	// Admin
	admin := api.Group("/admin", adminOnly)
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.PUT("/users/:id/role", adminCtrl.UpdateUserRole)
		admin.POST("/users/:id/block", adminCtrl.BlockUser)
		admin.POST("/users/:id/unblock", adminCtrl.UnblockUser)
		admin.GET("/reviews/deleted", adminCtrl.DeletedReviews)
		admin.GET("/reviews/deleted/:id", adminCtrl.DeletedReview)
	}
	// managers moderate too, so review deletion sits outside the
	// admin-only group
	api.DELETE("/admin/reviews/:id", moderators, adminCtrl.DeleteReview)

	// Support
	support := api.Group("/support", authRequired)
	{
		support.POST("/tickets", supportCtrl.CreateTicket)
		support.GET("/tickets", supportCtrl.ListTickets)
		support.GET("/tickets/:id", supportCtrl.GetTicket)
		support.POST("/tickets/:id/messages", supportCtrl.AddMessage)
	}
	api.PATCH("/support/tickets/:id/status", moderators, supportCtrl.UpdateStatus)

	// Notifications
	n := api.Group("/notifications", authRequired)
	{
		n.GET("", notifCtrl.List)
		n.POST("/:id/read", notifCtrl.MarkRead)
	}

	// Push channel
	r.GET("/ws", authRequired, hub.HandleWebSocket)
}
