package routes

import (
	"crumella-backend/configs"
	"crumella-backend/controllers"
	"crumella-backend/middlewares"
	"crumella-backend/repository"
	"crumella-backend/services"
	"crumella-backend/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	voucherSvc := services.NewVoucherService(voucherRepo)
	orderSvc := services.NewOrderService(db, orderRepo, voucherSvc, cfg.UploadDir)
	feedbackSvc := services.NewFeedbackService(feedbackRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Admin change feed: order writes ping connected dashboards
	feed := ws.NewOrderFeedHub()
	go feed.Run()
	orderSvc.Notify = feed

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController()
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(orderSvc)
	voucherCtrl := controllers.NewVoucherController(voucherSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, voucherSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)
	}

	// Storefront (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/availability", orderCtrl.Availability)
	r.POST("/orders", orderCtrl.Checkout)
	r.POST("/orders/:id/payment", paymentCtrl.Confirm)
	r.GET("/orders/track/:trackingNumber", orderCtrl.Track)
	r.POST("/vouchers/validate", voucherCtrl.Validate)
	r.POST("/feedbacks", feedbackCtrl.Create)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/orders", adminCtrl.Orders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateStatus)
		admin.PATCH("/orders/:id/date", adminCtrl.UpdateDate)
		admin.PATCH("/orders/:id/payment-method", adminCtrl.UpdatePaymentMethod)
		admin.PATCH("/orders/:id/total", adminCtrl.UpdateTotal)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)
		admin.GET("/orders/:id/ticket", adminCtrl.Ticket)
		admin.GET("/stats", adminCtrl.Stats)
		admin.GET("/vouchers", adminCtrl.Vouchers)
		admin.PATCH("/vouchers/:id/reset", adminCtrl.ResetVoucher)
		admin.GET("/feedbacks", feedbackCtrl.List)
		admin.GET("/ws", feed.HandleWebSocket)
	}
}
