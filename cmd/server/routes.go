package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvnest.backend/internal/infrastructure/messaging"
	"cvnest.backend/internal/interfaces/http/handlers"
	"cvnest.backend/internal/interfaces/http/middleware"
	"cvnest.backend/pkg/jwt"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	resumeHandler       *handlers.ResumeHandler
	jobHandler          *handlers.JobHandler
	subscriptionHandler *handlers.SubscriptionHandler
	chatHandler         *handlers.ChatHandler
	adminHandler        *handlers.AdminHandler
	jwtService          *jwt.JWTService
}

func middlewareStack() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, gateway *messaging.WhatsAppGateway) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"whatsapp": gateway.State().String(),
		})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	authRequired := middleware.AuthMiddleware(d.jwtService)

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public unless noted)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/verify-code", d.authHandler.VerifyCode)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/send-code", d.authHandler.SendCode)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", authRequired, d.authHandler.Me)
			auth.PUT("/me", authRequired, d.authHandler.UpdateProfile)
			auth.POST("/change-password", authRequired, d.authHandler.ChangePassword)
			auth.POST("/email-verification", authRequired, d.authHandler.RequestEmailChange)
			auth.PUT("/email-verification", authRequired, d.authHandler.ConfirmEmailChange)
		}

		// Resume routes (protected)
		resumes := v1.Group("/resumes")
		resumes.Use(authRequired)
		{
			resumes.POST("", d.resumeHandler.Create)
			resumes.GET("", d.resumeHandler.List)
			resumes.GET("/:id", d.resumeHandler.Get)
			resumes.PUT("/:id", d.resumeHandler.Update)
			resumes.DELETE("/:id", d.resumeHandler.Delete)
			resumes.POST("/:id/enhance", d.resumeHandler.Enhance)
		}

		// Job board (public reads, moderated writes)
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", d.jobHandler.List)
			jobs.GET("/:id", d.jobHandler.Get)
			jobs.POST("", authRequired, middleware.RequireModerator(), d.jobHandler.Create)
			jobs.PUT("/:id", authRequired, middleware.RequireModerator(), d.jobHandler.Update)
			jobs.DELETE("/:id", authRequired, middleware.RequireModerator(), d.jobHandler.Delete)
		}

		// Plans and orders
		v1.GET("/plans", d.subscriptionHandler.ListPlans)
		v1.GET("/coupons/:code", authRequired, d.subscriptionHandler.ValidateCoupon)
		orders := v1.Group("/orders")
		orders.Use(authRequired)
		{
			orders.POST("", d.subscriptionHandler.CreateOrder)
			orders.GET("", d.subscriptionHandler.ListOrders)
		}

		// Assistant chat (protected)
		chat := v1.Group("/chat/threads")
		chat.Use(authRequired)
		{
			chat.POST("", d.chatHandler.CreateThread)
			chat.GET("", d.chatHandler.ListThreads)
			chat.GET("/:id", d.chatHandler.GetMessages)
			chat.POST("/:id/messages", d.chatHandler.PostMessage)
			chat.DELETE("/:id", d.chatHandler.DeleteThread)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(authRequired, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/stats", d.adminHandler.Stats)

			admin.GET("/orders", d.subscriptionHandler.ListPendingOrders)
			admin.POST("/orders/:id/approve", d.subscriptionHandler.ApproveOrder)
			admin.POST("/orders/:id/reject", d.subscriptionHandler.RejectOrder)

			admin.GET("/coupons", d.subscriptionHandler.ListCoupons)
			admin.POST("/coupons", d.subscriptionHandler.CreateCoupon)
			admin.DELETE("/coupons/:id", d.subscriptionHandler.DeactivateCoupon)
		}
	}
}
