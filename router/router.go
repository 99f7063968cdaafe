package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/controllers"
	"github.com/rentster/rentster-app/middlewares"
	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/store"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	s := store.New(db)

	userCtrl := controllers.NewUserController(s)
	planCtrl := controllers.NewPlanController(s)
	companyCtrl := controllers.NewCompanyController(s)
	locationCtrl := controllers.NewLocationController(s)
	itemCtrl := controllers.NewItemController(s)
	bookingCtrl := controllers.NewBookingController(s)
	paymentCtrl := controllers.NewPaymentController(s)
	signatureCtrl := controllers.NewSignatureController(s)
	accessCtrl := controllers.NewAccessController(s)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Catalogue browsing needs no account.
	r.GET("/plans", planCtrl.GetAllPlans)
	r.GET("/items", itemCtrl.GetAllItems)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		auth.POST("/bookings", bookingCtrl.CreateBooking)
		auth.GET("/bookings", bookingCtrl.GetBookings)

		auth.POST("/payments", paymentCtrl.CreatePayment)
		auth.GET("/payments", paymentCtrl.GetPayments)

		auth.POST("/signatures", signatureCtrl.CreateSignature)
		auth.GET("/signatures", signatureCtrl.GetSignatures)

		auth.GET("/dashboard/ws", controllers.DashboardWS)

		// Company management: business owners (admins always pass).
		manage := auth.Group("/")
		manage.Use(middlewares.RequireRoles(models.RoleBusinessOwner))
		{
			manage.POST("/items", itemCtrl.CreateItem)
			manage.GET("/my/items", itemCtrl.GetMyItems)
			manage.PATCH("/items/:item_id/status", itemCtrl.UpdateItemStatus)
			manage.PATCH("/bookings/:booking_id/status", bookingCtrl.UpdateBookingStatus)
			manage.POST("/locations", locationCtrl.CreateLocation)
			manage.GET("/locations", locationCtrl.GetLocations)
			manage.POST("/access-codes", accessCtrl.CreateAccessCode)
			manage.GET("/access-codes", accessCtrl.GetAccessCodes)
		}

		// Platform administration.
		admin := auth.Group("/admin")
		admin.Use(middlewares.RequireRoles(models.RoleAdmin))
		{
			admin.POST("/companies", companyCtrl.CreateCompany)
			admin.GET("/companies", companyCtrl.GetAllCompanies)
			admin.GET("/users", userCtrl.GetAllUsers)
		}
	}

	return r
}
