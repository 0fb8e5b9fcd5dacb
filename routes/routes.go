package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/printmate/storefront-backend/controllers"
	"github.com/printmate/storefront-backend/middleware"
	"github.com/printmate/storefront-backend/services"
)

// Register wires every endpoint of the storefront backend.
func Register(
	r *gin.Engine,
	tokens services.ITokenService,
	auth *controllers.AuthController,
	products *controllers.ProductController,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	authGroup := r.Group("/auth", middleware.RateLimitMiddleware())
	{
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/loginotp", auth.LoginOTP)
		authGroup.POST("/resendotp", auth.ResendOTP)
		authGroup.POST("/signup", auth.Signup)
	}

	r.GET("/products", products.ListProducts)
	r.GET("/products/:id", products.GetProduct)
	r.GET("/products/:id/related", products.RelatedProducts)

	cartGroup := r.Group("/cart", middleware.Identity(tokens))
	{
		cartGroup.GET("", cart.GetCart)
		cartGroup.POST("/items", cart.AddItem)
		cartGroup.DELETE("/items/:product_id", cart.RemoveItem)
		cartGroup.DELETE("", cart.ClearCart)
	}

	checkoutGroup := r.Group("/checkout", middleware.Identity(tokens))
	{
		checkoutGroup.POST("", checkout.Start)
		checkoutGroup.GET("/:id", checkout.Get)
		checkoutGroup.POST("/:id/confirm-cart", checkout.ConfirmCart)
		checkoutGroup.POST("/:id/shipping", checkout.SubmitShipping)
		checkoutGroup.POST("/:id/payment", checkout.SelectPayment)
		checkoutGroup.POST("/:id/place-order", checkout.PlaceOrder)
	}

	orderGroup := r.Group("/orders", middleware.AuthRequired(tokens))
	{
		orderGroup.GET("/:order_number", checkout.GetOrder)
	}
}
