package routes

import (
	"paytabs_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/page", paymentHandler.CreatePaymentPage)
		payments.POST("/query", paymentHandler.QueryTransaction)
		payments.POST("/callback", paymentHandler.Callback)
		payments.POST("/:tran_ref/validate", paymentHandler.ValidatePayment)
	}
}
