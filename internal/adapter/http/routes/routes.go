package routes

import (
	"os"

	_ "paytabs_gateway/docs" // This will be auto-generated
	"paytabs_gateway/internal/adapter/http/handlers"
	"paytabs_gateway/internal/infrastructure/logger"
	"paytabs_gateway/internal/infrastructure/payments"
	"paytabs_gateway/internal/usecase"
	"paytabs_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const PORT = "8080"

// Run will start the server
func Run() {
	log, err := logger.NewZapLogger()
	if err != nil {
		log = zap.NewExample()
		log.Warn("falling back to example logger", zap.Error(err))
	}

	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	if err := listen(router, resolvePort(), log); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// listen blocks serving r and flushes the logger when the server stops.
func listen(r *gin.Engine, port string, log *zap.Logger) error {
	err := r.Run(":" + port)
	_ = log.Sync()
	return err
}

func resolvePort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return PORT
}

func getRoutes(log *zap.Logger) {
	var paymentGateway interfaces.IPaymentGateway
	cfg, err := payments.NewPayTabsConfigFromEnv()
	if err != nil {
		log.Warn("PayTabs config invalid", zap.Error(err))
	} else if ptGateway, err := payments.NewPayTabsGateway(cfg, log); err != nil {
		log.Warn("PayTabs gateway not configured", zap.Error(err))
	} else {
		paymentGateway = ptGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway, log)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, log)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

// setMiddlewares installs request logging and a single panic recovery.
func setMiddlewares(r *gin.Engine, log *zap.Logger) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
