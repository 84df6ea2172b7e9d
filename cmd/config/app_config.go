package config

import (
	"os"
	"time"

	"TasteTrail-Backend/internal/api/handlers"
	"TasteTrail-Backend/internal/api/routes"
	"TasteTrail-Backend/internal/middleware"
	"TasteTrail-Backend/internal/utils"
	"TasteTrail-Backend/internal/utils/storage"
	"TasteTrail-Backend/pkg/aggregate"
	"TasteTrail-Backend/pkg/delivery"
	"TasteTrail-Backend/pkg/dish"
	"TasteTrail-Backend/pkg/dualwrite"
	"TasteTrail-Backend/pkg/jwt"
	"TasteTrail-Backend/pkg/media"
	"TasteTrail-Backend/pkg/merchant"
	"TasteTrail-Backend/pkg/mq"
	"TasteTrail-Backend/pkg/taste"
	"TasteTrail-Backend/pkg/user"
	"TasteTrail-Backend/pkg/useraction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, mongoDB *mongo.Database, publisher mq.Publisher) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	var secondaryStore dualwrite.SecondaryStore
	if mongoDB != nil {
		secondaryStore = dualwrite.NewMongoStore(mongoDB)
	}
	coordinator := dualwrite.NewCoordinator(secondaryStore)

	// Repository
	userRepository := user.NewUserRepository(db)
	merchantRepository := merchant.NewMerchantRepository(db)
	mediaRepository := media.NewMediaRepository(db)
	dishRepository := dish.NewDishRepository(db)
	tasteRepository := taste.NewTasteRepository(db)
	actionRepository := useraction.NewActionRepository(db)
	aggregateRepository := aggregate.NewAggregateRepository(db)
	deliveryRepository := delivery.NewDeliveryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	aggregateService := aggregate.NewAggregateService(aggregateRepository)
	mediaService := media.NewMediaService(mediaRepository, s3, publisher)
	dishService := dish.NewDishService(dishRepository, merchantRepository, mediaRepository, publisher)
	tasteService := taste.NewTasteService(
		tasteRepository,
		dishRepository,
		mediaRepository,
		aggregateService,
		coordinator,
		publisher,
	)
	actionService := useraction.NewActionService(
		actionRepository,
		dishRepository,
		tasteRepository,
		merchantRepository,
		aggregateService,
		coordinator,
		publisher,
	)
	deliveryService := delivery.NewDeliveryService(deliveryRepository, merchantRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	tasteHandler := handlers.NewTasteHandler(tasteService, validator)
	actionHandler := handlers.NewActionHandler(actionService)
	dishHandler := handlers.NewDishHandler(dishService, validator)
	mediaHandler := handlers.NewMediaHandler(mediaService, validator)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		TasteHandler:    tasteHandler,
		ActionHandler:   actionHandler,
		DishHandler:     dishHandler,
		MediaHandler:    mediaHandler,
		DeliveryHandler: deliveryHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
