package routes

import (
	"TasteTrail-Backend/internal/api/handlers"
	"TasteTrail-Backend/internal/middleware"
	"TasteTrail-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	TasteHandler    handlers.TasteHandler
	ActionHandler   handlers.ActionHandler
	DishHandler     handlers.DishHandler
	MediaHandler    handlers.MediaHandler
	DeliveryHandler handlers.DeliveryHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Tastes()
	c.Dishes()
	c.Merchants()
	c.Media()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Tastes() {
	tastes := c.App.Group("/api/v3/tastes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		tastes.Post("", c.TasteHandler.ProcessTaste)
		tastes.Get("/:id", c.TasteHandler.GetTaste)
		tastes.Post("/:id/like", c.ActionHandler.LikeTaste)
		tastes.Delete("/:id/like", c.ActionHandler.UnlikeTaste)
	}
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v3/dishes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		dishes.Post("", c.DishHandler.CreateDish)
		dishes.Delete("", c.DishHandler.BulkDeleteDishes)
		dishes.Get("/:id", c.DishHandler.GetDishOverview)
		dishes.Put("/:id", c.DishHandler.UpdateDish)
		dishes.Delete("/:id", c.DishHandler.DeleteDish)
		dishes.Post("/:id/restore", c.DishHandler.RestoreDish)
		dishes.Post("/:id/recommend", c.TasteHandler.RecommendDish)
		dishes.Delete("/:id/recommend", c.TasteHandler.UnrecommendDish)
		dishes.Post("/:id/collect", c.ActionHandler.CollectDish)
		dishes.Delete("/:id/collect", c.ActionHandler.UncollectDish)
	}
}

func (c *Config) Merchants() {
	merchants := c.App.Group("/api/v3/merchants", c.Middleware.AuthMiddleware(c.JWTService))
	{
		merchants.Get("/:id/user-items", c.ActionHandler.GetUserMerchantItems)
		merchants.Get("/:id/delivery-links", c.DeliveryHandler.GetMerchantDeliveryLinks)
		merchants.Get("/:id/delivery-links/:platform", c.DeliveryHandler.GetDeliveryLink)
		merchants.Put("/:id/external-ids", c.DeliveryHandler.UpdateMerchantExternalIDs)
	}

	platforms := c.App.Group("/api/v3/delivery-platforms", c.Middleware.AuthMiddleware(c.JWTService))
	{
		platforms.Post("", c.DeliveryHandler.CreatePlatform)
	}
}

func (c *Config) Media() {
	media := c.App.Group("/api/v3/media", c.Middleware.AuthMiddleware(c.JWTService))
	{
		media.Get("/presigned-url", c.MediaHandler.GeneratePresignedURL)
		media.Post("", c.MediaHandler.CreateMedia)
		media.Get("/:id", c.MediaHandler.GetMedia)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
