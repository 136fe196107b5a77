package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/glowbook/scheduler/config"
	"github.com/glowbook/scheduler/controllers"
	"github.com/glowbook/scheduler/cron"
	"github.com/glowbook/scheduler/db"
	"github.com/glowbook/scheduler/directory"
	"github.com/glowbook/scheduler/redis"
	"github.com/glowbook/scheduler/repository"
	"github.com/glowbook/scheduler/routes"
	"github.com/glowbook/scheduler/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db.Init()
	redis.InitRedis()

	engine := scheduler.NewEngine(
		cfg,
		directory.NewDirectory(db.DB),
		repository.NewAppointmentRepository(db.DB),
		scheduler.NewMemorySlotLocker(),
	)
	controllers.Setup(engine)
	cron.StartCronJobs(engine)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Glowbook scheduler is running")
	})
	routes.SetupAvailabilityRoutes(app)
	routes.SetupAppointmentRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	app.Listen(":" + port)
}
