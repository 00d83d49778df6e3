package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"bookmart/configs"
	httpAdapter "bookmart/internal/adapters/input/http"
	"bookmart/internal/adapters/output/gemini"
	"bookmart/internal/adapters/output/memory"
	"bookmart/internal/adapters/output/postgres"
	"bookmart/internal/application"
	"bookmart/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

const defaultSessionTTLMinutes = 30

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters (repositories)
	bookRepo := postgres.NewBookRepository(dbConGorm.Postgres)
	orderRepo := postgres.NewOrderRepository(dbConGorm.Postgres)
	cartRepo := postgres.NewCartRepository(dbConGorm.Postgres)
	userRepo := postgres.NewUserRepository(dbConGorm.Postgres)
	feedbackRepo := postgres.NewFeedbackRepository(dbConGorm.Postgres)

	// Output adapter (external assistant)
	assistantClient, err := gemini.NewClientAdapter(configs.GetViper().Gemini)
	if err != nil {
		logrus.Fatalf("Failed to create assistant client: %v", err)
	}

	// Output adapter (session transcript store)
	ttl := configs.GetViper().Session.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTLMinutes
	}
	historyStore := memory.NewChatHistoryStore(time.Duration(ttl) * time.Minute)

	// Application services (use cases)
	catalogSrv := application.NewCatalogService(bookRepo)
	chatSrv := application.NewChatService(bookRepo, orderRepo, cartRepo, userRepo, historyStore, assistantClient)
	feedbackSrv := application.NewFeedbackService(feedbackRepo)
	adminOrderSrv := application.NewAdminOrderService(orderRepo)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New(catalogSrv, dbConGorm.Postgres)
	chatHdl := httpAdapter.NewChatHandler(chatSrv)
	feedbackHdl := httpAdapter.NewFeedbackHandler(feedbackSrv)
	adminHdl := httpAdapter.NewAdminHandler(adminOrderSrv)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	bookmart := app.Group("/v1/api")
	{
		bookmart.Get("/books", hdl.GetBooks)
		bookmart.Get("/genres", hdl.GetGenres)

		bookmart.Post("/chat", chatHdl.Chat)
		bookmart.Get("/chat/history", chatHdl.GetHistory)
		bookmart.Delete("/chat/history", chatHdl.ClearHistory)

		bookmart.Post("/feedback", feedbackHdl.CreateFeedback)
	}

	admin := app.Group("/v1/api/admin")
	{
		admin.Get("/orders", adminHdl.GetOrders)
		admin.Get("/order-statuses", adminHdl.GetOrderStatuses)
		admin.Put("/orders/status", adminHdl.UpdateOrderStatus)
		admin.Put("/orders/:id/payment", adminHdl.TogglePaymentStatus)

		admin.Get("/feedback", feedbackHdl.ListFeedback)
		admin.Delete("/feedback/:id", feedbackHdl.DeleteFeedback)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
