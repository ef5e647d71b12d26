package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/kostong/kostong-backend/internal/config"
	"github.com/kostong/kostong-backend/internal/database"
	"github.com/kostong/kostong-backend/internal/handler"
	"github.com/kostong/kostong-backend/internal/middleware"
	"github.com/kostong/kostong-backend/internal/queue"
	"github.com/kostong/kostong-backend/internal/repository"
	"github.com/kostong/kostong-backend/internal/router"
	queue_publisher "github.com/kostong/kostong-backend/internal/service"
	"github.com/kostong/kostong-backend/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns the cache and the rate
	// limiter into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable; response cache and rate limiting disabled")
	}

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	kosts := repository.NewKostRepo(db)
	bookings := repository.NewBookingRepo(db)
	favorits := repository.NewFavoritRepo(db)
	notifs := repository.NewNotifikasiRepo(db)
	riwayat := repository.NewRiwayatRepo(db)

	// Booking events: publisher on the request path, consumer in the
	// background writing notification and history rows.
	publisher := &queue_publisher.Publisher{URL: cfg.AMQPURL}
	consumer := &queue.Consumer{URL: cfg.AMQPURL, Notifs: notifs, Riwayat: riwayat}
	go consumer.Start()

	// Handlers.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	kostH := handler.NewKostHandler(kosts)
	bookingH := handler.NewBookingHandler(bookings, publisher)
	favoritH := handler.NewFavoritHandler(favorits)
	notifH := handler.NewNotifikasiHandler(notifs)
	riwayatH := handler.NewRiwayatHandler(riwayat)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = router.ErrorHandler
	e.Validator = utils.NewEchoValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheMW := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	router.RegisterRoutes(e, kostH, cacheMW)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterUserScoped(e, bookingH, favoritH, notifH, riwayatH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
