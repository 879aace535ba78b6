package main

import (
	"os"
	"sync"
	"time"

	"arcoiris/internal/cart"
	"arcoiris/internal/config"
	"arcoiris/internal/domain/model"
	"arcoiris/internal/gateway/mercadopago"
	"arcoiris/internal/handler"
	"arcoiris/internal/infra/db"
	infraRepo "arcoiris/internal/infra/repository"
	"arcoiris/internal/notify"
	"arcoiris/internal/server"
	"arcoiris/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cartTTL = 7 * 24 * time.Hour

// newCartFactory picks Redis-backed carts when configured; otherwise carts
// live in process memory and die with it.
func newCartFactory(redisAddr string) usecase.StoreFactory {
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		return func(sessionID string) *cart.Store {
			return cart.NewStore(cart.NewRedisPersister(rdb, sessionID, cartTTL))
		}
	}

	var mu sync.Mutex
	sessions := map[string]*cart.MemoryPersister{}
	return func(sessionID string) *cart.Store {
		mu.Lock()
		defer mu.Unlock()
		p, ok := sessions[sessionID]
		if !ok {
			p = cart.NewMemoryPersister()
			sessions[sessionID] = p
		}
		return cart.NewStore(p)
	}
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .env is optional outside dev.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if cfg.GoEnv == "dev" {
		log = log.Level(zerolog.DebugLevel)
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Variant{},
		&model.Customer{},
		&model.Address{},
		&model.Partner{},
		&model.Order{},
		&model.OrderItem{},
		&model.InventoryAdjustment{},
		&model.User{},
		&model.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	partnerRepo := infraRepo.NewPartnerGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	mpClient := mercadopago.NewClient(cfg.MPAccessToken)

	var publisher notify.OrderEventPublisher = notify.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
	}

	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	notificationURL := cfg.APIBaseURL + "/webhooks/mercadopago"

	catalogUC := usecase.NewCatalogUsecase(categoryRepo, productRepo)
	cartUC := usecase.NewCartUsecase(newCartFactory(cfg.RedisAddr), variantRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, orderRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo)
	paymentUC := usecase.NewPaymentUsecase(orderRepo, orderItemRepo, customerRepo, mpClient, cfg.FEURL, notificationURL, log)
	webhookUC := usecase.NewWebhookUsecase(orderRepo, mpClient, publisher, log)
	authUC := usecase.NewAuthUsecase(userRepo, issuer)
	adminCatUC := usecase.NewAdminCategoryUsecase(categoryRepo, auditRepo)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, variantRepo, categoryRepo, inventoryRepo, auditRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, auditRepo)
	adminPartnerUC := usecase.NewAdminPartnerUsecase(partnerRepo)

	e := server.New(cfg, log, server.Handlers{
		Catalog:      handler.NewCatalogHandler(catalogUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		Order:        handler.NewOrderHandler(orderUC),
		Payment:      handler.NewPaymentHandler(paymentUC),
		Webhook:      handler.NewWebhookHandler(webhookUC, log),
		Auth:         handler.NewAuthHandler(authUC),
		AdminCat:     handler.NewAdminCategoryHandler(adminCatUC),
		AdminProduct: handler.NewAdminProductHandler(adminProductUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
		AdminPartner: handler.NewAdminPartnerHandler(adminPartnerUC),
	})

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
