package main

import (
	"time"

	"warkop/internal/config"
	"warkop/internal/domain/model"
	"warkop/internal/handler"
	"warkop/internal/infra/db"
	infraRepo "warkop/internal/infra/repository"
	"warkop/internal/logging"
	"warkop/internal/server"
	"warkop/internal/usecase"
	"warkop/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, int, error) {
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
		return "", 0, err
	}

	return signed, int(i.accessTTL.Seconds()), nil
}

func main() {
	// .envはあれば読む（本番は環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.GoEnv)

	// DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Table{},
		&model.Order{},
		&model.OrderItem{},
		&model.CustomerLoyalty{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate failed")
	}

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	tableRepo := infraRepo.NewTableGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	loyaltyRepo := infraRepo.NewLoyaltyGormRepository(gormDB)
	statsRepo := infraRepo.NewStatsGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// usecaseに渡す部品
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}
	authValidator := validator.NewAuthValidator()

	// Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, authValidator, hasher, verifier, issuer, clock, log)
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo, tableRepo, log)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo, usecase.WKOrderNumbers{}, clock, log)
	loyaltyUC := usecase.NewLoyaltyUsecase(loyaltyRepo, log)
	dashboardUC := usecase.NewDashboardUsecase(statsRepo, log)

	// Handler生成
	authH := handler.NewAuthHandler(authUC)
	catalogH := handler.NewCatalogHandler(catalogUC)
	orderH := handler.NewOrderHandler(orderUC)
	loyaltyH := handler.NewLoyaltyHandler(loyaltyUC)
	dashboardH := handler.NewDashboardHandler(dashboardUC)

	// Server起動
	e := server.New(log)
	authH.RegisterRoutes(e)
	catalogH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg)
	loyaltyH.RegisterRoutes(e, cfg)
	dashboardH.RegisterRoutes(e, cfg)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := server.Start(e, addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
