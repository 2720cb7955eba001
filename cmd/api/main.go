package main

import (
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/api"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/middleware"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	//DB接続（カートスナップショットだけ持つ）
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.CartSnapshot{}); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	//リモートAPIクライアント
	client := api.NewClient(cfg.DeliveryAPIURL, 15*time.Second)
	authAPI := api.NewAuthClient(client)
	userAPI := api.NewUserClient(client)
	addressAPI := api.NewAddressClient(client)
	catalogAPI := api.NewCatalogClient(client)
	orderAPI := api.NewOrderClient(client)
	ratingAPI := api.NewRatingClient(client)

	//ストア
	sessions := infraRepo.NewSessionMemoryStore()
	snapshots := infraRepo.NewCartSnapshotGormStore(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(authAPI, sessions, snapshots, []byte(cfg.JWTSecret))
	cartUC := usecase.NewCartUsecase(sessions, snapshots, catalogAPI, cfg.DeliveryFee)
	checkoutUC := usecase.NewCheckoutUsecase(sessions, snapshots, addressAPI, orderAPI)
	userUC := usecase.NewUserUsecase(userAPI)
	addressUC := usecase.NewAddressUsecase(addressAPI)
	catalogUC := usecase.NewCatalogUsecase(catalogAPI)
	orderUC := usecase.NewOrderUsecase(orderAPI, catalogAPI)
	menuUC := usecase.NewMenuUsecase(catalogAPI)
	ratingUC := usecase.NewRatingUsecase(ratingAPI, orderAPI)

	//Handler生成とルート登録
	e := server.New(cfg)

	handler.NewAuthHandler(authUC).RegisterRoutes(e, cfg, sessions)
	handler.NewCatalogHandler(catalogUC).RegisterRoutes(e)
	handler.NewCartHandler(cartUC).RegisterRoutes(e, cfg, sessions)
	handler.NewCheckoutHandler(checkoutUC).RegisterRoutes(e, cfg, sessions)

	//住所・注文は認証必須グループにまとめる
	authed := e.Group("")
	authed.Use(middleware.AuthJWT(cfg))
	authed.Use(middleware.SessionGuard(sessions))
	handler.NewUserHandler(userUC).RegisterRoutes(authed)
	handler.NewAddressHandler(addressUC).RegisterRoutes(authed)
	handler.NewOrderHandler(orderUC).RegisterRoutes(authed)
	handler.NewMenuHandler(menuUC).RegisterRoutes(authed)
	handler.NewRatingHandler(ratingUC).RegisterRoutes(authed)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		log.Fatal(err)
	}
}
