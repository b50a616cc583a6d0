package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	"account_backend/internal/config"
	usershandler "account_backend/internal/feature/users/transport/handler"
	usersusecase "account_backend/internal/feature/users/usecase"
	infradb "account_backend/internal/platform/db"
	jwtmw "account_backend/internal/platform/jwt"
	infraredis "account_backend/internal/platform/redis"
)

func main() {
	// 設定読み込み（JWT_SECRETやDB接続情報が無ければここで即終了）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis（任意。接続できなければキャッシュなしで稼働）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, db)

	// Token service
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo, jwtGen, cfg.TokenTTL)

	// Handler
	userH := usershandler.NewUserHandler(userUC)

	// ルータ生成
	router := router.NewRouter(userH, cfg.JWTSecret)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
