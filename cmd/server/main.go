package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hilo/internal/httpserver"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	st, err := httpserver.OpenStore(getEnv("DB_PATH", "./data/hilo.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open results database")
	}
	defer st.Close()

	srv := httpserver.New(st, getEnv("DEVICE_SECRET", "dev_secret_change_me"))
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting hilo results service")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
