package app

import (
	"strings"
	"time"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/utils"
)

type Config struct {
	JWTSecretKey     string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	AllowOrigins     []string
	AlertWindowDays  int
	AlertConcurrency int
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	return Config{
		JWTSecretKey:     jwtSecretKey,
		AccessTokenTTL:   time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:  time.Duration(refreshTokenTTLSeconds) * time.Second,
		AllowOrigins:     strings.Split(origins, ","),
		AlertWindowDays:  utils.GetEnvAsInt("ALERT_WINDOW_DAYS", 7, log),
		AlertConcurrency: utils.GetEnvAsInt("ALERT_CONCURRENCY", 4, log),
	}
}
