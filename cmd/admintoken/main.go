// Command admintoken выпускает токен администратора для календаря салона.
//
//	go run ./cmd/admintoken -subject reception
//
// Секрет и срок действия берутся из config.toml (с учётом .env и SALON_JWT_SECRET).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	subject := flag.String("subject", "admin", "token subject (who is using the calendar)")
	ttl := flag.Duration("ttl", 0, "token lifetime, overrides auth.token_ttl_hours")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lifetime := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := middleware.IssueToken(cfg.Auth.JWTSecret, *subject, lifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
