// Command tokengen prints a signed bearer token for local development.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ValetTech/Valet/internal/auth"
	"github.com/ValetTech/Valet/internal/config"
	"github.com/ValetTech/Valet/internal/db"
	"github.com/sirupsen/logrus"
)

func main() {
	id := flag.String("id", "", "user id to put in the sub claim")
	role := flag.String("role", string(db.RoleDriver), "HOST, DRIVER or EVENT_PLANNER")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *id == "" || !db.UserRole(*role).Valid() {
		flag.Usage()
		os.Exit(2)
	}

	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	token, err := auth.IssueToken(cfg.JWTSecret, *id, db.UserRole(*role), *ttl)
	if err != nil {
		logrus.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
