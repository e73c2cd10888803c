// Command createadmin seeds an admin account so the catalog can be curated
// before any admin exists to create others.
package main

import (
	"flag"
	"log"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	role := flag.String("role", "super-admin", "admin or super-admin")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}
	if *role != "admin" && *role != "super-admin" {
		log.Fatal("role must be admin or super-admin")
	}

	config.LoadConfig()
	database.Connect(config.AppConfig.DatabaseURL)

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.Admin{Username: *username, PasswordHash: string(hashed), Role: *role}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("created %s %q (id %d)", admin.Role, admin.Username, admin.ID)
}
