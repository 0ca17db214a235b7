package main

import (
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/auth"
)

func main() {
	email := flag.String("email", "", "operator email")
	password := flag.String("password", "", "operator password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: createadmin -email ... -password ...")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	u := auth.User{
		ID:           uuid.NewString(),
		Email:        *email,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("Failed to create operator: %v", err)
	}
	log.Printf("Operator %s created.", *email)
}
