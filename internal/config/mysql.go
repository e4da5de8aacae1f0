package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared gorm handle used by the database adapters.
var DB *gorm.DB
var err error

// InitDB opens the MySQL connection.
func InitDB() {
	dsn := os.Getenv("DB_DSN")
	// TranslateError maps driver duplicate-key and FK errors onto
	// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}
