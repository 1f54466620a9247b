// Command createtable creates the kv_entries table used by the mysql store
// driver.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tokokue.com/admin/internal/storage"
)

func main() {
	_ = godotenv.Load()

	dsn := flag.String("dsn", os.Getenv("STOREADMIN_STORE_MYSQL_DSN"), "MySQL DSN")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("no DSN: pass -dsn or set STOREADMIN_STORE_MYSQL_DSN")
	}

	db, err := gorm.Open(mysql.Open(*dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := storage.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	log.Println("kv_entries ready")
}
