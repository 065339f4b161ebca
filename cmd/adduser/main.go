// adduser seeds an account into the credential store from the command line,
// hashing the password the same way the sign-up screen does.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/Dhayanand17/AQI/internal/components/users"
	"github.com/Dhayanand17/AQI/internal/shared/database"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/adduser/main.go <username> <password> [db-path]")
		os.Exit(1)
	}

	username := os.Args[1]
	password := os.Args[2]
	dbPath := "users.db"
	if len(os.Args) > 3 {
		dbPath = os.Args[3]
	}

	ctx := context.Background()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	created, err := users.NewRepo(db).Register(ctx, username, string(hash))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if !created {
		fmt.Printf("Username %q already exists in %s\n", username, dbPath)
		os.Exit(1)
	}

	fmt.Printf("Created user %q in %s\n", username, dbPath)
}
