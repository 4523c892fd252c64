// Command promote flips the admin flag for an existing account. Admin
// access is only granted through this out-of-band path; the API itself
// has no endpoint for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"solsite/auth"
	"solsite/db"
)

func main() {
	email := flag.String("email", "", "email of the account to change")
	revoke := flag.Bool("revoke", false, "revoke admin access instead of granting it")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	const updateSQL = `UPDATE users SET is_admin = $1, updated_at = now() WHERE email = $2`

	tag, err := pool.Exec(ctx, updateSQL, !*revoke, auth.NormalizeEmail(*email))
	if err != nil {
		log.Fatalf("update admin flag: %v", err)
	}
	if tag.RowsAffected() == 0 {
		log.Fatalf("no account with email %q", *email)
	}

	if *revoke {
		fmt.Printf("revoked admin access for %s\n", *email)
	} else {
		fmt.Printf("granted admin access to %s\n", *email)
	}
}
