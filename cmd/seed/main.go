// seed generates a SQL script with demo data for local development: an admin
// account, two business owners and their listings with operating hours.
//
// Usage: go run ./cmd/seed [admin-password]
// Writes: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/isokohq/isoko-api/pkg/slug"
)

const outPath = "internal/infrastructure/postgres/migrations/002_seed_demo.sql"

type demoBusiness struct {
	ownerEmail  string
	name        string
	description string
	category    string
	city        string
	phone       string
}

var demoBusinesses = []demoBusiness{
	{
		ownerEmail:  "marie@isoko.rw",
		name:        "Kigali Construction Ltd",
		description: "Residential and commercial construction across Kigali.",
		category:    "construction",
		city:        "Kigali",
		phone:       "+250788123456",
	},
	{
		ownerEmail:  "marie@isoko.rw",
		name:        "Nyamirambo Bakery",
		description: "Fresh bread and pastries every morning.",
		category:    "food",
		city:        "Kigali",
		phone:       "+250788654321",
	},
	{
		ownerEmail:  "eric@isoko.rw",
		name:        "Musanze Hardware",
		description: "Tools and building materials in the Northern Province.",
		category:    "retail",
		city:        "Musanze",
		phone:       "+250789111222",
	},
}

func main() {
	adminPassword := "isoko-admin-dev"
	if len(os.Args) > 1 {
		adminPassword = os.Args[1]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}
	ownerHash, err := bcrypt.GenerateFromPassword([]byte("isoko-owner-dev"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Demo data for local development. Generated by cmd/seed; do not edit.\n\n")

	adminID := uuid.NewString()
	fmt.Fprintf(&b, "INSERT INTO users (id, email, password_hash, name, role) VALUES\n")
	fmt.Fprintf(&b, "    ('%s', 'admin@isoko.rw', '%s', 'Platform Admin', 'admin'),\n", adminID, hash)

	ownerIDs := map[string]string{}
	owners := []struct{ email, name string }{
		{"marie@isoko.rw", "Marie Uwase"},
		{"eric@isoko.rw", "Eric Habimana"},
	}
	for i, o := range owners {
		id := uuid.NewString()
		ownerIDs[o.email] = id
		sep := ","
		if i == len(owners)-1 {
			sep = ";"
		}
		fmt.Fprintf(&b, "    ('%s', '%s', '%s', '%s', 'owner')%s\n", id, o.email, ownerHash, o.name, sep)
	}
	b.WriteString("\n")

	for _, d := range demoBusinesses {
		bizID := uuid.NewString()
		fmt.Fprintf(&b,
			"INSERT INTO businesses (id, owner_id, name, slug, description, category, city, phone)\n"+
				"VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s');\n",
			bizID, ownerIDs[d.ownerEmail], escape(d.name), slug.Make(d.name),
			escape(d.description), d.category, d.city, d.phone)

		// Monday-Saturday 08:00-18:00 with a lunch break, closed Sundays.
		for day := 0; day < 7; day++ {
			if day == 0 {
				fmt.Fprintf(&b,
					"INSERT INTO operating_hours (id, business_id, day_of_week, is_open) VALUES ('%s', '%s', %d, false);\n",
					uuid.NewString(), bizID, day)
				continue
			}
			fmt.Fprintf(&b,
				"INSERT INTO operating_hours (id, business_id, day_of_week, is_open, open_time, close_time, break_start, break_end)\n"+
					"VALUES ('%s', '%s', %d, true, '08:00', '18:00', '12:00', '13:00');\n",
				uuid.NewString(), bizID, day)
		}
		b.WriteString("\n")
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (admin login: admin@isoko.rw / %s)\n", outPath, adminPassword)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
