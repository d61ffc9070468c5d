package db

import (
	"database/sql"
	"log"
)

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS trips (
	id VARCHAR(64) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	location VARCHAR(255) NOT NULL,
	duration VARCHAR(100) NOT NULL DEFAULT '',
	base_price BIGINT NOT NULL DEFAULT 0,
	image VARCHAR(1024) NOT NULL DEFAULT '',
	description TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(20) NOT NULL,
	customer_name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	trip_id VARCHAR(64) NOT NULL,
	trip_snapshot TEXT,
	travelers INT NOT NULL DEFAULT 1,
	travel_date VARCHAR(20) NOT NULL DEFAULT '',
	accommodation VARCHAR(20) NOT NULL DEFAULT 'standard',
	notes TEXT,
	status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
	payment_method VARCHAR(20) NOT NULL DEFAULT 'card',
	total_amount BIGINT NOT NULL DEFAULT 0,
	booked_at DATETIME NOT NULL,
	UNIQUE KEY uniq_reference (reference),
	KEY idx_email (email),
	KEY idx_trip (trip_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	`CREATE TABLE IF NOT EXISTS customer_stats (
	email VARCHAR(255) PRIMARY KEY,
	name VARCHAR(255) NOT NULL DEFAULT '',
	booking_count INT NOT NULL DEFAULT 0,
	total_spent BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// seedTrips is the initial catalog, inserted only when the trips table is empty.
var seedTrips = [][6]any{
	{"mozambique", "Mozambique Paradise", "Mozambique", "7 Days", int64(12500), "Experience pristine beaches, crystal clear waters, and vibrant marine life on this 7-day tropical getaway."},
	{"capetown", "Cape Town Explorer", "South Africa", "5 Days", int64(8900), "Discover the Mother City with Table Mountain views, wine tours, and stunning coastal drives."},
	{"zanzibar", "Zanzibar Island Escape", "Tanzania", "6 Days", int64(10200), "Immerse yourself in the spice islands with historic Stone Town and white sand beaches."},
	{"victoria-falls", "Victoria Falls Adventure", "Zimbabwe/Zambia", "4 Days", int64(9800), "Witness one of the Seven Natural Wonders with thrilling activities and wildlife safaris."},
	{"mauritius", "Mauritius Luxury Retreat", "Mauritius", "8 Days", int64(15600), "Indulge in luxury resorts, turquoise lagoons, and world-class diving experiences."},
	{"kruger", "Kruger Safari Experience", "South Africa", "5 Days", int64(11400), "Encounter the Big Five on guided game drives through Africa's premier wildlife reserve."},
}

// migrations are additive column changes for installs created before the
// column existed. Each runs only when the probe says the column is missing.
var migrations = []struct {
	table, column, alter string
}{
	{"bookings", "payment_method", `ALTER TABLE bookings ADD COLUMN payment_method VARCHAR(20) NOT NULL DEFAULT 'card'`},
	{"bookings", "notes", `ALTER TABLE bookings ADD COLUMN notes TEXT`},
	{"customer_stats", "total_spent", `ALTER TABLE customer_stats ADD COLUMN total_spent BIGINT NOT NULL DEFAULT 0`},
	{"users", "phone", `ALTER TABLE users ADD COLUMN phone VARCHAR(100) NOT NULL DEFAULT ''`},
}

// EnsureSchema creates missing tables, applies column migrations, and seeds
// the trip catalog on first run.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}

	for _, m := range migrations {
		if !HasTable(db, m.table) || HasColumn(db, m.table, m.column) {
			continue
		}
		if _, err := db.Exec(m.alter); err != nil {
			return err
		}
		log.Printf("schema: added %s.%s", m.table, m.column)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM trips`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, t := range seedTrips {
		_, err := db.Exec(`
			INSERT INTO trips (id, name, location, duration, base_price, image, description)
			VALUES (?, ?, ?, ?, ?, '', ?)
		`, t[0], t[1], t[2], t[3], t[4], t[5])
		if err != nil {
			return err
		}
	}
	log.Printf("seeded trip catalog with %d trips", len(seedTrips))
	return nil
}
