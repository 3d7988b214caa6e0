package db

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
)

// InitDatabase builds the connection pool from the environment and ensures
// the schema exists. The pool is created once at startup, handed to every
// route setup function, and closed with the process.
func InitDatabase() (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")
	databaseName := os.Getenv("DATABASE_NAME")

	config, err := pgxpool.ParseConfig(" host=" + host + " port=" + port + " user=" + user + " password=" + password + " database=" + databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	pool, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Create tables. The EMR child tables beyond lab_imaging and medications
	// are intentionally absent: the aggregate endpoint must tolerate them
	// missing.
	sqlQueries := []string{
		`CREATE TABLE IF NOT EXISTS patients (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL,
			phone VARCHAR(10) NOT NULL,
			dob DATE NOT NULL,
			address TEXT,
			notes TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'Not Attended',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			patient_name VARCHAR(100) NOT NULL,
			doctor_name VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			time TIME NOT NULL,
			reason TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS lab_imaging (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER NOT NULL REFERENCES patients(id),
			test_type VARCHAR(100) NOT NULL,
			test_date DATE NOT NULL,
			result TEXT,
			technician_name VARCHAR(100)
		)`,

		`CREATE TABLE IF NOT EXISTS medications (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER NOT NULL REFERENCES patients(id),
			name VARCHAR(100) NOT NULL,
			dosage VARCHAR(50),
			frequency VARCHAR(50),
			start_date DATE,
			status VARCHAR(20)
		)`,

		`CREATE TABLE IF NOT EXISTS telemedicine_appointments (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER NOT NULL REFERENCES patients(id),
			specialty VARCHAR(100),
			date_time TIMESTAMP NOT NULL,
			status VARCHAR(20),
			notes TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS telemedicine_prescriptions (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER NOT NULL REFERENCES patients(id),
			medication VARCHAR(100) NOT NULL,
			dosage VARCHAR(50),
			duration VARCHAR(50),
			instructions TEXT,
			status VARCHAR(20)
		)`,

		`CREATE TABLE IF NOT EXISTS telemedicine_messages (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER NOT NULL REFERENCES patients(id),
			text TEXT NOT NULL,
			sender VARCHAR(20) NOT NULL,
			timestamp TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(100) NOT NULL,
			reset_token VARCHAR(64),
			reset_expires TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS billing (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER REFERENCES patients(id),
			amount_due NUMERIC(10, 2) NOT NULL,
			status VARCHAR(20) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS beds_status (
			id SERIAL PRIMARY KEY,
			occupied_beds INTEGER NOT NULL,
			total_beds INTEGER NOT NULL
		)`,
	}

	for _, query := range sqlQueries {
		_, err = pool.Exec(context.Background(), query)
		if err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	return pool, nil
}
