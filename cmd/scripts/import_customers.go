package main

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mini-crm/crm-backend/internal/models"
	mongorepo "github.com/mini-crm/crm-backend/internal/repositories/mongodb"
	"github.com/mini-crm/crm-backend/pkg/mongodb"
)

// Imports customers from a CSV file with the header
// name,email,phone,totalSpent,visits,lastVisit,orders,avgOrderValue.
// Rows with a duplicate email are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "mini-crm"
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	file, err := os.Open(csvFilePath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	customerRepo := mongorepo.NewCustomerRepository(client.Database(dbName))
	reader := csv.NewReader(file)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}

	imported := 0
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping malformed row: %v", err)
			skipped++
			continue
		}
		if len(record) < 8 {
			log.Printf("Skipping short row: %v", record)
			skipped++
			continue
		}

		totalSpent, _ := strconv.ParseFloat(record[3], 64)
		visits, _ := strconv.Atoi(record[4])
		orders, _ := strconv.Atoi(record[6])
		avgOrderValue, _ := strconv.ParseFloat(record[7], 64)

		customer := &models.Customer{
			Name:          record[0],
			Email:         record[1],
			Phone:         record[2],
			TotalSpent:    totalSpent,
			Visits:        visits,
			LastVisit:     record[5],
			Orders:        orders,
			AvgOrderValue: avgOrderValue,
		}

		if _, err := customerRepo.FindByEmail(context.Background(), customer.Email); err == nil {
			log.Printf("Skipping duplicate email %s", customer.Email)
			skipped++
			continue
		}

		if err := customerRepo.Create(context.Background(), customer); err != nil {
			log.Printf("Failed to import %s: %v", customer.Email, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Import complete: %d imported, %d skipped", imported, skipped)
}
