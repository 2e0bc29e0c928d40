package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"eventagency/internal/database"
	"eventagency/internal/domain"
	"eventagency/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "agency.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM booking_sequences")
	db.Exec("DELETE FROM contact_messages")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM cars")
	db.Exec("DELETE FROM tours")
	db.Exec("DELETE FROM partners")
	db.Exec("DELETE FROM staff")
	db.Exec("DELETE FROM admin_users")

	ctx := context.Background()

	// ================== ADMIN ==================
	log.Println("Creating admin...")
	userRepo := repository.NewUserRepository(db)
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.AdminUser{
		Email:        "admin@agency.local",
		PasswordHash: string(hash),
		Name:         "Administrator",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("admin create failed:", err)
	}
	log.Println("Admin created: admin@agency.local / admin123")

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	customerRepo := repository.NewCustomerRepository(db)
	customers := make([]domain.Customer, 0, 4)
	names := []string{"Aigerim Seit", "Daniyar Omar", "Laura Kim", "Marat Bek"}
	for i, name := range names {
		c := domain.Customer{
			Name:  name,
			Email: fmt.Sprintf("customer%d@mail.test", i+1),
			Phone: fmt.Sprintf("+7 701 000 10%02d", i+1),
		}
		if err := customerRepo.Create(ctx, &c); err != nil {
			log.Fatal("customer create failed:", err)
		}
		customers = append(customers, c)
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")
	eventRepo := repository.NewEventRepository(db)
	events := []domain.Event{
		{
			Title:       "City Jazz Night",
			Description: "Open-air jazz evening with local bands",
			Category:    "concert",
			Location:    "Central Park Stage",
			Date:        daysFromNow(14),
			Price:       7500,
			Capacity:    300,
			Featured:    true,
			Active:      true,
		},
		{
			Title:       "Corporate Gala Dinner",
			Description: "Full-service gala packages for companies",
			Category:    "corporate",
			Location:    "Grand Hall",
			Date:        daysFromNow(30),
			Price:       25000,
			Capacity:    150,
			Active:      true,
		},
		{
			Title:       "Wedding Showcase",
			Description: "Meet our decorators, hosts and caterers",
			Category:    "wedding",
			Location:    "Agency Showroom",
			Date:        daysFromNow(7),
			Price:       0,
			Capacity:    80,
			Featured:    true,
			Active:      true,
		},
	}
	for i := range events {
		if err := eventRepo.Create(ctx, &events[i]); err != nil {
			log.Fatal("event create failed:", err)
		}
	}

	// ================== CARS ==================
	log.Println("Creating cars...")
	carRepo := repository.NewCarRepository(db)
	cars := []domain.Car{
		{
			Name:         "S-Class W223",
			Brand:        "Mercedes-Benz",
			Category:     "luxury",
			Seats:        4,
			PricePerDay:  45000,
			Transmission: "automatic",
			FuelType:     "petrol",
			Features:     []string{"leather", "panoramic roof", "chauffeur available"},
			Available:    true,
		},
		{
			Name:         "Sprinter VIP",
			Brand:        "Mercedes-Benz",
			Category:     "van",
			Seats:        16,
			PricePerDay:  60000,
			Transmission: "automatic",
			FuelType:     "diesel",
			Features:     []string{"wifi", "minibar", "reclining seats"},
			Available:    true,
		},
		{
			Name:         "Camry 70",
			Brand:        "Toyota",
			Category:     "business",
			Seats:        4,
			PricePerDay:  20000,
			Transmission: "automatic",
			FuelType:     "petrol",
			Features:     []string{"climate control"},
			Available:    true,
		},
	}
	for i := range cars {
		if err := carRepo.Create(ctx, &cars[i]); err != nil {
			log.Fatal("car create failed:", err)
		}
	}

	// ================== TOURS ==================
	log.Println("Creating tours...")
	tourRepo := repository.NewTourRepository(db)
	tours := []domain.Tour{
		{
			Name:         "Charyn Canyon Day Trip",
			Region:       "Almaty Region",
			Description:  "Guided day trip with lunch included",
			DurationDays: 1,
			Price:        18000,
			MaxGroupSize: 15,
			Activities:   []string{"hiking", "photo stops", "lunch"},
			Active:       true,
		},
		{
			Name:         "Kolsai Lakes Weekend",
			Region:       "Almaty Region",
			Description:  "Two days at the mountain lakes, guesthouse stay",
			DurationDays: 2,
			Price:        55000,
			MaxGroupSize: 10,
			Activities:   []string{"hiking", "horse riding", "boating"},
			Active:       true,
		},
	}
	for i := range tours {
		if err := tourRepo.Create(ctx, &tours[i]); err != nil {
			log.Fatal("tour create failed:", err)
		}
	}

	// ================== PARTNERS & STAFF ==================
	log.Println("Creating partners and staff...")
	partnerRepo := repository.NewPartnerRepository(db)
	partners := []domain.Partner{
		{Name: "Grand Hall", Category: "venue", WebsiteURL: "https://grandhall.example"},
		{Name: "Fresh Catering", Category: "catering", WebsiteURL: "https://freshcatering.example"},
		{Name: "LightPro Rental", Category: "equipment"},
	}
	for i := range partners {
		if err := partnerRepo.Create(ctx, &partners[i]); err != nil {
			log.Fatal("partner create failed:", err)
		}
	}

	staffRepo := repository.NewStaffRepository(db)
	staff := []domain.Staff{
		{Name: "Alma Nurlan", Role: "Event Director", Email: "alma@agency.local", DisplayOrder: 1},
		{Name: "Timur Akhmet", Role: "Fleet Manager", Email: "timur@agency.local", DisplayOrder: 2},
		{Name: "Saule Dos", Role: "Tour Coordinator", Email: "saule@agency.local", DisplayOrder: 3},
	}
	for i := range staff {
		if err := staffRepo.Create(ctx, &staff[i]); err != nil {
			log.Fatal("staff create failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	// Created through the repository so each one gets a real booking number.
	log.Println("Creating bookings...")
	bookingRepo := repository.NewBookingRepository(db)
	bookings := []domain.Booking{
		{
			CustomerID:    customers[0].ID,
			ServiceType:   domain.ServiceEvent,
			ServiceID:     events[0].ID,
			EventDate:     events[0].Date,
			Guests:        2,
			TotalPrice:    15000,
			Status:        domain.BookingConfirmed,
			PaymentStatus: domain.PaymentPaid,
		},
		{
			CustomerID:    customers[1].ID,
			ServiceType:   domain.ServiceCar,
			ServiceID:     cars[0].ID,
			StartDate:     daysFromNow(3),
			EndDate:       daysFromNow(5),
			Guests:        1,
			TotalPrice:    90000,
			Status:        domain.BookingPending,
			PaymentStatus: domain.PaymentUnpaid,
		},
		{
			CustomerID:    customers[2].ID,
			ServiceType:   domain.ServiceTour,
			ServiceID:     tours[1].ID,
			StartDate:     daysFromNow(10),
			EndDate:       daysFromNow(12),
			Guests:        4,
			TotalPrice:    220000,
			Status:        domain.BookingConfirmed,
			PaymentStatus: domain.PaymentUnpaid,
			Notes:         "Vegetarian lunch for two guests",
		},
	}
	for i := range bookings {
		if err := bookingRepo.Create(ctx, &bookings[i]); err != nil {
			log.Fatal("booking create failed:", err)
		}
		log.Println("Booking created:", bookings[i].BookingNumber)
	}

	// ================== CONTACT MESSAGES ==================
	log.Println("Creating contact messages...")
	contactRepo := repository.NewContactRepository(db)
	messages := []domain.ContactMessage{
		{
			Name:    "Olga P.",
			Email:   "olga@mail.test",
			Subject: "Wedding in September",
			Message: "Do you have availability for a 120-guest wedding?",
			Status:  domain.ContactNew,
		},
		{
			Name:    "Erbol S.",
			Email:   "erbol@mail.test",
			Message: "Need two vans for an airport transfer next Friday.",
			Status:  domain.ContactRead,
		},
	}
	for i := range messages {
		if err := contactRepo.Create(ctx, &messages[i]); err != nil {
			log.Fatal("contact message create failed:", err)
		}
	}

	log.Println("Seed complete.")
}

func daysFromNow(n int) *time.Time {
	t := time.Now().AddDate(0, 0, n).Truncate(24 * time.Hour)
	return &t
}
