package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"hoteldesk/internal/config"
	"hoteldesk/internal/database"
	"hoteldesk/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Admin{},
		&domain.Room{},
		&domain.Offer{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Review{},
		&domain.WhatsappMessage{},
		&domain.RefreshToken{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM whatsapp_messages")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM offers")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM admins")
	db.Exec("DELETE FROM users")

	// ================== ADMINS ==================
	log.Println("Creating admin accounts...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)

	admins := []domain.Admin{
		{Email: "admin@hoteldesk.in", PasswordHash: string(adminHash), Name: "Priya Sharma", Role: domain.RoleAdmin},
		{Email: "frontdesk@hoteldesk.in", PasswordHash: string(managerHash), Name: "Rahul Nair", Role: domain.RoleManager},
	}
	for i := range admins {
		if err := db.Create(&admins[i]).Error; err != nil {
			log.Fatal("seeding admins failed:", err)
		}
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{
			RoomName:    "Garden View",
			RoomType:    "standard",
			RoomNumber:  101,
			TotalRooms:  6,
			Price:       "1800",
			RoomSize:    "220 sq ft",
			Guests:      2,
			Description: "Ground floor room overlooking the courtyard garden.",
			Amenities:   []string{"wifi", "ac", "tv"},
		},
		{
			RoomName:    "Deluxe Suite",
			RoomType:    "deluxe",
			RoomNumber:  201,
			TotalRooms:  3,
			Price:       "2000",
			RoomSize:    "380 sq ft",
			Guests:      3,
			Description: "Corner suite with a balcony and a seating area.",
			Amenities:   []string{"wifi", "ac", "tv", "minibar", "balcony"},
		},
		{
			RoomName:    "Family Room",
			RoomType:    "family",
			RoomNumber:  301,
			TotalRooms:  2,
			Price:       "3200",
			RoomSize:    "520 sq ft",
			Guests:      5,
			Description: "Two connected rooms for families, extra beds on request.",
			Amenities:   []string{"wifi", "ac", "tv", "kettle"},
		},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatal("seeding rooms failed:", err)
		}
	}

	// ================== OFFERS ==================
	log.Println("Creating offers...")
	june1, june30 := "2025-06-01", "2025-06-30"
	offerPrice := "1500"
	offers := []domain.Offer{
		{
			RoomID:     rooms[1].ID,
			Title:      "Summer Special",
			OfferPrice: &offerPrice,
			StartDate:  &june1,
			EndDate:    &june30,
			IsActive:   true,
		},
	}
	for i := range offers {
		if err := db.Create(&offers[i]).Error; err != nil {
			log.Fatal("seeding offers failed:", err)
		}
	}

	// ================== GUESTS ==================
	log.Println("Creating guests...")
	guests := []domain.User{
		{Name: "Asha Verma", Email: "asha@example.com", WhatsappNumber: "+919876543210"},
		{Name: "Ravi Kumar", Email: "ravi@example.com", WhatsappNumber: "+919812345678"},
		{Name: "Meena Pillai", Email: "", WhatsappNumber: "+919745612300"},
	}
	for i := range guests {
		if err := db.Create(&guests[i]).Error; err != nil {
			log.Fatal("seeding guests failed:", err)
		}
	}

	// ================== BOOKINGS + PAYMENTS ==================
	log.Println("Creating bookings...")
	today := time.Now().Truncate(24 * time.Hour)
	stays := []struct {
		guest    domain.User
		room     domain.Room
		offsetIn int
		nights   int
		adults   int
		children int
		status   domain.BookingStatus
		total    float64
		method   domain.PaymentMethod
		payState domain.PaymentStatus
		paid     float64
	}{
		{guests[0], rooms[1], 0, 2, 2, 1, domain.BookingBooked, 4000, domain.PaymentOnline, domain.PaymentPaid, 4000},
		{guests[1], rooms[0], -1, 3, 1, 0, domain.BookingCheckedIn, 5400, domain.PaymentPartial, domain.PaymentPartialPaid, 2000},
		{guests[2], rooms[2], 7, 2, 2, 2, domain.BookingBooked, 6400, domain.PaymentOffline, domain.PaymentPending, 0},
	}
	for _, s := range stays {
		checkIn := today.AddDate(0, 0, s.offsetIn)
		b := domain.Booking{
			BookingID:   uuid.NewString(),
			RoomID:      s.room.ID,
			UserID:      s.guest.ID,
			CheckIn:     checkIn,
			CheckOut:    checkIn.AddDate(0, 0, s.nights),
			Adults:      s.adults,
			Children:    s.children,
			GuestsTotal: s.adults + s.children,
			TotalPrice:  s.total,
			Status:      s.status,
		}
		if err := db.Create(&b).Error; err != nil {
			log.Fatal("seeding bookings failed:", err)
		}

		p := domain.Payment{
			PaymentID:      uuid.NewString(),
			UserID:         s.guest.ID,
			BookingID:      b.BookingID,
			Method:         s.method,
			Status:         s.payState,
			Currency:       "INR",
			BillAmount:     s.total,
			BillPaidAmount: s.paid,
		}
		if err := db.Create(&p).Error; err != nil {
			log.Fatal("seeding payments failed:", err)
		}
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	comment := "Clean rooms and very helpful staff."
	reviews := []domain.Review{
		{UserID: guests[0].ID, RoomID: rooms[1].ID, Rating: 5, Comment: &comment},
		{UserID: guests[1].ID, RoomID: rooms[0].ID, Rating: 4},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			log.Fatal("seeding reviews failed:", err)
		}
	}

	// ================== WHATSAPP ==================
	log.Println("Creating whatsapp messages...")
	messages := []domain.WhatsappMessage{
		{Phone: guests[0].WhatsappNumber, Message: "Hi, do you have a deluxe room for this weekend?", SenderType: domain.SenderUser},
		{Phone: guests[0].WhatsappNumber, Message: "Yes! The Deluxe Suite is available from Friday. Shall I hold it for you?", SenderType: domain.SenderAI},
		{Phone: guests[1].WhatsappNumber, Message: "What time is checkout?", SenderType: domain.SenderUser},
		{Phone: guests[1].WhatsappNumber, Message: "Checkout is at 11 AM. Late checkout is available on request.", SenderType: domain.SenderAI},
	}
	for i := range messages {
		if err := db.Create(&messages[i]).Error; err != nil {
			log.Fatal("seeding whatsapp messages failed:", err)
		}
	}

	log.Println("Seed complete.")
	log.Println("  admin login: admin@hoteldesk.in / admin123")
	log.Println("  manager login: frontdesk@hoteldesk.in / manager123")
}
