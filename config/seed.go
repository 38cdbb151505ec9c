package config

import (
	"encoding/json"
	"log"

	"hostel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func amenities(items ...string) datatypes.JSON {
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

// SeedDatabase inserts the default admin plus a starter catalog when the
// corresponding tables are empty. Safe to run on every startup.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Admin ----------------
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "Admin123!")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@siu.edu.in",
				PRN:       "ADMIN001",
				Password:  string(hash),
				Role:      models.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded:", admin.Email)
			}
		}
	}

	// ---------------- Hostels ----------------
	var hostelCount int64
	db.Model(&models.Hostel{}).Count(&hostelCount)
	if hostelCount > 0 {
		return
	}

	hostels := []models.Hostel{
		{
			Name:        "Voila Hostel",
			Location:    "North Campus",
			Floors:      5,
			Description: "Modern hostel with excellent facilities for students",
			Address:     "123 North Campus Road",
			City:        "Pune",
			State:       "Maharashtra",
			ZipCode:     "411001",
			Phone:       "020-12345678",
			Email:       "voila@siu.edu.in",
		},
		{
			Name:        "Magnolia Hostel",
			Location:    "South Campus",
			Floors:      4,
			Description: "Comfortable hostel with a peaceful environment",
			Address:     "456 South Campus Avenue",
			City:        "Pune",
			State:       "Maharashtra",
			ZipCode:     "411002",
			Phone:       "020-23456789",
			Email:       "magnolia@siu.edu.in",
		},
		{
			Name:        "Orchid Hostel",
			Location:    "East Campus",
			Floors:      6,
			Description: "Premium hostel with state-of-the-art amenities",
			Address:     "789 East Campus Boulevard",
			City:        "Pune",
			State:       "Maharashtra",
			ZipCode:     "411003",
			Phone:       "020-34567890",
			Email:       "orchid@siu.edu.in",
		},
	}
	if err := db.Create(&hostels).Error; err != nil {
		log.Printf("warning: failed to seed hostels: %v", err)
		return
	}
	log.Println("Hostels seeded")

	// ---------------- Rooms ----------------
	rooms := []models.Room{}
	for _, h := range hostels {
		rooms = append(rooms,
			models.Room{
				HostelID:   h.ID,
				RoomNumber: "101",
				Floor:      1,
				Type:       models.RoomSingle,
				Capacity:   1,
				Price:      1000,
				Amenities:  amenities("WiFi", "Study Table", "Wardrobe"),
			},
			models.Room{
				HostelID:   h.ID,
				RoomNumber: "102",
				Floor:      1,
				Type:       models.RoomDouble,
				Capacity:   2,
				Price:      800,
				Amenities:  amenities("WiFi", "Study Table", "Wardrobe", "Balcony"),
			},
			models.Room{
				HostelID:   h.ID,
				RoomNumber: "201",
				Floor:      2,
				Type:       models.RoomQuad,
				Capacity:   4,
				Price:      600,
				Amenities:  amenities("WiFi", "Shared Bathroom"),
			},
			models.Room{
				HostelID:   h.ID,
				RoomNumber: "301",
				Floor:      3,
				Type:       models.RoomDormitory,
				Capacity:   8,
				Price:      400,
				Amenities:  amenities("WiFi", "Lockers", "Common Room"),
			},
		)
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}
