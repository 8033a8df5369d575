// Development seed script: loads a card definition and a few merchants so
// the recommendation endpoint has data to work against.
package main

import (
	"context"
	"log"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/config"
	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	mongorepo "github.com/RyanNgWH/WhichCard-backend/internal/repositories/mongodb"
	"github.com/RyanNgWH/WhichCard-backend/pkg/mongodb"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	cardRepo := mongorepo.NewCardRepository(db)
	merchantRepo := mongorepo.NewMerchantRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()

	card := &models.Card{
		ID:     uuid.NewString(),
		Type:   "365 credit",
		Issuer: "ocbc",
		Benefits: []models.Benefit{
			{Category: "dining", MCCs: []int{5812, 5814, 5811}, CashbackRate: 6},
			{Category: "grocery", MCCs: []int{5411}, CashbackRate: 3},
			{Category: "transport", MCCs: []int{4111, 4011, 4112, 4121, 4131}, CashbackRate: 3},
			{Category: "petrol", MCCs: []int{5541, 5542}, CashbackRate: 6},
			{Category: "travel", MCCs: []int{4411, 4511}, CashbackRate: 3},
			{Category: "telecommunications", MCCs: []int{}, CashbackRate: 3},
			{Category: "electricity", MCCs: []int{}, CashbackRate: 3},
			{Category: "others", MCCs: []int{}, CashbackRate: 0.3},
		},
		Exclusions: []int{
			4784, 4829, 5047, 5199, 5262, 6010, 6012, 6051, 6211, 6300, 5960,
			6540, 7349, 7523, 7995, 8062, 8211, 8220, 8241, 8244, 8249, 8299,
			8398, 8661, 8651, 8675, 8699, 9211, 9222, 9223, 9311,
		},
		CashbackLimit: 80,
		MinimumSpend:  800,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := cardRepo.Create(ctx, card); err != nil {
		log.Fatalf("Failed to seed card: %v", err)
	}
	log.Printf("Seeded card %s/%s (%s)", card.Issuer, card.Type, card.ID)

	merchants := []*models.Merchant{
		{
			Name:       "popular",
			PrettyName: "Popular Bookstore",
			Address:    "21 Choa Chu Kang Ave 4, #03-13/14, Singapore 689812",
			MCC:        5942,
			Longitude:  103.74516157441636,
			Latitude:   1.3854997604285177,
		},
		{
			Name:       "ikea",
			PrettyName: "IKEA",
			Address:    "50 Jurong Gateway Rd, #02-12/13/14, Singapore 608549",
			MCC:        5712,
			Longitude:  103.74379529629554,
			Latitude:   1.3338875172406766,
		},
		{
			Name:       "ikea_restaurant",
			PrettyName: "IKEA Restaurant",
			Address:    "50 Jurong Gateway Rd, #04-20/21/22, Singapore 608549",
			MCC:        5814,
			Longitude:  103.74366453177412,
			Latitude:   1.3339052098055968,
		},
	}
	for _, m := range merchants {
		m.ID = uuid.NewString()
		m.Status = models.MerchantStatusActive
		m.CreatedAt = now
		m.UpdatedAt = now
		if err := merchantRepo.Create(ctx, m); err != nil {
			log.Fatalf("Failed to seed merchant %s: %v", m.Name, err)
		}
		log.Printf("Seeded merchant %s (%s)", m.Name, m.ID)
	}
}
