// Command seed wipes and repopulates the catalog with demo products and a
// demo user account.
package main

import (
	"context"
	"time"

	"github.com/mycart/commerce-api/internal/core/ports"
	"github.com/mycart/commerce-api/internal/core/service"
	"github.com/mycart/commerce-api/internal/infrastructure/config"
	mongodb "github.com/mycart/commerce-api/internal/infrastructure/db/mongo"
	"github.com/mycart/commerce-api/pkg/logger"
)

func price(f float64) *float64 { return &f }

var products = []ports.CreateProductInput{
	{Name: "Macbook Pro", PictureURL: "https://s3.amazonaws.com/acamica-cart-images/product01.png", Price: price(30000), OldPrice: price(35000)},
	{Name: "Auriculares Sony", PictureURL: "https://s3.amazonaws.com/acamica-cart-images/product02.png", Price: price(2500), OldPrice: price(2650)},
	{Name: "Tablet Xperia", PictureURL: "https://s3.amazonaws.com/acamica-cart-images/product04.png", Price: price(5400), OldPrice: price(6000)},
	{Name: "Notebook MSI", PictureURL: "https://s3.amazonaws.com/acamica-cart-images/product06.png", Price: price(8500), OldPrice: price(9000)},
	{Name: "Smartphone Samsung", PictureURL: "https://s3.amazonaws.com/acamica-cart-images/product07.png", Price: price(7500), OldPrice: price(8000)},
	{Name: "Rekam", PictureURL: "https://s3.amazonaws.com/acamica-cart-images/product09.png", Price: price(980), OldPrice: price(990)},
}

var demoUser = ports.RegisterInput{
	Email:     "pepe@example.com",
	Password:  "123123123",
	Firstname: "Pepe",
	Lastname:  "Argento",
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product indexes failed")
	}

	// The seeder goes through the same services as the API so seeded data
	// passes the same validation and hashing.
	catalog := service.NewCatalogService(productRepo, nil, nil, log)
	auth := service.NewAuthService(userRepo, "", 0, log)

	if err := productRepo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("wipe products failed")
	}
	for _, p := range products {
		if _, err := catalog.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("seed product failed")
		}
	}
	log.Info().Int("count", len(products)).Msg("products seeded")

	if err := userRepo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("wipe users failed")
	}
	if _, err := auth.Register(ctx, demoUser); err != nil {
		log.Fatal().Err(err).Msg("seed user failed")
	}
	log.Info().Str("email", demoUser.Email).Msg("demo user seeded")
}
