// Command seed inserts the default menu into the configured database when
// its menu table is empty.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/yeremiapane/seblak-listyaning/config"
	"github.com/yeremiapane/seblak-listyaning/database"
	"github.com/yeremiapane/seblak-listyaning/store"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

func main() {
	list := flag.Bool("list", false, "print the menu after seeding")
	flag.Parse()

	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if !cfg.UsesDatabase() {
		utils.ErrorLogger.Error("DB_DRIVER and DB_DSN must be set; the memory store seeds itself")
		os.Exit(2)
	}

	db, err := database.Open(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	s, err := store.NewGormStore(db)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	n, err := store.Seed(ctx, s, store.DefaultMenuItems())
	if err != nil {
		utils.ErrorLogger.Fatalf("Seeding failed after %d items: %v", n, err)
	}
	if n == 0 {
		utils.InfoLogger.Println("Menu already present, nothing inserted")
	} else {
		utils.InfoLogger.Printf("Inserted %d menu items", n)
	}

	if *list {
		items, err := s.GetAllMenuItems(ctx)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to list menu: %v", err)
		}
		for _, item := range items {
			utils.InfoLogger.Printf("%3d  %-22s %-8s %s", item.ID, item.Name, item.Category, utils.FormatRupiah(item.Price))
		}
	}
}
