// Command app is a demo driver for the inventory: it seeds a few stacks,
// saves them, reloads into a fresh inventory, runs upgrades and random
// drops, and prints the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/kestrelgames/armory/internal/config"
	"github.com/kestrelgames/armory/internal/domain"
	"github.com/kestrelgames/armory/internal/inventory"
	"github.com/kestrelgames/armory/internal/logger"
	"github.com/kestrelgames/armory/internal/loot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	ctx := logger.WithSessionID(context.Background(), logger.GenerateSessionID())
	if err := run(ctx, cfg); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	sessionLog := logger.FromContext(ctx)

	inv, err := inventory.NewWithLogger(sessionLog)
	if err != nil {
		return err
	}

	sword := domain.NewItem("BloodHound's Fangs", domain.RarityCommon)
	if err := inv.Add(sword, 3); err != nil {
		return err
	}
	if err := inv.Add(domain.NewItem("Dead's Poker", domain.RarityRare), 2); err != nil {
		return err
	}
	if err := inv.Add(domain.NewItem("Guts Greatsword", domain.RarityEpic), 1); err != nil {
		return err
	}

	if err := inv.Save(cfg.InventoryFile); err != nil {
		return err
	}

	// Reload into a fresh inventory to demonstrate the round trip.
	inv, err = inventory.NewWithLogger(sessionLog)
	if err != nil {
		return err
	}
	if err := inv.Load(cfg.InventoryFile); err != nil {
		return err
	}

	if _, err := inv.Upgrade(sword); err != nil {
		return err
	}

	gen := loot.NewGenerator(cfg.Seed)
	for i := 0; i < cfg.Rolls; i++ {
		drop := gen.Roll()
		if err := inv.Add(drop, 1); err != nil {
			return err
		}
		sessionLog.Info("Random drop", "item", drop.String())
	}

	fmt.Println(inv)
	return nil
}

// reportError distinguishes the two domain error kinds at the top level, the
// only place user-facing messages are formatted.
func reportError(err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientItems):
		fmt.Fprintf(os.Stderr, "not enough items: %v\n", err)
	case errors.Is(err, domain.ErrInvalidItem):
		fmt.Fprintf(os.Stderr, "invalid item: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
