package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Seed inserts the demo inventory on first boot if the catalog is empty.
// Existing data is never touched.
func Seed(ctx context.Context, c *Catalog, logger *slog.Logger) error {
	people, err := c.People.List(ctx)
	if err != nil {
		return fmt.Errorf("checking people count: %w", err)
	}
	if len(people) > 0 {
		logger.Info("catalog not empty, skipping seed")
		return nil
	}

	person := &Person{
		ID:                   "1234567890",
		LastName:             "blabla",
		FirstName:            "blublu",
		CountryBirthLocation: "Brazil",
		Email:                "email@example.com",
	}
	if err := c.People.Insert(ctx, person); err != nil {
		return fmt.Errorf("seeding person: %w", err)
	}

	television := &Television{
		ID:    "1111111111",
		Brand: "Vony",
		Model: "bleble",
	}
	if err := c.Televisions.Insert(ctx, television); err != nil {
		return fmt.Errorf("seeding television: %w", err)
	}

	logger.Info("seeded demo catalog", "person_id", person.ID, "television_id", television.ID)
	return nil
}
