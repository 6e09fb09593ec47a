package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type skillItem struct {
	Name     string
	Category string
}

var defaultSkills = []skillItem{
	{Name: "Go", Category: "Programming Language"},
	{Name: "JavaScript", Category: "Programming Language"},
	{Name: "TypeScript", Category: "Programming Language"},
	{Name: "PostgreSQL", Category: "Database"},
	{Name: "Redis", Category: "Database"},
	{Name: "Docker", Category: "DevOps"},
	{Name: "Kubernetes", Category: "DevOps"},
	{Name: "Customer Service", Category: "Service"},
	{Name: "Forklift Operation", Category: "Logistics"},
	{Name: "Inventory Control", Category: "Logistics"},
	{Name: "Accounting", Category: "Administration"},
	{Name: "Microsoft Excel", Category: "Office"},
	{Name: "Sign Language", Category: "Communication"},
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range defaultSkills {
			_, err := tx.Exec(ctx,
				`INSERT INTO skills (id, name, category) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
				uuid.New(), it.Name, it.Category,
			)
			if err != nil {
				return fmt.Errorf("skills %s: %w", it.Name, err)
			}
		}
		return nil
	})
}
