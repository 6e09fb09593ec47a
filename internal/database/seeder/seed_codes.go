package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type codedItem struct {
	Code string
	Name string
}

// seedCoded inserts (id, name, code) rows keyed by the unique code column.
func seedCoded(ctx context.Context, db database.DB, table string, items []codedItem) error {
	if err := requireColumns(ctx, db, table, "id", "name", "code", "created_at"); err != nil {
		return err
	}

	q := fmt.Sprintf(`INSERT INTO %s (id, name, code) VALUES ($1, $2, $3) ON CONFLICT (code) DO NOTHING`, table)
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			if _, err := tx.Exec(ctx, q, uuid.New(), it.Name, it.Code); err != nil {
				return fmt.Errorf("%s %s: %w", table, it.Code, err)
			}
		}
		return nil
	})
}

type RegionsSeeder struct{}

func (RegionsSeeder) Name() string { return "regions" }

func (RegionsSeeder) Run(ctx context.Context, db database.DB) error {
	return seedCoded(ctx, db, "regions", []codedItem{
		{Code: "AP", Name: "Arica y Parinacota"},
		{Code: "TA", Name: "Tarapacá"},
		{Code: "AN", Name: "Antofagasta"},
		{Code: "AT", Name: "Atacama"},
		{Code: "CO", Name: "Coquimbo"},
		{Code: "VS", Name: "Valparaíso"},
		{Code: "RM", Name: "Metropolitana de Santiago"},
		{Code: "LI", Name: "O'Higgins"},
		{Code: "ML", Name: "Maule"},
		{Code: "NB", Name: "Ñuble"},
		{Code: "BI", Name: "Biobío"},
		{Code: "AR", Name: "La Araucanía"},
		{Code: "LR", Name: "Los Ríos"},
		{Code: "LL", Name: "Los Lagos"},
		{Code: "AI", Name: "Aysén"},
		{Code: "MA", Name: "Magallanes"},
	})
}

type LanguagesSeeder struct{}

func (LanguagesSeeder) Name() string { return "languages" }

func (LanguagesSeeder) Run(ctx context.Context, db database.DB) error {
	return seedCoded(ctx, db, "languages", []codedItem{
		{Code: "es", Name: "Spanish"},
		{Code: "en", Name: "English"},
		{Code: "pt", Name: "Portuguese"},
		{Code: "fr", Name: "French"},
		{Code: "de", Name: "German"},
		{Code: "arn", Name: "Mapudungun"},
		{Code: "lsch", Name: "Chilean Sign Language"},
	})
}
