package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/homekeeper/internal/models"
)

// ReplaceCars rewrites the car sequence.
func (s *SQLiteStore) ReplaceCars(ctx context.Context, cars []models.Car) error {
	return s.replace(ctx, []string{"cars"}, func(tx *sql.Tx) error {
		for pos, car := range cars {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO cars (id, position, name, plate, owner, year, color, mileage, next_service, next_inspection, fuel_level)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				car.ID, pos, car.Name, car.Plate, car.Owner, nullInt(car.Year), car.Color, nullInt(car.Mileage),
				nullDate(&car.NextService), nullDate(&car.NextInspection), car.FuelLevel,
			)
			if err != nil {
				return fmt.Errorf("failed to insert car: %w", err)
			}
		}
		return nil
	})
}

// Cars retrieves the cars in order.
func (s *SQLiteStore) Cars(ctx context.Context) ([]models.Car, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, plate, owner, year, color, mileage, next_service, next_inspection, fuel_level
		 FROM cars ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get cars: %w", err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		var (
			car                 models.Car
			year, mileage       sql.NullInt64
			service, inspection sql.NullString
		)
		if err := rows.Scan(&car.ID, &car.Name, &car.Plate, &car.Owner, &year, &car.Color, &mileage,
			&service, &inspection, &car.FuelLevel); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		car.Year = scanInt(year)
		car.Mileage = scanInt(mileage)

		next, err := scanDate(service)
		if err != nil {
			return nil, fmt.Errorf("failed to parse next service of car %s: %w", car.ID, err)
		}
		if next != nil {
			car.NextService = *next
		}
		next, err = scanDate(inspection)
		if err != nil {
			return nil, fmt.Errorf("failed to parse next inspection of car %s: %w", car.ID, err)
		}
		if next != nil {
			car.NextInspection = *next
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cars: %w", err)
	}

	return cars, nil
}
