package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zengarden/apiserver/types"
)

// FlowerRepository handles persistence for flowers.
//
// The temperature range is stored as two independent nullable columns and
// reassembled on the way out, so callers only ever see the range form.
type FlowerRepository struct {
	db *sql.DB
}

func NewFlowerRepository(db *sql.DB) *FlowerRepository {
	return &FlowerRepository{db: db}
}

func (r *FlowerRepository) Get(ctx context.Context, id int) (types.Flower, error) {
	const query = `
		SELECT id, owner_id, name, watering_intensity, light_level, temperature_min, temperature_max, comment
		FROM flowers
		WHERE id = ?`
	return scanFlower(r.db.QueryRowContext(ctx, query, id))
}

func (r *FlowerRepository) ListByOwner(ctx context.Context, ownerID int) ([]types.Flower, error) {
	const query = `
		SELECT id, owner_id, name, watering_intensity, light_level, temperature_min, temperature_max, comment
		FROM flowers
		WHERE owner_id = ?
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flowers := make([]types.Flower, 0)
	for rows.Next() {
		flower, err := scanFlower(rows)
		if err != nil {
			return nil, err
		}
		flowers = append(flowers, flower)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return flowers, nil
}

func (r *FlowerRepository) Create(ctx context.Context, flower types.Flower) (types.Flower, error) {
	tempMin, tempMax := types.FlattenRange(flower.TemperatureRange)

	const query = `
		INSERT INTO flowers (owner_id, name, watering_intensity, light_level, temperature_min, temperature_max, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(
		ctx,
		query,
		flower.OwnerID,
		flower.Name,
		flower.WateringIntensity,
		flower.LightLevel,
		tempMin,
		tempMax,
		flower.Comment,
	)
	if err != nil {
		return types.Flower{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return types.Flower{}, err
	}
	flower.ID = int(id)
	// Re-assemble from the stored bounds so an empty range object
	// presents the same way a later read would: entirely absent.
	flower.TemperatureRange = types.UnflattenRange(tempMin, tempMax)
	return flower, nil
}

// Update overwrites every mutable column of the row. The owner is never
// touched.
func (r *FlowerRepository) Update(ctx context.Context, flower types.Flower) (types.Flower, error) {
	tempMin, tempMax := types.FlattenRange(flower.TemperatureRange)

	const query = `
		UPDATE flowers
		SET name = ?,
			watering_intensity = ?,
			light_level = ?,
			temperature_min = ?,
			temperature_max = ?,
			comment = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(
		ctx,
		query,
		flower.Name,
		flower.WateringIntensity,
		flower.LightLevel,
		tempMin,
		tempMax,
		flower.Comment,
		flower.ID,
	)
	if err != nil {
		return types.Flower{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Flower{}, err
	}
	if affected == 0 {
		return types.Flower{}, ErrNotFound
	}
	flower.TemperatureRange = types.UnflattenRange(tempMin, tempMax)
	return flower, nil
}

func (r *FlowerRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM flowers WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlower(row rowScanner) (types.Flower, error) {
	var flower types.Flower
	var watering, light, comment sql.NullString
	var tempMin, tempMax sql.NullFloat64
	err := row.Scan(
		&flower.ID,
		&flower.OwnerID,
		&flower.Name,
		&watering,
		&light,
		&tempMin,
		&tempMax,
		&comment,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Flower{}, ErrNotFound
		}
		return types.Flower{}, err
	}

	if watering.Valid {
		flower.WateringIntensity = &watering.String
	}
	if light.Valid {
		flower.LightLevel = &light.String
	}
	if comment.Valid {
		flower.Comment = &comment.String
	}

	var minPtr, maxPtr *float64
	if tempMin.Valid {
		minPtr = &tempMin.Float64
	}
	if tempMax.Valid {
		maxPtr = &tempMax.Float64
	}
	flower.TemperatureRange = types.UnflattenRange(minPtr, maxPtr)

	return flower, nil
}
