package types

// TemperatureRange is the preferred temperature band for a flower, in
// degrees Celsius. Either bound may be absent.
type TemperatureRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// Flower represents a single plant-care record owned by a user.
type Flower struct {
	// ID is the unique identifier of the flower record.
	ID int `json:"id" db:"id"`

	// OwnerID is the identifier of the user this record belongs to.
	// It is set at creation time and never reassigned.
	OwnerID int `json:"owner_id" db:"owner_id"`

	// Name is the display name of the flower. It is the only required
	// care attribute.
	Name string `json:"name" db:"name"`

	// WateringIntensity is a free-form watering category (e.g. "daily",
	// "weekly", "when dry").
	WateringIntensity *string `json:"watering_intensity" db:"watering_intensity"`

	// LightLevel is a free-form light category (e.g. "full sun",
	// "partial shade").
	LightLevel *string `json:"light_level" db:"light_level"`

	// TemperatureRange is the optional preferred temperature band.
	// The store keeps the two bounds as independent nullable columns;
	// this field is the assembled presentation of those columns.
	TemperatureRange *TemperatureRange `json:"temperature_range" db:"-"`

	// Comment is optional free-text notes about the flower.
	Comment *string `json:"comment" db:"comment"`
}

// FlattenRange splits an optional temperature range into its two stored
// bounds. A nil range yields two nil bounds.
func FlattenRange(r *TemperatureRange) (min, max *float64) {
	if r == nil {
		return nil, nil
	}
	return r.Min, r.Max
}

// UnflattenRange assembles the stored bounds back into a range. When both
// bounds are absent the range itself is absent, not a pair of nulls.
func UnflattenRange(min, max *float64) *TemperatureRange {
	if min == nil && max == nil {
		return nil
	}
	return &TemperatureRange{Min: min, Max: max}
}
