package domain

import "time"

const (
	SexMale    = "male"
	SexFemale  = "female"
	SexUnknown = "unknown"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	CarbStatusLow    = "low"
	CarbStatusNormal = "normal"
	CarbStatusHigh   = "high"
)

// UserProfile holds the physiological attributes the estimators consume.
// Every field is optional; estimator defaults apply when a value is
// absent or unrecognized.
type UserProfile struct {
	UserID string `json:"user_id" db:"user_id"`

	HeightCm      *float64 `json:"height_cm,omitempty" db:"height_cm"`
	AgeYears      *int     `json:"age_years,omitempty" db:"age_years"`
	Sex           string   `json:"sex" db:"sex"`
	ActivityLevel string   `json:"activity_level" db:"activity_level"`

	PreFastProteinGrams *float64 `json:"pre_fast_protein_grams,omitempty" db:"pre_fast_protein_grams"`
	BaselineKetosis     *float64 `json:"baseline_ketosis,omitempty" db:"baseline_ketosis"`
	StartsInKetosis     bool     `json:"starts_in_ketosis" db:"starts_in_ketosis"`
	CarbStatus          string   `json:"carb_status" db:"carb_status"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
