package db_models

import "github.com/lib/pq"

// Product is a catalog record. SkinTypes holds the display labels the quiz
// produces ("Piel Mixta", ...) so recommendation queries filter directly on
// the classified label.
type Product struct {
	BaseModel
	Name      string
	Brand     string
	Price     float64
	Images    pq.StringArray `gorm:"type:text[]"`
	SkinTypes pq.StringArray `gorm:"type:text[];index"`
	Active    bool           `gorm:"default:true"`
}
