package models

import "gorm.io/datatypes"

// Категории достопримечательностей — как на фронтенде
const (
	CategoryNature  = "nature"
	CategoryBeach   = "beach"
	CategoryCulture = "culture"
	CategoryFood    = "food"
)

// Attraction - запись каталога достопримечательностей
type Attraction struct {
	ID          int            `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Category    string         `json:"category" gorm:"type:varchar(20);index"`
	Rating      float64        `json:"rating"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Tags        datatypes.JSON `json:"tags" gorm:"type:jsonb"`
	Coords      datatypes.JSON `json:"coords" gorm:"type:jsonb"` // [lat, lng]
}

func (a *Attraction) TagList() []string {
	return decodeStringList(a.Tags)
}

func (a *Attraction) CoordsPair() [2]float64 {
	return decodeCoords(a.Coords)
}
