package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Районы Сочи и типы размещения — строго как на фронтенде
const (
	DistrictAdler           = "adler"
	DistrictCenter          = "center"
	DistrictOlympic         = "olympic"
	DistrictKrasnayaPolyana = "krasnaya-polyana"
	DistrictLazarevsky      = "lazarevsky"
	DistrictKhostinsky      = "khostinsky"

	HotelTypeHotel      = "hotel"
	HotelTypeApartment  = "apartment"
	HotelTypeGuesthouse = "guesthouse"
	HotelTypeResort     = "resort"
)

// Hotel - запись каталога отелей. Каталог статический, пользователями не меняется
type Hotel struct {
	ID               int            `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"not null"`
	Price            int            `json:"price" gorm:"not null"` // за ночь, в рублях
	Rating           float64        `json:"rating"`
	Location         string         `json:"location"`
	District         string         `json:"district" gorm:"type:varchar(20);index"`
	Stars            int            `json:"stars"`
	Type             string         `json:"type" gorm:"type:varchar(12)"`
	Image            string         `json:"image"`
	Description      string         `json:"description"`
	Amenities        datatypes.JSON `json:"amenities" gorm:"type:jsonb"`         // ключи: wifi, pool, spa...
	AmenitiesDisplay datatypes.JSON `json:"amenities_display" gorm:"type:jsonb"` // человекочитаемые названия
	Coords           datatypes.JSON `json:"coords" gorm:"type:jsonb"`            // [lat, lng]
}

func (h *Hotel) AmenityList() []string {
	return decodeStringList(h.Amenities)
}

// HasAmenities проверяет, что отель содержит все запрошенные удобства
func (h *Hotel) HasAmenities(required []string) bool {
	if len(required) == 0 {
		return true
	}
	own := map[string]bool{}
	for _, a := range h.AmenityList() {
		own[a] = true
	}
	for _, r := range required {
		if !own[r] {
			return false
		}
	}
	return true
}

func (h *Hotel) CoordsPair() [2]float64 {
	return decodeCoords(h.Coords)
}

func decodeCoords(raw datatypes.JSON) [2]float64 {
	var c [2]float64
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &c)
	}
	return c
}

// MustJSONCoords сериализует пару координат (для сидера)
func MustJSONCoords(lat, lng float64) datatypes.JSON {
	b, _ := json.Marshal([2]float64{lat, lng})
	return datatypes.JSON(b)
}
