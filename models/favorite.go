package models

import "gorm.io/gorm"

const (
	FavoriteKindAttraction = "attraction"
	FavoriteKindHotel      = "hotel"
)

// Favorite - избранное пользователя (attraction/hotel) по item_id
type Favorite struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null;index;uniqueIndex:idx_fav_user_kind_item"`
	Kind   string `json:"kind" gorm:"type:varchar(12);not null;uniqueIndex:idx_fav_user_kind_item"` // строго: "attraction" | "hotel"
	ItemID int    `json:"item_id" gorm:"not null;uniqueIndex:idx_fav_user_kind_item"`

	// Связь с пользователем (не обязательно подгружать)
	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
