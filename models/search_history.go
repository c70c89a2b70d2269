package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HotelSearchHistory - история поиска отелей
type HotelSearchHistory struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null;index"`

	// Данные поиска (JSON): фильтры каталога в том виде, как их прислал фронтенд
	Query   string         `json:"query" gorm:"type:varchar(255)"`
	Filters datatypes.JSON `json:"filters" gorm:"type:jsonb;not null"`

	// Связь с пользователем
	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
