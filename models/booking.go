package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusPending   = "pending"

	MealPlanNone      = "none"
	MealPlanBreakfast = "breakfast"
	MealPlanHalfBoard = "halfBoard"
	MealPlanFullBoard = "fullBoard"

	// UserID для броней без авторизации
	GuestUserID = "guest"
)

// Booking - бронирование отеля. Записи никогда не удаляются,
// отмена только переводит статус в cancelled
type Booking struct {
	ID              string    `json:"id" gorm:"type:varchar(20);primaryKey"` // формат SOCHI-NNNNNN
	HotelID         int       `json:"hotel_id" gorm:"not null;index"`
	HotelName       string    `json:"hotel_name"`
	UserID          string    `json:"user_id" gorm:"type:varchar(64);index"` // public id пользователя или "guest"
	CheckIn         time.Time `json:"check_in" gorm:"not null"`
	CheckOut        time.Time `json:"check_out" gorm:"not null"`
	Guests          int       `json:"guests"`
	RoomType        string    `json:"room_type"`
	MealPlan        string    `json:"meal_plan" gorm:"type:varchar(12);default:none"`
	TotalPrice      int       `json:"total_price"`
	Status          string    `json:"status" gorm:"type:varchar(12);default:confirmed;index"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ValidMealPlan(p string) bool {
	return p == MealPlanNone || p == MealPlanBreakfast || p == MealPlanHalfBoard || p == MealPlanFullBoard
}
