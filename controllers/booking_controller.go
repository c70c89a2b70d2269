package controllers

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingController struct{}

func NewBookingController() *BookingController {
	return &BookingController{}
}

type CreateBookingRequest struct {
	HotelID         int     `json:"hotel_id"`
	CheckIn         string  `json:"check_in"`  // YYYY-MM-DD
	CheckOut        string  `json:"check_out"` // YYYY-MM-DD
	Guests          int     `json:"guests"`
	RoomType        string  `json:"room_type"`
	MealPlan        string  `json:"meal_plan"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	SpecialRequests *string `json:"special_requests"`
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// bookingUserID определяет владельца брони: public id авторизованного
// пользователя либо "guest"
func bookingUserID(c *gin.Context, db *gorm.DB) string {
	userID, exists := c.Get("user_id")
	if !exists {
		return models.GuestUserID
	}
	id, ok := userID.(int)
	if !ok {
		return models.GuestUserID
	}
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return models.GuestUserID
	}
	return user.PublicID
}

// POST /bookings
// Авторизация не обязательна: брони без токена записываются на "guest"
func (bc *BookingController) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if req.HotelID <= 0 || req.CheckIn == "" || req.CheckOut == "" || req.GuestName == "" || req.GuestEmail == "" || req.GuestPhone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Заполните все обязательные поля"})
		return
	}
	if !strings.Contains(req.GuestEmail, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Некорректный email"})
		return
	}
	if digitCount(req.GuestPhone) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Некорректный номер телефона"})
		return
	}
	if req.Guests < 1 || req.Guests > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Количество гостей должно быть от 1 до 10"})
		return
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Некорректная дата заезда"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Некорректная дата выезда"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Дата выезда должна быть позже даты заезда"})
		return
	}

	mealPlan := req.MealPlan
	if mealPlan == "" {
		mealPlan = models.MealPlanNone
	}
	if !models.ValidMealPlan(mealPlan) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Недопустимое значение meal_plan"})
		return
	}

	db := utils.GetDB()
	var hotel models.Hotel
	if err := db.First(&hotel, req.HotelID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Отель не найден"})
		return
	}

	if ok, msg := utils.CanCreateBooking(utils.GetRedis(), req.GuestEmail); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"result": nil, "success": false, "error": msg})
		return
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	booking := models.Booking{
		HotelID:         hotel.ID,
		HotelName:       hotel.Name,
		UserID:          bookingUserID(c, db),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		RoomType:        req.RoomType,
		MealPlan:        mealPlan,
		TotalPrice:      nights * hotel.Price,
		Status:          models.BookingStatusConfirmed,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       utils.SochiTime(),
	}

	// Номер брони случайный, при коллизии первичного ключа пробуем еще раз
	var createErr error
	for attempt := 0; attempt < 5; attempt++ {
		booking.ID = utils.GenerateBookingID()
		if createErr = db.Create(&booking).Error; createErr == nil {
			break
		}
	}
	if createErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения бронирования"})
		return
	}

	utils.MarkBookingCreated(utils.GetRedis(), req.GuestEmail)

	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		go func(b models.Booking) {
			body := utils.BookingEmailBody(b.ID, b.HotelName, nights, b.TotalPrice)
			if err := utils.SendEmail(b.GuestEmail, "Подтверждение бронирования "+b.ID, body,
				smtpHost, os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
				log.Printf("[BOOKING] email to %s failed: %v", b.GuestEmail, err)
			}
		}(booking)
	}

	c.JSON(http.StatusCreated, gin.H{"result": booking, "success": true, "error": nil})
}

// POST /bookings/:id/cancel
// Отмена не удаляет запись, а переводит статус в cancelled.
// Гостевые брони может отменить кто угодно, пользовательские - только владелец
func (bc *BookingController) Cancel(c *gin.Context) {
	bookingID := c.Param("id")

	db := utils.GetDB()
	var booking models.Booking
	if err := db.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Бронирование не найдено"})
		return
	}

	if booking.UserID != models.GuestUserID {
		if bookingUserID(c, db) != booking.UserID {
			c.JSON(http.StatusForbidden, gin.H{"result": nil, "success": false, "error": "Нет доступа к этому бронированию"})
			return
		}
	}

	if booking.Status != models.BookingStatusCancelled {
		if err := db.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка отмены бронирования"})
			return
		}
		booking.Status = models.BookingStatusCancelled
	}

	c.JSON(http.StatusOK, gin.H{"result": booking, "success": true, "error": nil})
}

// GET /user/bookings
// Отдает брони пользователя, включая отмененные, новые сверху
func (bc *BookingController) List(c *gin.Context) {
	db := utils.GetDB()
	ownerID := bookingUserID(c, db)
	if ownerID == models.GuestUserID {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Требуется авторизация"})
		return
	}

	bookings := []models.Booking{}
	if err := db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения бронирований"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": bookings, "success": true, "error": nil})
}
