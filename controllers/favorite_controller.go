package controllers

import (
	"net/http"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct{}

func NewFavoriteController() *FavoriteController {
	return &FavoriteController{}
}

func normalizeKind(kind string) (string, bool) {
	switch kind {
	case models.FavoriteKindAttraction, models.FavoriteKindHotel:
		return kind, true
	}
	return "", false
}

type ToggleFavoriteRequest struct {
	Kind   string `json:"kind"`
	ItemID int    `json:"item_id"`
}

// POST /user/favorites/toggle
// Повторный вызов для той же пары (kind, item_id) снимает отметку
func (fc *FavoriteController) Toggle(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	kind, ok := normalizeKind(req.Kind)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "kind должен быть attraction или hotel"})
		return
	}
	if req.ItemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "item_id обязателен"})
		return
	}

	db := utils.GetDB()
	var fav models.Favorite
	err := db.Where("user_id = ? AND kind = ? AND item_id = ?", userID, kind, req.ItemID).First(&fav).Error
	if err == nil {
		// Жесткое удаление, иначе soft-delete строка заблокирует уникальный индекс
		if err := db.Unscoped().Delete(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления из избранного"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": gin.H{"favorited": false, "kind": kind, "item_id": req.ItemID}, "success": true, "error": nil})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения избранного"})
		return
	}

	fav = models.Favorite{UserID: uint(userID), Kind: kind, ItemID: req.ItemID}
	if err := db.Create(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка добавления в избранное"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"favorited": true, "kind": kind, "item_id": req.ItemID}, "success": true, "error": nil})
}

// GET /user/favorites
// Отдает id избранного по типам плюс развернутые записи каталога
func (fc *FavoriteController) List(c *gin.Context) {
	userID := c.GetInt("user_id")
	db := utils.GetDB()

	var favs []models.Favorite
	if err := db.Where("user_id = ?", userID).Order("created_at").Find(&favs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения избранного"})
		return
	}

	attractionIDs := []int{}
	hotelIDs := []int{}
	for _, f := range favs {
		switch f.Kind {
		case models.FavoriteKindAttraction:
			attractionIDs = append(attractionIDs, f.ItemID)
		case models.FavoriteKindHotel:
			hotelIDs = append(hotelIDs, f.ItemID)
		}
	}

	attractions := []models.Attraction{}
	if len(attractionIDs) > 0 {
		if err := db.Where("id IN ?", attractionIDs).Find(&attractions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения каталога"})
			return
		}
	}
	hotels := []models.Hotel{}
	if len(hotelIDs) > 0 {
		if err := db.Where("id IN ?", hotelIDs).Find(&hotels).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения каталога"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"attraction_ids": attractionIDs,
		"hotel_ids":      hotelIDs,
		"attractions":    attractions,
		"hotels":         hotels,
	}, "success": true, "error": nil})
}

// GET /user/favorites/check/:kind/:id
func (fc *FavoriteController) Check(c *gin.Context) {
	userID := c.GetInt("user_id")

	kind, ok := normalizeKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "kind должен быть attraction или hotel"})
		return
	}
	itemID := utils.ParseIntSafe(c.Param("id"))
	if itemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Некорректный id"})
		return
	}

	db := utils.GetDB()
	var count int64
	db.Model(&models.Favorite{}).
		Where("user_id = ? AND kind = ? AND item_id = ?", userID, kind, itemID).
		Count(&count)

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"favorited": count > 0, "kind": kind, "item_id": itemID}, "success": true, "error": nil})
}
