package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// Храним не более 20 последних поисков на пользователя
const searchHistoryLimit = 20

type SearchHistoryController struct{}

func NewSearchHistoryController() *SearchHistoryController {
	return &SearchHistoryController{}
}

type SaveSearchRequest struct {
	Query   string         `json:"query"`
	Filters map[string]any `json:"filters"`
}

// POST /user/search-history
func (sc *SearchHistoryController) Save(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req SaveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if req.Query == "" && len(req.Filters) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Пустой поисковый запрос"})
		return
	}

	filters := datatypes.JSON([]byte("{}"))
	if len(req.Filters) > 0 {
		raw, err := json.Marshal(req.Filters)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Некорректные фильтры"})
			return
		}
		filters = datatypes.JSON(raw)
	}

	db := utils.GetDB()
	entry := models.HotelSearchHistory{
		UserID:  uint(userID),
		Query:   req.Query,
		Filters: filters,
	}
	if err := db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения истории"})
		return
	}

	// Подрезаем хвост истории за лимитом: оставляем свежие записи,
	// остальные удаляем (OFFSET без LIMIT SQLite не понимает)
	var keep []uint
	if err := db.Model(&models.HotelSearchHistory{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(searchHistoryLimit).
		Pluck("id", &keep).Error; err != nil {
		utils.LogError(err, "search history trim")
	} else if len(keep) == searchHistoryLimit {
		if err := db.Unscoped().
			Where("user_id = ? AND id NOT IN ?", userID, keep).
			Delete(&models.HotelSearchHistory{}).Error; err != nil {
			utils.LogError(err, "search history trim")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": entry, "success": true, "error": nil})
}

// GET /user/search-history
func (sc *SearchHistoryController) List(c *gin.Context) {
	userID := c.GetInt("user_id")
	db := utils.GetDB()

	history := []models.HotelSearchHistory{}
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(searchHistoryLimit).
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения истории"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": history, "success": true, "error": nil})
}
