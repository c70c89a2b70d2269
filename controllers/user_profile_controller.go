package controllers

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct{}

func NewUserProfileController() *UserProfileController {
	return &UserProfileController{}
}

// GET /user/profile
func (pc *UserProfileController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")
	db := utils.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Пользователь не найден"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": userJSON(&user), "success": true, "error": nil})
}

type UpdateProfileRequest struct {
	Name        *string   `json:"name"`
	Phone       *string   `json:"phone"`
	Avatar      *string   `json:"avatar"`
	Activities  *[]string `json:"activities"`
	Budget      *string   `json:"budget"`
	TravelStyle *string   `json:"travel_style"`
}

// POST /user/update-profile
// Частичное обновление: затрагиваются только переданные поля
func (pc *UserProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Пользователь не найден"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Имя не может быть пустым"})
			return
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Activities != nil {
		updates["activities"] = models.MustJSONList(*req.Activities)
	}
	if req.Budget != nil {
		if !models.ValidBudget(*req.Budget) {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Недопустимое значение budget"})
			return
		}
		updates["budget"] = *req.Budget
	}
	if req.TravelStyle != nil {
		if !models.ValidTravelStyle(*req.TravelStyle) {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Недопустимое значение travel_style"})
			return
		}
		updates["travel_style"] = *req.TravelStyle
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка обновления профиля"})
			return
		}
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения профиля"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"result": userJSON(&user), "success": true, "error": nil})
}

// POST /user/logout
// Токен попадает в черный список до истечения своего exp
func (pc *UserProfileController) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == "" || tokenStr == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Токен не передан"})
		return
	}

	rdb := utils.GetRedis()
	if rdb != nil {
		ttl := 72 * time.Hour
		if claims, err := utils.ParseJWT(tokenStr, os.Getenv("JWT_SECRET")); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				if remain := time.Until(time.Unix(int64(exp), 0)); remain > 0 {
					ttl = remain
				}
			}
		}
		_ = rdb.Set(context.Background(), "blacklist:"+tokenStr, "1", ttl).Err()
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"message": "Вы вышли из аккаунта"}, "success": true, "error": nil})
}
