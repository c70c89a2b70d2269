package catalog

import (
	"net/http"
	"strconv"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	catalogsvc "github.com/pr-poehali-dev/sochi-tour-guide-app/services/catalog"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GET /catalog/attractions?category=&query=
func (cc *CatalogController) GetAttractions(c *gin.Context) {
	svc := catalogsvc.NewCatalogService(utils.GetDB())
	attractions, err := svc.Attractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения каталога"})
		return
	}

	filtered := catalogsvc.FilterAttractions(attractions, c.Query("category"), c.Query("query"))
	c.JSON(http.StatusOK, gin.H{"result": filtered, "success": true, "error": nil})
}

// hotelFilterFromQuery собирает фильтр из query-параметров.
// Списковые параметры передаются через запятую: stars=4,5&districts=adler,center
func hotelFilterFromQuery(c *gin.Context) catalogsvc.HotelFilter {
	f := catalogsvc.DefaultHotelFilter()

	if v := c.Query("price_min"); v != "" {
		f.PriceMin = utils.ParseIntSafe(v)
	}
	if v := c.Query("price_max"); v != "" {
		f.PriceMax = utils.ParseIntSafe(v)
	}
	if v := c.Query("min_rating"); v != "" {
		f.MinRating = utils.ParseFloatSafe(v)
	}
	f.Amenities = utils.SplitCSVParam(c.Query("amenities"))
	for _, s := range utils.SplitCSVParam(c.Query("stars")) {
		if n, err := strconv.Atoi(s); err == nil {
			f.Stars = append(f.Stars, n)
		}
	}
	f.Districts = utils.SplitCSVParam(c.Query("districts"))
	f.Types = utils.SplitCSVParam(c.Query("types"))
	f.Query = c.Query("query")
	return f
}

// GET /catalog/hotels
func (cc *CatalogController) GetHotels(c *gin.Context) {
	svc := catalogsvc.NewCatalogService(utils.GetDB())
	hotels, err := svc.Hotels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения каталога"})
		return
	}

	filtered := catalogsvc.FilterHotels(hotels, hotelFilterFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"result": filtered, "success": true, "error": nil})
}

// GET /catalog/recommendations
// Токен не обязателен: гость получает каталожную выдачу без скоринга
func (cc *CatalogController) GetRecommendations(c *gin.Context) {
	db := utils.GetDB()
	svc := catalogsvc.NewCatalogService(db)

	var prefs *catalogsvc.Preferences
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(int); ok {
			var user models.User
			if err := db.First(&user, id).Error; err == nil {
				prefs = catalogsvc.PreferencesOf(&user)
			}
		}
	}

	hotels, err := svc.Hotels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения каталога"})
		return
	}
	attractions, err := svc.Attractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения каталога"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"hotels":      catalogsvc.RecommendHotels(hotels, prefs),
		"attractions": catalogsvc.RecommendAttractions(attractions, prefs),
	}, "success": true, "error": nil})
}

// GET /catalog/map-points
func (cc *CatalogController) GetMapPoints(c *gin.Context) {
	svc := catalogsvc.NewCatalogService(utils.GetDB())
	points, err := svc.MapPoints()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка чтения каталога"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": points, "success": true, "error": nil})
}
