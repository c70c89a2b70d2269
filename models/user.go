package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Бюджеты и стили путешествия — фиксированные наборы, совпадают с фронтендом
const (
	BudgetEconomy = "economy"
	BudgetMedium  = "medium"
	BudgetPremium = "premium"

	StyleFamily   = "family"
	StyleRomantic = "romantic"
	StyleActive   = "active"
	StyleRelaxing = "relaxing"
)

type User struct {
	gorm.Model
	PublicID string  `json:"id" gorm:"type:varchar(64);uniqueIndex;not null"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password string  `json:"-"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	GoogleID *string `json:"-"`
	Role     string  `json:"-" gorm:"default:user"`

	// Предпочтения пользователя (двигают рекомендации)
	Activities  datatypes.JSON `json:"activities" gorm:"type:jsonb"`
	Budget      string         `json:"budget" gorm:"type:varchar(10);default:medium"`
	TravelStyle string         `json:"travel_style" gorm:"type:varchar(10);default:relaxing"`
}

// ActivityList декодирует JSON-массив активностей; при ошибке возвращает пустой список
func (u *User) ActivityList() []string {
	return decodeStringList(u.Activities)
}

func ValidBudget(b string) bool {
	return b == BudgetEconomy || b == BudgetMedium || b == BudgetPremium
}

func ValidTravelStyle(s string) bool {
	return s == StyleFamily || s == StyleRomantic || s == StyleActive || s == StyleRelaxing
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

// MustJSONList сериализует список строк в datatypes.JSON (для сидера и тестов)
func MustJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
