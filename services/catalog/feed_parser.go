package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/utils"

	"github.com/PuerkitoBio/goquery"
)

// FeedParser разбирает партнерскую HTML-витрину отелей (PARTNER_FEED_URL)
type FeedParser struct{}

func NewFeedParser() *FeedParser {
	return &FeedParser{}
}

func (fp *FeedParser) ParseURL(url string) ([]*models.Hotel, error) {
	client := &http.Client{}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения страницы: %v", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга HTML: %v", err)
	}

	return fp.ParseHotelsWithGoquery(doc), nil
}

func (fp *FeedParser) ParseHotelsWithGoquery(doc *goquery.Document) []*models.Hotel {
	var hotels []*models.Hotel

	doc.Find(".hotel-card").Each(func(i int, s *goquery.Selection) {
		hotel := &models.Hotel{}

		// Название отеля
		hotel.Name = strings.TrimSpace(s.Find(".hotel-card__name").First().Text())

		// Цена за ночь - "12 500 ₽" -> 12500
		priceText := s.Find(".hotel-card__price").First().Text()
		hotel.Price = utils.ExtractPriceRub(priceText)

		// Рейтинг
		ratingText := s.Find(".hotel-card__rating").First().Text()
		hotel.Rating = utils.ExtractFirstFloat(ratingText)

		// Район и тип из data-атрибутов карточки
		if d, ok := s.Attr("data-district"); ok {
			hotel.District = strings.TrimSpace(d)
		}
		if t, ok := s.Attr("data-type"); ok {
			hotel.Type = strings.TrimSpace(t)
		}

		// Звёздность
		starsText := s.Find(".hotel-card__stars").First().Text()
		hotel.Stars = utils.ParseIntSafe(strings.TrimSpace(strings.TrimSuffix(starsText, "★")))

		hotel.Location = strings.TrimSpace(s.Find(".hotel-card__location").First().Text())
		hotel.Description = strings.TrimSpace(s.Find(".hotel-card__description").First().Text())
		if img, ok := s.Find(".hotel-card__photo img").First().Attr("src"); ok {
			hotel.Image = img
		}

		// Добавляем отель только с названием и ценой
		if hotel.Name != "" && hotel.Price > 0 {
			hotels = append(hotels, hotel)
		}
	})

	return hotels
}
