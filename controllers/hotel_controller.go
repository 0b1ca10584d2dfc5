package controllers

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"altairis/config"
	"altairis/dto"
	"altairis/models"
	"altairis/response"
	"altairis/utils"
	"altairis/validator"
)

// GetHotels lấy danh sách khách sạn có phân trang và lọc
func GetHotels(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	cityFilter := c.Query("city")
	countryFilter := c.Query("country")
	activeStr := c.Query("isActive")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Hotel{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if cityFilter != "" {
		tx = tx.Where("city ILIKE ?", "%"+cityFilter+"%")
	}
	if countryFilter != "" {
		tx = tx.Where("country ILIKE ?", "%"+countryFilter+"%")
	}
	if chainFilter := c.Query("chainCode"); chainFilter != "" {
		tx = tx.Where("chain_code ILIKE ?", "%"+chainFilter+"%")
	}
	if activeStr != "" {
		if isActive, err := strconv.ParseBool(activeStr); err == nil {
			tx = tx.Where("is_active = ?", isActive)
		}
	}

	var totalHotels int64
	if err := tx.Count(&totalHotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	var hotels []models.Hotel
	if err := tx.Preload("RoomTypes").Order("name asc").
		Offset(page * limit).Limit(limit).Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	hotelResponses := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		hotelResponses = append(hotelResponses, toHotelResponse(hotel))
	}

	response.SuccessWithPagination(c, hotelResponses, page, limit, int(totalHotels))
}

func toHotelResponse(hotel models.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:             hotel.ID,
		Name:           hotel.Name,
		City:           hotel.City,
		Country:        hotel.Country,
		StarRating:     hotel.StarRating,
		IsActive:       hotel.IsActive,
		RoomTypesCount: len(hotel.RoomTypes),
	}
}

// CreateHotel tạo khách sạn mới
func CreateHotel(c *gin.Context) {
	var request dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateHotel(&request); err != nil {
		handleServiceError(c, err)
		return
	}

	starRating := request.StarRating
	if starRating == 0 {
		starRating = 3
	}

	hotel := models.Hotel{
		Name:       request.Name,
		ChainCode:  request.ChainCode,
		Address:    request.Address,
		City:       request.City,
		Country:    request.Country,
		PostalCode: request.PostalCode,
		Phone:      request.Phone,
		Email:      request.Email,
		StarRating: starRating,
		IsActive:   true,
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, hotel)
}

// GetDetailHotel lấy chi tiết khách sạn kèm các loại phòng
func GetDetailHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := config.DB.Preload("RoomTypes").First(&hotel, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	today := utils.DateOf(time.Now())
	roomTypes := make([]dto.RoomTypeResponse, 0, len(hotel.RoomTypes))
	for _, rt := range hotel.RoomTypes {
		roomTypes = append(roomTypes, toRoomTypeResponse(rt, hotel.Name, today))
	}

	var activeBookings int64
	config.DB.Model(&models.Booking{}).
		Where("hotel_id = ? AND status = ?", hotel.ID, models.BookingStatusConfirmed).
		Count(&activeBookings)

	hotelResponse := toHotelResponse(hotel)
	hotelResponse.ActiveBookingsCount = int(activeBookings)

	detail := dto.HotelDetailResponse{
		HotelResponse: hotelResponse,
		ChainCode:     hotel.ChainCode,
		Address:       hotel.Address,
		PostalCode:    hotel.PostalCode,
		Phone:         hotel.Phone,
		Email:         hotel.Email,
		CreatedAt:     hotel.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     hotel.UpdatedAt.Format(time.RFC3339),
		RoomTypes:     roomTypes,
	}

	response.Success(c, detail)
}

// UpdateHotel cập nhật thông tin khách sạn
func UpdateHotel(c *gin.Context) {
	var hotel models.Hotel
	var request dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateHotel(&request.CreateHotelRequest); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.First(&hotel, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	hotel.Name = request.Name
	hotel.ChainCode = request.ChainCode
	hotel.Address = request.Address
	hotel.City = request.City
	hotel.Country = request.Country
	hotel.PostalCode = request.PostalCode
	hotel.Phone = request.Phone
	hotel.Email = request.Email
	if request.StarRating != 0 {
		hotel.StarRating = request.StarRating
	}
	if request.IsActive != nil {
		hotel.IsActive = *request.IsActive
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, hotel)
}

// DeleteHotel hạ cờ hoạt động của khách sạn. Không xóa cứng vì booking
// và tồn kho cũ còn tham chiếu.
func DeleteHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := config.DB.First(&hotel, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	hotel.IsActive = false
	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetCountries lấy danh sách quốc gia có khách sạn
func GetCountries(c *gin.Context) {
	var countries []string
	err := config.DB.Model(&models.Hotel{}).
		Where("is_active = ?", true).
		Distinct("country").
		Order("country asc").
		Pluck("country", &countries).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, countries)
}

// SearchHotels tìm kiếm gần đúng theo tên, thành phố, quốc gia, số sao
func SearchHotels(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}
	decodedQuery, err := url.QueryUnescape(query)
	if err != nil {
		response.BadRequest(c, "Từ khóa tìm kiếm không hợp lệ")
		return
	}

	var hotels []models.Hotel
	if err := config.DB.Where("is_active = ?", true).Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	cmCity := createMatcher(prepareUniqueList(hotels, "city"))
	cmCountry := createMatcher(prepareUniqueList(hotels, "country"))

	scored := filterAndScoreHotels(decodedQuery, hotels, cmCity, cmCountry)
	response.Success(c, scored)
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	return 1.0 - float64(distance)/maxLen
}

// extractRatingFromQuery bắt số sao trong từ khóa, ví dụ "5 sao" hoặc "4 star"
func extractRatingFromQuery(query string) int {
	re := regexp.MustCompile(`(\d+)\s*(sao|star|stars)`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	ratingInt, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return ratingInt
}

// Tạo danh sách các giá trị duy nhất từ cơ sở dữ liệu cho closestmatch
func prepareUniqueList(hotels []models.Hotel, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, hotel := range hotels {
		var value string
		switch field {
		case "city":
			value = hotel.City
		case "country":
			value = hotel.Country
		}
		if value != "" {
			uniqueValues[normalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho khách sạn
func calculateScore(query string, hotel models.Hotel, cmCity, cmCountry *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(hotel.Name)
	if strings.Contains(normalizedQuery, normalizedName) || strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 15
	}

	if rating := extractRatingFromQuery(normalizedQuery); rating != -1 && hotel.StarRating == rating {
		score += 15
	}

	if cmCity.Closest(normalizedQuery) == normalizeInput(hotel.City) {
		score += 13
	}
	if cmCountry.Closest(normalizedQuery) == normalizeInput(hotel.Country) {
		score += 5
	}

	return score
}

func filterAndScoreHotels(
	query string,
	hotels []models.Hotel,
	cmCity, cmCountry *closestmatch.ClosestMatch,
) []dto.ScoredHotel {
	var filteredHotels []dto.ScoredHotel
	scoreCh := make(chan dto.ScoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := calculateScore(query, hotel, cmCity, cmCountry)
			if score > 0 {
				scoreCh <- dto.ScoredHotel{
					Hotel: hotel,
					Score: score,
				}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredHotel := range scoreCh {
		filteredHotels = append(filteredHotels, scoredHotel)
	}

	sort.SliceStable(filteredHotels, func(i, j int) bool {
		return filteredHotels[i].Score > filteredHotels[j].Score
	})
	return filteredHotels
}
