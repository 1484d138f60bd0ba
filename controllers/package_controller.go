package controllers

import (
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/dto"
	"geotrip/models"
	"geotrip/response"
	"geotrip/services"
	"geotrip/validator"
)

func convertToPackageResponse(pkg models.Package) dto.PackageResponse {
	resp := dto.PackageResponse{
		ID:          pkg.ID,
		Title:       pkg.Title,
		Description: pkg.Description,
		Price:       pkg.Price,
		SalePrice:   pkg.SalePrice,
		Duration:    pkg.Duration,
		MaxPeople:   pkg.MaxPeople,
		Popular:     pkg.Popular,
		ByBus:       pkg.ByBus,
		Category:    pkg.Category,
		Location:    pkg.Location,
		Gallery:     pkg.Gallery,
		Dates:       pkg.Dates,
		CreatedAt:   pkg.CreatedAt,
		UpdatedAt:   pkg.UpdatedAt,
	}

	if pkg.ByBus {
		report := services.DateAvailabilities(pkg.Dates, pkg.Bookings)
		resp.HasDates = len(report) > 0
		for _, r := range report {
			resp.DatesReport = append(resp.DatesReport, dto.DateAvailabilityResponse{
				DateID:    r.Date.ID,
				StartDate: r.Date.StartDate,
				EndDate:   r.Date.EndDate,
				MaxPeople: r.Date.MaxPeople,
				Booked:    r.Booked,
				Remaining: r.Remaining,
			})
		}
	} else {
		resp.HasDates = true
		resp.Booked = services.BookedAdults(pkg.Bookings)
		resp.Remaining = services.RemainingForPackage(pkg, pkg.Bookings)
	}

	return resp
}

// GetPackages returns the full catalog with nested location, gallery, dates
// and bookings. The snapshot is cached in Redis; filtering and pagination
// happen in memory against the snapshot.
func GetPackages(c *gin.Context) {
	var allPackages []models.Package

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, services.PackagesCacheKey, &allPackages); err != nil {
			log.Printf("Failed to read package cache: %v", err)
		}
	}

	if len(allPackages) == 0 {
		if err := config.DB.Model(&models.Package{}).
			Preload("Location").
			Preload("Gallery").
			Preload("Dates", func(db *gorm.DB) *gorm.DB {
				return db.Order("package_dates.start_date asc")
			}).
			Preload("Bookings").
			Find(&allPackages).Error; err != nil {
			response.ServerError(c)
			return
		}

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, services.PackagesCacheKey, allPackages, 10*time.Minute); err != nil {
				log.Printf("Failed to cache packages: %v", err)
			}
		}
	}

	categoryFilter := c.Query("category")
	locationFilter := c.Query("location")
	searchFilter := c.Query("search")
	popularStr := c.Query("popular")
	byBusStr := c.Query("byBus")
	minPriceStr := c.Query("minPrice")
	maxPriceStr := c.Query("maxPrice")

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filtered := make([]models.Package, 0, len(allPackages))
	for _, pkg := range allPackages {
		if categoryFilter != "" && !strings.EqualFold(pkg.Category, categoryFilter) {
			continue
		}
		if locationFilter != "" {
			decodedLocation, _ := url.QueryUnescape(locationFilter)
			if !strings.Contains(strings.ToLower(pkg.Location.Name), strings.ToLower(decodedLocation)) {
				continue
			}
		}
		if popularStr != "" {
			popular, err := strconv.ParseBool(popularStr)
			if err == nil && pkg.Popular != popular {
				continue
			}
		}
		if byBusStr != "" {
			byBus, err := strconv.ParseBool(byBusStr)
			if err == nil && pkg.ByBus != byBus {
				continue
			}
		}
		if minPriceStr != "" {
			minPrice, err := strconv.ParseFloat(minPriceStr, 64)
			if err == nil && pkg.Price < minPrice {
				continue
			}
		}
		if maxPriceStr != "" {
			maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
			if err == nil && pkg.Price > maxPrice {
				continue
			}
		}
		filtered = append(filtered, pkg)
	}

	if searchFilter != "" {
		decodedSearch, _ := url.QueryUnescape(searchFilter)
		filtered = searchPackages(filtered, decodedSearch)
	}

	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Package{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	packageResponses := make([]dto.PackageResponse, 0, len(filtered))
	for _, pkg := range filtered {
		packageResponses = append(packageResponses, convertToPackageResponse(pkg))
	}

	response.SuccessWithPagination(c, packageResponses, page, limit, total)
}

// GetPackageDetail returns one package with its per-date availability.
func GetPackageDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var pkg models.Package
	if err := config.DB.
		Preload("Location").
		Preload("Gallery").
		Preload("Dates", func(db *gorm.DB) *gorm.DB {
			return db.Order("package_dates.start_date asc")
		}).
		Preload("Bookings").
		First(&pkg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToPackageResponse(pkg))
}

// CreatePackage creates a catalog entry (admin).
func CreatePackage(c *gin.Context) {
	var request dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	pkg := models.Package{
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		SalePrice:   request.SalePrice,
		Duration:    request.Duration,
		MaxPeople:   request.MaxPeople,
		Popular:     request.Popular,
		ByBus:       request.ByBus,
		Category:    request.Category,
		LocationID:  request.LocationID,
	}

	if err := validator.ValidatePackage(&pkg); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, pkg)
}

// UpdatePackage edits a catalog entry (admin).
func UpdatePackage(c *gin.Context) {
	var request dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, request.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	pkg.Title = request.Title
	pkg.Description = request.Description
	pkg.Price = request.Price
	pkg.SalePrice = request.SalePrice
	pkg.Duration = request.Duration
	pkg.MaxPeople = request.MaxPeople
	pkg.Popular = request.Popular
	pkg.ByBus = request.ByBus
	pkg.Category = request.Category
	pkg.LocationID = request.LocationID

	if err := validator.ValidatePackage(&pkg); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&pkg).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, pkg)
}

// DeletePackage removes a catalog entry with its dates and gallery (admin).
// Packages with bookings cannot be deleted.
func DeletePackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var bookingCount int64
	if err := config.DB.Model(&models.Booking{}).Where("package_id = ?", id).Count(&bookingCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if bookingCount > 0 {
		response.Conflict(c)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageDate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id = ?", id).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		var bus models.Bus
		if err := tx.Where("package_id = ?", id).First(&bus).Error; err == nil {
			if err := tx.Where("bus_id = ?", bus.ID).Delete(&models.Seat{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&bus).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Delete(&models.Package{}, id).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, gin.H{"id": id})
}

func invalidatePackageCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, services.PackagesCacheKey); err != nil {
		log.Printf("Failed to invalidate package cache: %v", err)
	}
}

// normalizeInput lowercases and transliterates a search string so Georgian
// and Latin spellings compare equal.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity returns the normalized Levenshtein similarity of two
// strings, 1.0 meaning identical.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// searchPackages filters packages by fuzzy title match: substring hits
// always qualify, near-misses qualify by Levenshtein similarity, and the
// closest-match candidate survives typos the similarity cutoff would drop.
func searchPackages(packages []models.Package, query string) []models.Package {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return packages
	}

	titles := make([]string, len(packages))
	for i := range packages {
		titles[i] = normalizeInput(packages[i].Title)
	}

	best := createMatcher(titles).Closest(normalizedQuery)

	matched := make([]models.Package, 0, len(packages))
	for i := range packages {
		title := titles[i]
		switch {
		case strings.Contains(title, normalizedQuery):
			matched = append(matched, packages[i])
		case calculateSimilarity(title, normalizedQuery) >= 0.6:
			matched = append(matched, packages[i])
		case title == best && calculateSimilarity(best, normalizedQuery) >= 0.4:
			matched = append(matched, packages[i])
		}
	}
	return matched
}
