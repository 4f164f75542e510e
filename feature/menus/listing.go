package menus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menu-manager/feature/menus/models"

	"gorm.io/gorm"
)

// GroupCategory restricts a listing to menus that belong to a category.
const GroupCategory = "category"

// MaxPageLimit caps the page size a caller may request.
const MaxPageLimit = 100

const defaultSort = "menu_priority ASC"

var allowedSorts = map[string]string{
	"menu_priority asc":  "menu_priority ASC",
	"menu_priority desc": "menu_priority DESC",
}

// ListOptions controls the public front-end listing.
type ListOptions struct {
	Page      int
	PageLimit int
	// Sort is "menu_priority asc" or "menu_priority desc"; anything else falls back to the default.
	Sort string
	// Category filters by category slug.
	Category string
	// Group set to GroupCategory keeps only categorized menus.
	Group string
}

// FilterOptions controls the filtered listing.
type FilterOptions struct {
	View models.View
	// Search matches name, price or stock (admin view only).
	Search string
	// Status filters on menu_status (admin view only).
	Status     *bool
	CategoryID uint
	Page       int
	PageLimit  int
}

// List returns enabled menus for the front-end.
func (s *Service) List(ctx context.Context, opts ListOptions) (*models.Page[models.MenuRow], error) {
	q := s.db.WithContext(ctx).Model(&models.Menu{}).Where("menu_status = ?", true)

	if slug := strings.TrimSpace(opts.Category); slug != "" {
		q = q.Where("menu_id IN (?)", s.db.Model(&models.MenuCategory{}).
			Select("menu_categories.menu_id").
			Joins("JOIN categories ON categories.category_id = menu_categories.category_id").
			Where("categories.permalink_slug = ?", slug))
	}
	if opts.Group == GroupCategory {
		q = q.Where("menu_id IN (?)", s.db.Model(&models.MenuCategory{}).Select("menu_id"))
	}

	return s.page(q, normalizeSort(opts.Sort), opts.Page, opts.PageLimit, models.ViewPublic)
}

// Filter returns menus projected for the requested view.
func (s *Service) Filter(ctx context.Context, opts FilterOptions) (*models.Page[models.MenuRow], error) {
	view := opts.View
	if view != models.ViewAdmin {
		view = models.ViewPublic
	}

	q := s.db.WithContext(ctx).Model(&models.Menu{})

	if view == models.ViewAdmin {
		if term := strings.TrimSpace(opts.Search); term != "" {
			pattern := likePattern(term)
			q = q.Where("menu_name LIKE ? ESCAPE '!' OR CAST(menu_price AS CHAR) LIKE ? ESCAPE '!' OR CAST(stock_qty AS CHAR) LIKE ? ESCAPE '!'",
				pattern, pattern, pattern)
		}
		if opts.Status != nil {
			q = q.Where("menu_status = ?", *opts.Status)
		}
	} else {
		q = q.Where("menu_status = ?", true)
	}

	if opts.CategoryID != 0 {
		q = q.Where("menu_id IN (?)", s.db.Model(&models.MenuCategory{}).Select("menu_id").Where("category_id = ?", opts.CategoryID))
	}

	return s.page(q, defaultSort, opts.Page, opts.PageLimit, view)
}

// AutoComplete returns enabled menus whose name contains term.
func (s *Service) AutoComplete(ctx context.Context, term string, limit int) ([]models.Suggestion, error) {
	out := []models.Suggestion{}
	term = strings.TrimSpace(term)
	if term == "" {
		return out, nil
	}
	if limit <= 0 || limit > MaxPageLimit {
		limit = s.opts.PageLimit
	}

	var menus []models.Menu
	err := s.db.WithContext(ctx).
		Select("menu_id", "menu_name").
		Where("menu_status = ? AND menu_name LIKE ? ESCAPE '!'", true, likePattern(term)).
		Order("menu_name, menu_id").
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search menus: %w", err)
	}

	for _, m := range menus {
		out = append(out, models.Suggestion{ID: m.ID, Text: m.Name})
	}
	return out, nil
}

func (s *Service) page(q *gorm.DB, order string, page, limit int, view models.View) (*models.Page[models.MenuRow], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.opts.PageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count menus: %w", err)
	}

	var menus []models.Menu
	err := q.Preload("Special").
		Preload("Mealtime").
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("priority, category_id") }).
		Order(order + ", menu_id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	now := s.opts.Now()
	items := make([]models.MenuRow, 0, len(menus))
	for i := range menus {
		items = append(items, s.project(&menus[i], view, now))
	}

	return &models.Page[models.MenuRow]{Items: items, Total: total, Page: page, PageLimit: limit}, nil
}

func (s *Service) project(m *models.Menu, view models.View, now time.Time) models.MenuRow {
	row := models.MenuRow{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Photo:       m.Photo,
		MinimumQty:  m.MinimumQty,
		Priority:    m.Priority,
		Categories:  make([]string, 0, len(m.Categories)),
		MealtimeID:  m.MealtimeID,
		IsSpecial:   s.IsSpecialActive(m, now),
		IsMealtime:  s.IsMealtimeActive(m, now),
	}
	for _, c := range m.Categories {
		row.Categories = append(row.Categories, c.Name)
	}
	if m.Special != nil {
		price := m.Special.SpecialPrice
		row.SpecialPrice = &price
	}
	if m.Mealtime != nil {
		row.MealtimeName = m.Mealtime.Name
	}

	if view == models.ViewAdmin {
		stockQty, subtract, status := m.StockQty, m.SubtractStock, m.Status
		row.StockQty = &stockQty
		row.SubtractStock = &subtract
		row.Status = &status
	}
	return row
}

func normalizeSort(sort string) string {
	key := strings.ToLower(strings.Join(strings.Fields(sort), " "))
	if order, ok := allowedSorts[key]; ok {
		return order
	}
	return defaultSort
}

// likePattern wraps term for a LIKE match using '!' as the escape character.
func likePattern(term string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(term) + "%"
}
