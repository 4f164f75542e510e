package menus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menu-manager/core/reconcile"
	"menu-manager/core/server"
	"menu-manager/core/storage"
	"menu-manager/feature/menus/availability"
	"menu-manager/feature/menus/models"
	menureconcile "menu-manager/feature/menus/reconcile"
	"menu-manager/feature/menus/stock"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrMenuNotFound is returned when a menu id does not exist.
var ErrMenuNotFound = errors.New("menu not found")

// Options configures a Service.
type Options struct {
	// Bucket holds menu photos. Empty disables photo handling.
	Bucket string
	// PhotoPrefix is the object key prefix of menu photos.
	PhotoPrefix string
	// Location is the business timezone for availability checks.
	Location *time.Location
	// PageLimit is the default listing page size.
	PageLimit int
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Service handles menu operations.
type Service struct {
	db     *gorm.DB
	client storage.Client
	logger *zap.Logger
	opts   Options
	ledger *stock.Ledger

	options    *menureconcile.OptionAdapter
	categories *menureconcile.CategoryAdapter
	special    *menureconcile.SpecialAdapter
}

// SaveResult reports what a save changed in each nested collection.
// A nil entry means the collection was not supplied.
type SaveResult struct {
	Menu       *models.Menu      `json:"menu"`
	Special    *reconcile.Result `json:"special,omitempty"`
	Categories *reconcile.Result `json:"categories,omitempty"`
	Options    *reconcile.Result `json:"options,omitempty"`
}

// NewService creates a new menu service.
func NewService(db *gorm.DB, client storage.Client, logger *zap.Logger, opts Options) (*Service, error) {
	if err := models.Setup(db); err != nil {
		return nil, fmt.Errorf("failed to set up menu models: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.PageLimit <= 0 {
		opts.PageLimit = server.DefaultPageLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		db:         db,
		client:     client,
		logger:     logger,
		opts:       opts,
		ledger:     stock.NewLedger(db, logger),
		options:    menureconcile.NewOptionAdapter(logger),
		categories: menureconcile.NewCategoryAdapter(),
		special:    menureconcile.NewSpecialAdapter(),
	}, nil
}

// Get returns a menu with its relations preloaded.
func (s *Service) Get(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := s.db.WithContext(ctx).
		Preload("Mealtime").
		Preload("Special").
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("priority, category_id") }).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("priority, menu_option_id") }).
		Preload("Options.Option").
		Preload("Options.Values", func(db *gorm.DB) *gorm.DB { return db.Order("priority, menu_option_value_id") }).
		First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu %d: %w", id, err)
	}
	return &menu, nil
}

// Save persists menu and reconciles the supplied nested collections in one
// transaction. A menu with id zero is created; otherwise it must exist.
// Collections are applied in order: special, categories, options.
func (s *Service) Save(ctx context.Context, menu *models.Menu, snap models.Snapshot) (*SaveResult, error) {
	result := &SaveResult{Menu: menu}
	creating := menu.ID == 0
	ctx, rec := reconcile.WithRecorder(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if menu.ID != 0 {
			var n int64
			if err := tx.Model(&models.Menu{}).Where("menu_id = ?", menu.ID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrMenuNotFound
			}
		}

		omit := []string{clause.Associations}
		if menu.ID != 0 {
			omit = append(omit, "CreatedAt")
		}
		if err := tx.Omit(omit...).Save(menu).Error; err != nil {
			return fmt.Errorf("failed to save menu: %w", err)
		}

		var err error
		if snap.Special != nil {
			result.Special, err = reconcile.ReconcileOne(ctx, tx, menu.ID, snap.Special, reconcile.Upserter[models.SpecialDescriptor](s.special))
			if err != nil {
				return err
			}
		}
		if snap.Categories != nil {
			result.Categories, err = reconcile.ReplaceSet(ctx, tx, menu.ID, snap.Categories, s.categories)
			if err != nil {
				return err
			}
		}
		if snap.Options != nil {
			result.Options, err = reconcile.Reconcile(ctx, tx, menu.ID, snap.Options, reconcile.Adapter[models.MenuOptionDescriptor](s.options))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		rec.Discard()
		if creating {
			menu.ID = 0
		}
		return nil, err
	}
	rec.Flush()

	for _, res := range []*reconcile.Result{result.Special, result.Categories, result.Options} {
		if res != nil && res.Skipped > 0 {
			s.logger.Debug("Skipped invalid descriptors",
				zap.Uint("menu_id", menu.ID),
				zap.String("collection", res.Collection),
				zap.Int("skipped", res.Skipped))
		}
	}
	s.logger.Info("Menu saved", zap.Uint("menu_id", menu.ID), zap.String("name", menu.Name))

	return result, nil
}

// Delete clears the category membership of a menu, then deletes it together
// with its options, option values and special. The photo is removed from
// storage on a best-effort basis.
func (s *Service) Delete(ctx context.Context, id uint) error {
	var menu models.Menu
	ctx, rec := reconcile.WithRecorder(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&menu, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuNotFound
			}
			return err
		}
		if _, err := reconcile.ReplaceSet(ctx, tx, menu.ID, []uint{}, s.categories); err != nil {
			return err
		}
		return tx.Select("Special", "Options", "OptionValues").Delete(&menu).Error
	})
	if err != nil {
		rec.Discard()
		if errors.Is(err, ErrMenuNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete menu %d: %w", id, err)
	}
	rec.Flush()

	if menu.Photo != "" && s.photosEnabled() {
		if err := s.client.RemoveObject(ctx, s.opts.Bucket, menu.Photo, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("Failed to remove menu photo", zap.Uint("menu_id", id), zap.String("key", menu.Photo), zap.Error(err))
		}
	}

	s.logger.Info("Menu deleted", zap.Uint("menu_id", id))
	return nil
}

// AdjustStock moves the stock of menu. See stock.Ledger.Adjust.
func (s *Service) AdjustStock(ctx context.Context, menu *models.Menu, quantity int, dir stock.Direction) (bool, error) {
	return s.ledger.Adjust(ctx, menu, quantity, dir)
}

// AdjustStockByID loads menu id and moves its stock.
func (s *Service) AdjustStockByID(ctx context.Context, id uint, quantity int, dir stock.Direction) (*models.Menu, bool, error) {
	menu, err := s.find(ctx, id)
	if err != nil {
		return nil, false, err
	}
	ok, err := s.ledger.Adjust(ctx, menu, quantity, dir)
	if err != nil {
		return nil, false, err
	}
	return menu, ok, nil
}

// IsSpecialActive reports whether the loaded special of menu covers the date of now.
func (s *Service) IsSpecialActive(menu *models.Menu, now time.Time) bool {
	if menu == nil || menu.Special == nil {
		return false
	}
	return availability.DateActive(menu.Special.StartDate, menu.Special.EndDate, now.In(s.opts.Location))
}

// IsMealtimeActive reports whether the loaded mealtime of menu covers the time of now.
// A menu without a mealtime is never in its mealtime.
func (s *Service) IsMealtimeActive(menu *models.Menu, now time.Time) bool {
	if menu == nil || menu.Mealtime == nil {
		return false
	}
	return availability.ClockActive(menu.Mealtime.StartTime, menu.Mealtime.EndTime, now.In(s.opts.Location))
}

// Availability loads a menu and evaluates its windows at now.
func (s *Service) Availability(ctx context.Context, id uint, now time.Time) (*models.Availability, error) {
	var menu models.Menu
	err := s.db.WithContext(ctx).Preload("Special").Preload("Mealtime").First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu %d: %w", id, err)
	}
	return &models.Availability{
		MenuID:     menu.ID,
		IsSpecial:  s.IsSpecialActive(&menu, now),
		IsMealtime: s.IsMealtimeActive(&menu, now),
		CheckedAt:  now.In(s.opts.Location).Format(time.RFC3339),
	}, nil
}

func (s *Service) photosEnabled() bool {
	return s.client != nil && s.opts.Bucket != ""
}
