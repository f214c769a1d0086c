package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

// CatalogService owns the food catalog: CRUD, search, the sorted queries
// the recommender runs on, and a read-through TTL cache for single-item
// lookups. It implements nutrition.FoodLookup and nutrition.CatalogQuery.
type CatalogService struct {
	db    *gorm.DB
	cache *expirable.LRU[string, nutrition.FoodItem]
}

func NewCatalogService(db *gorm.DB, cacheSize int, cacheTTL time.Duration) *CatalogService {
	if cacheSize <= 0 {
		cacheSize = 512
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &CatalogService{
		db:    db,
		cache: expirable.NewLRU[string, nutrition.FoodItem](cacheSize, nil, cacheTTL),
	}
}

// Get resolves one food by id, serving repeated lookups from the cache.
func (s *CatalogService) Get(id string) (nutrition.FoodItem, error) {
	const op = "catalog.Get"
	if food, ok := s.cache.Get(id); ok {
		return food, nil
	}
	var row models.FoodItem
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nutrition.FoodItem{}, apperrors.Errorf(apperrors.KindUnknownFood, op, "no food with id %s", id)
		}
		return nutrition.FoodItem{}, apperrors.E(apperrors.KindStorage, op, err)
	}
	food := row.ToDomain()
	s.cache.Add(id, food)
	return food, nil
}

// Create validates and stores a new entry, journals the change, and leaves
// the cache to fill lazily.
func (s *CatalogService) Create(item nutrition.FoodItem) (nutrition.FoodItem, error) {
	const op = "catalog.Create"
	if err := item.Validate(); err != nil {
		return nutrition.FoodItem{}, err
	}
	row := models.FoodItemFromDomain(item)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, "", "food_item", row.ID, models.ChangeCreate, row.ToDomain())
	})
	if err != nil {
		return nutrition.FoodItem{}, err
	}
	return row.ToDomain(), nil
}

// Update replaces an existing entry and invalidates its cache slot.
func (s *CatalogService) Update(id string, item nutrition.FoodItem) (nutrition.FoodItem, error) {
	const op = "catalog.Update"
	item.ID = id
	if err := item.Validate(); err != nil {
		return nutrition.FoodItem{}, err
	}
	var row models.FoodItem
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nutrition.FoodItem{}, apperrors.Errorf(apperrors.KindUnknownFood, op, "no food with id %s", id)
		}
		return nutrition.FoodItem{}, apperrors.E(apperrors.KindStorage, op, err)
	}
	updated := models.FoodItemFromDomain(item)
	updated.CreatedAt = row.CreatedAt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&updated).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, "", "food_item", id, models.ChangeUpdate, updated.ToDomain())
	})
	if err != nil {
		return nutrition.FoodItem{}, err
	}
	s.cache.Remove(id)
	return updated.ToDomain(), nil
}

// Delete removes an entry unless log entries still reference it. Stale
// references would break aggregation for every day that logged the food.
func (s *CatalogService) Delete(id string) error {
	const op = "catalog.Delete"
	var refs int64
	if err := s.db.Model(&models.LogEntry{}).Where("food_id = ?", id).Count(&refs).Error; err != nil {
		return apperrors.E(apperrors.KindStorage, op, err)
	}
	if refs > 0 {
		return apperrors.Errorf(apperrors.KindConflict, op, "food %s is referenced by %d log entries", id, refs)
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.FoodItem{}, "id = ?", id)
		if res.Error != nil {
			return apperrors.E(apperrors.KindStorage, op, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.Errorf(apperrors.KindUnknownFood, op, "no food with id %s", id)
		}
		return recordChange(tx, "", "food_item", id, models.ChangeDelete, nil)
	})
	if err != nil {
		return err
	}
	s.cache.Remove(id)
	return nil
}

// ListFoodsQuery narrows List. Search matches the name and the serialized
// alternate names. EligibleFor post-filters with the rules when set.
type ListFoodsQuery struct {
	Category    string
	Search      string
	EligibleFor *nutrition.Constraints
	Limit       int
	Offset      int
}

func (s *CatalogService) List(q ListFoodsQuery) ([]nutrition.FoodItem, error) {
	const op = "catalog.List"
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	tx := s.db.Model(&models.FoodItem{}).Order("popularity DESC, name ASC")
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(alt_names) LIKE ?", like, like)
	}

	var rows []models.FoodItem
	if err := tx.Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}

	out := make([]nutrition.FoodItem, 0, len(rows))
	for i := range rows {
		food := rows[i].ToDomain()
		if q.EligibleFor != nil && !nutrition.IsEligible(food, *q.EligibleFor) {
			continue
		}
		out = append(out, food)
	}
	return out, nil
}

// nutrientColumns whitelists the sortable fields; anything else would let
// callers inject ORDER BY text.
var nutrientColumns = map[nutrition.NutrientField]string{
	nutrition.FieldCalories: "nutr_calories",
	nutrition.FieldProtein:  "nutr_protein",
	nutrition.FieldFiber:    "nutr_fiber",
}

// SortedByNutrient returns catalog entries ordered by one nutrient column.
// limit 0 means all rows.
func (s *CatalogService) SortedByNutrient(field nutrition.NutrientField, dir nutrition.SortDirection, limit int) ([]nutrition.FoodItem, error) {
	const op = "catalog.SortedByNutrient"
	col, ok := nutrientColumns[field]
	if !ok {
		return nil, apperrors.Errorf(apperrors.KindValidation, op, "unsortable nutrient field %q", field)
	}
	order := col + " ASC"
	if dir == nutrition.SortDesc {
		order = col + " DESC"
	}
	tx := s.db.Model(&models.FoodItem{}).Order(order)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var rows []models.FoodItem
	if err := tx.Find(&rows).Error; err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	out := make([]nutrition.FoodItem, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// ImportSeed upserts a batch of entries by id, returning how many were
// created vs already present. Existing rows are left untouched so local
// edits survive a re-seed.
func (s *CatalogService) ImportSeed(items []nutrition.FoodItem) (created, skipped int, err error) {
	const op = "catalog.ImportSeed"
	for _, item := range items {
		if verr := item.Validate(); verr != nil {
			return created, skipped, fmt.Errorf("%s: seed item %q: %w", op, item.Name, verr)
		}
		var count int64
		if cerr := s.db.Model(&models.FoodItem{}).Where("id = ?", item.ID).Count(&count).Error; cerr != nil {
			return created, skipped, apperrors.E(apperrors.KindStorage, op, cerr)
		}
		if count > 0 {
			skipped++
			continue
		}
		if _, cerr := s.Create(item); cerr != nil {
			return created, skipped, cerr
		}
		created++
	}
	return created, skipped, nil
}
