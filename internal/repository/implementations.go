package repository

import (
	"github.com/tinysprout/garbha/backend/internal/models"
	"gorm.io/gorm"
)

// SearchQueryRepositoryImpl implements SearchQueryRepository
type SearchQueryRepositoryImpl struct {
	db *gorm.DB
}

func NewSearchQueryRepository(db *gorm.DB) models.SearchQueryRepository {
	return &SearchQueryRepositoryImpl{db: db}
}

func (r *SearchQueryRepositoryImpl) Create(query *models.SearchQuery) error {
	return r.db.Create(query).Error
}

func (r *SearchQueryRepositoryImpl) GetByID(id uint) (*models.SearchQuery, error) {
	var query models.SearchQuery
	err := r.db.First(&query, id).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *SearchQueryRepositoryImpl) GetByProfile(profileID string) ([]models.SearchQuery, error) {
	var queries []models.SearchQuery
	err := r.db.Where("profile_id = ?", profileID).
		Order("search_timestamp DESC").
		Find(&queries).Error
	return queries, err
}

func (r *SearchQueryRepositoryImpl) GetRecentSearches(limit int) ([]models.SearchQuery, error) {
	var queries []models.SearchQuery
	err := r.db.Order("search_timestamp DESC").
		Limit(limit).
		Find(&queries).Error
	return queries, err
}

// PopularQueryRepositoryImpl implements PopularQueryRepository
type PopularQueryRepositoryImpl struct {
	db *gorm.DB
}

func NewPopularQueryRepository(db *gorm.DB) models.PopularQueryRepository {
	return &PopularQueryRepositoryImpl{db: db}
}

func (r *PopularQueryRepositoryImpl) IncrementCount(queryText string) error {
	return r.db.Exec(`
		INSERT INTO popular_queries (query_text, search_count, last_searched, created_at, updated_at)
		VALUES (?, 1, NOW(), NOW(), NOW())
		ON CONFLICT (query_text)
		DO UPDATE SET
			search_count = popular_queries.search_count + 1,
			last_searched = NOW(),
			updated_at = NOW()
	`, queryText).Error
}

func (r *PopularQueryRepositoryImpl) GetTop(limit int) ([]models.PopularQuery, error) {
	var queries []models.PopularQuery
	err := r.db.Order("search_count DESC").
		Limit(limit).
		Find(&queries).Error
	return queries, err
}

func (r *PopularQueryRepositoryImpl) UpdateStats(queryText string, resultsCount float64, responseTime int) error {
	return r.db.Exec(`
		UPDATE popular_queries
		SET
			avg_results_count = (avg_results_count * (search_count - 1) + ?) / search_count,
			avg_response_time_ms = (avg_response_time_ms * (search_count - 1) + ?) / search_count,
			updated_at = NOW()
		WHERE query_text = ?
	`, resultsCount, responseTime, queryText).Error
}

// SystemHealthRepositoryImpl implements SystemHealthRepository
type SystemHealthRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemHealthRepository(db *gorm.DB) models.SystemHealthRepository {
	return &SystemHealthRepositoryImpl{db: db}
}

func (r *SystemHealthRepositoryImpl) UpdateServiceHealth(serviceName, status string, responseTime int, errorMsg string) error {
	return r.db.Exec(`
		INSERT INTO system_health (service_name, status, response_time_ms, error_message, checked_at)
		VALUES (?, ?, ?, ?, NOW())
	`, serviceName, status, responseTime, errorMsg).Error
}

func (r *SystemHealthRepositoryImpl) GetServiceHealth(serviceName string) (*models.SystemHealth, error) {
	var health models.SystemHealth
	err := r.db.Where("service_name = ?", serviceName).
		Order("checked_at DESC").
		First(&health).Error
	if err != nil {
		return nil, err
	}
	return &health, nil
}

func (r *SystemHealthRepositoryImpl) GetAllServicesHealth() ([]models.SystemHealth, error) {
	var health []models.SystemHealth
	err := r.db.Raw(`
		SELECT DISTINCT ON (service_name) *
		FROM system_health
		ORDER BY service_name, checked_at DESC
	`).Scan(&health).Error
	return health, err
}

// RepositoryManager bundles all repositories
type RepositoryManager struct {
	SearchQuery  models.SearchQueryRepository
	PopularQuery models.PopularQueryRepository
	SystemHealth models.SystemHealthRepository
}

func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{
		SearchQuery:  NewSearchQueryRepository(db),
		PopularQuery: NewPopularQueryRepository(db),
		SystemHealth: NewSystemHealthRepository(db),
	}
}
