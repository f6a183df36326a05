package services

import (
	"encoding/json"

	"finques-lisa/models"
	"finques-lisa/storage"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockPropertyRepository is a mock implementation of PropertyRepository interface
type MockPropertyRepository struct {
	mock.Mock
}

var _ PropertyRepository = (*MockPropertyRepository)(nil)

func (m *MockPropertyRepository) GetProperty(id string) (*models.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetPropertyBySlug(slug string) (*models.Property, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListProperties(filters models.PropertyFilters) ([]models.Property, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) SearchProperties(term string, filters models.PropertyFilters) ([]models.Property, error) {
	args := m.Called(term, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) FeaturedProperties(limit int) ([]models.Property, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) CreateProperty(id string, in models.PropertyInput) error {
	args := m.Called(id, in)
	return args.Error(0)
}

func (m *MockPropertyRepository) UpdateProperty(id string, in models.PropertyInput) (bool, error) {
	args := m.Called(id, in)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) DeleteProperty(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) ToggleActive(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) GetStats() (*models.PropertyStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyStats), args.Error(1)
}

func (m *MockPropertyRepository) PropertyTypes() ([]models.PropertyType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PropertyType), args.Error(1)
}

func (m *MockPropertyRepository) Locations() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPropertyRepository) PriceRange(operationType models.OperationType) (models.PriceRange, error) {
	args := m.Called(operationType)
	return args.Get(0).(models.PriceRange), args.Error(1)
}

// MockContactRepository is a mock implementation of ContactRepository interface
type MockContactRepository struct {
	mock.Mock
}

var _ ContactRepository = (*MockContactRepository)(nil)

func (m *MockContactRepository) CreateContact(c *models.Contact) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockContactRepository) GetContact(id string) (*models.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContacts(filters models.ContactFilters) ([]models.Contact, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactRepository) MarkContactRead(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockFavoriteRepository is a mock implementation of FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

var _ FavoriteRepository = (*MockFavoriteRepository)(nil)

func (m *MockFavoriteRepository) AddFavorite(propertyID string, owner models.FavoriteOwner) error {
	args := m.Called(propertyID, owner)
	return args.Error(0)
}

func (m *MockFavoriteRepository) RemoveFavorite(propertyID string, owner models.FavoriteOwner) (bool, error) {
	args := m.Called(propertyID, owner)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListFavorites(owner models.FavoriteOwner) ([]models.Property, error) {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

// MockAuthRepository is a mock implementation of AuthRepository interface
type MockAuthRepository struct {
	mock.Mock
}

var _ AuthRepository = (*MockAuthRepository)(nil)

func (m *MockAuthRepository) GetUser(userID string) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(user *models.User) (*models.Session, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

// MockLegacyStore is a mock implementation of storage.LegacyStore
type MockLegacyStore struct {
	mock.Mock
}

var _ storage.LegacyStore = (*MockLegacyStore)(nil)

func (m *MockLegacyStore) Load() ([]json.RawMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockLegacyStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}
