package services

import (
	"encoding/json"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

// CartStore persists one serialized cart payload per user key. Every
// mutation rewrites the whole payload; clearing deletes the key.
type CartStore interface {
	// Load returns the payload for the key, or nil when absent.
	Load(userID string) ([]byte, error)
	Save(userID string, payload []byte) error
	Delete(userID string) error
}

// CartService is the ordered cart aggregate of a single user.
type CartService interface {
	// Get reconstructs the cart from the store; an absent or corrupt
	// payload yields an empty cart, never an error about its content.
	Get(userID string) (models.Cart, error)
	// AddItem appends the item to the end of the sequence and persists it.
	AddItem(userID string, item models.CartLineItem) (models.Cart, error)
	// RemoveItem drops the element at index; out-of-bounds is a silent no-op.
	RemoveItem(userID string, index int) (models.Cart, error)
	// Clear empties the cart by deleting the persisted key.
	Clear(userID string) error
}

type cartService struct {
	store CartStore
}

// NewCartService creates a cart service over the given store.
func NewCartService(store CartStore) CartService {
	return &cartService{store: store}
}

func (s *cartService) Get(userID string) (models.Cart, error) {
	payload, err := s.store.Load(userID)
	if err != nil {
		return models.Cart{}, err
	}
	if len(payload) == 0 {
		return models.Cart{}, nil
	}

	var cart models.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		// Chosen contract: a corrupt payload reads as an empty cart.
		log.WithFields(log.Fields{"user_id": userID, "error": err.Error()}).
			Warn("Discarding corrupt cart payload")
		return models.Cart{}, nil
	}
	return cart, nil
}

func (s *cartService) AddItem(userID string, item models.CartLineItem) (models.Cart, error) {
	cart, err := s.Get(userID)
	if err != nil {
		return models.Cart{}, err
	}

	cart.Items = append(cart.Items, item)
	if err := s.save(userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *cartService) RemoveItem(userID string, index int) (models.Cart, error) {
	cart, err := s.Get(userID)
	if err != nil {
		return models.Cart{}, err
	}

	if index < 0 || index >= len(cart.Items) {
		return cart, nil
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	if err := s.save(userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *cartService) Clear(userID string) error {
	return s.store.Delete(userID)
}

func (s *cartService) save(userID string, cart models.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.store.Save(userID, payload)
}

// CartRecord is the single-key persisted form of a user's cart.
type CartRecord struct {
	UserID    string    `gorm:"column:usuario_id;primaryKey"`
	Payload   string    `gorm:"column:conteudo;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (CartRecord) TableName() string {
	return "carrinhos"
}

// GormCartStore keeps cart payloads in the relational store, one row per
// user, overwritten wholesale on every mutation (last write wins).
type GormCartStore struct {
	db *gorm.DB
}

func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{db: db}
}

func (s *GormCartStore) Load(userID string) ([]byte, error) {
	var record CartRecord
	if err := s.db.First(&record, "usuario_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(record.Payload), nil
}

func (s *GormCartStore) Save(userID string, payload []byte) error {
	record := CartRecord{UserID: userID, Payload: string(payload)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"conteudo", "updated_at"}),
	}).Create(&record).Error
}

func (s *GormCartStore) Delete(userID string) error {
	return s.db.Delete(&CartRecord{}, "usuario_id = ?", userID).Error
}
