package db

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/smagulov/flightlog/internal/models"
)

// Store persists pilots and their flight records. Writes for the same
// user are serialized through a per-user lock so rapid successive
// messages cannot interleave; different users never contend.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex // guards locks
	locks map[int64]*sync.Mutex
}

func (s *Store) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Exists reports whether the user's flight log has been created.
func (s *Store) Exists(userID int64) (bool, error) {
	var n int64
	err := s.db.Model(&models.Pilot{}).Where("user_id = ?", userID).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateEmpty creates the user's flight log if it does not exist yet.
func (s *Store) CreateEmpty(userID int64) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return s.ensurePilot(userID)
}

func (s *Store) ensurePilot(userID int64) error {
	pilot := models.Pilot{UserID: userID}
	return s.db.Where(models.Pilot{UserID: userID}).FirstOrCreate(&pilot).Error
}

// Append adds a record to the end of the user's flight log, creating
// the log first if the user skipped /start.
func (s *Store) Append(userID int64, rec models.FlightRecord) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := s.ensurePilot(userID); err != nil {
		return err
	}
	rec.ID = 0
	rec.UserID = userID
	return s.db.Create(&rec).Error
}

// ReadAll returns the user's records in insertion order.
func (s *Store) ReadAll(userID int64) ([]models.FlightRecord, error) {
	var records []models.FlightRecord
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of records in the user's flight log.
func (s *Store) Count(userID int64) (int64, error) {
	var n int64
	err := s.db.Model(&models.FlightRecord{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// RemoveLast deletes the most recently appended record. Removing from
// an empty log is a no-op.
func (s *Store) RemoveLast(userID int64) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	var rec models.FlightRecord
	err := s.db.Where("user_id = ?", userID).Order("id DESC").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.db.Delete(&rec).Error
}

// Clear deletes every record in the user's flight log. The log itself
// stays; clearing twice in a row is fine.
func (s *Store) Clear(userID int64) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return s.db.Where("user_id = ?", userID).Delete(&models.FlightRecord{}).Error
}
