package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"anonchat/backend/internal/models"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Counter names kept in Redis under "stats:<name>".
const (
	CounterMatches       = "matches"
	CounterStalePartners = "stale_partners"
	CounterRoomsClosed   = "rooms_closed"
)

const counterKeyPrefix = "stats:"

// Recorder is the write-side surface the engine uses. All calls are
// best-effort: failures are logged, never surfaced into the protocol.
type Recorder interface {
	RecordRoomStarted(roomID string, members []string, startedAt time.Time) error
	RecordRoomEnded(roomID string, endedAt time.Time, durationMs int64) error
	IncrCounter(name string) error
}

// Service backs the Recorder with PostgreSQL (room archive) and Redis
// (ops counters). Either handle may be nil, in which case the
// corresponding operations are no-ops; the engine works without any
// storage attached.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// RecordRoomStarted inserts the archive row for a freshly created room.
func (s *Service) RecordRoomStarted(roomID string, members []string, startedAt time.Time) error {
	if s.DB == nil {
		return nil
	}
	rec := models.RoomRecord{
		RoomID:    roomID,
		Members:   pq.StringArray(members),
		IsActive:  true,
		StartedAt: startedAt,
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		log.Printf("ERROR: failed to archive room %s: %v", roomID, err)
		return err
	}
	return nil
}

// RecordRoomEnded closes the archive row when the room is torn down.
func (s *Service) RecordRoomEnded(roomID string, endedAt time.Time, durationMs int64) error {
	if s.DB == nil {
		return nil
	}
	err := s.DB.Model(&models.RoomRecord{}).
		Where("room_id = ?", roomID).
		Updates(map[string]interface{}{
			"is_active":   false,
			"ended_at":    endedAt,
			"duration_ms": durationMs,
		}).Error
	if err != nil {
		log.Printf("ERROR: failed to close archived room %s: %v", roomID, err)
	}
	return err
}

// IncrCounter bumps an ops counter in Redis.
func (s *Service) IncrCounter(name string) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Incr(s.Ctx, counterKeyPrefix+name).Err()
}

// Counter reads a single ops counter. A missing key reads as zero.
func (s *Service) Counter(name string) (int64, error) {
	if s.Redis == nil {
		return 0, nil
	}
	n, err := s.Redis.Get(s.Ctx, counterKeyPrefix+name).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Counters reads all known ops counters.
func (s *Service) Counters() (map[string]int64, error) {
	out := make(map[string]int64)
	for _, name := range []string{CounterMatches, CounterStalePartners, CounterRoomsClosed} {
		n, err := s.Counter(name)
		if err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, nil
}

// RecentRooms returns the most recently started archive rows.
func (s *Service) RecentRooms(limit int) ([]models.RoomRecord, error) {
	if s.DB == nil {
		return nil, nil
	}
	var recs []models.RoomRecord
	err := s.DB.Order("started_at desc").Limit(limit).Find(&recs).Error
	return recs, err
}

// PurgeBefore drops closed archive rows that started before cutoff and
// returns how many were removed.
func (s *Service) PurgeBefore(cutoff time.Time) (int64, error) {
	if s.DB == nil {
		return 0, nil
	}
	res := s.DB.Where("is_active = ? AND started_at < ?", false, cutoff).
		Delete(&models.RoomRecord{})
	return res.RowsAffected, res.Error
}
