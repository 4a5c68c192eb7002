package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"experience-booking/internal/domain/wizard"
	"experience-booking/internal/infra"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "wizard:"
	lockSuffix = ":submit"
	// A submit lock outlives any single checkout attempt but not an abandoned one.
	submitLockTTL = 2 * time.Minute
)

type WizardStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewWizardStore(rdb redis.Cmdable, cfg config.RedisConfig) *WizardStore {
	return &WizardStore{
		rdb: rdb,
		ttl: cfg.WizardTTL,
	}
}

func stateKey(id uuid.UUID) string { return keyPrefix + id.String() }
func lockKey(id uuid.UUID) string  { return keyPrefix + id.String() + lockSuffix }

// Save refreshes the session TTL on every write.
func (s *WizardStore) Save(ctx context.Context, state wizard.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errs.Wrap(err, "encode wizard state")
	}
	if err := s.rdb.Set(ctx, stateKey(state.ID), string(data), s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save wizard session", err)
	}
	return nil
}

func (s *WizardStore) Load(ctx context.Context, id uuid.UUID) (wizard.State, error) {
	raw, err := s.rdb.Get(ctx, stateKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return wizard.State{}, infra.WrapRepoErr("wizard session not found", err, infra.KindNotFound)
		}
		return wizard.State{}, infra.WrapRepoErr("failed to load wizard session", err)
	}

	var state wizard.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return wizard.State{}, infra.WrapRepoErr("corrupt wizard session", err)
	}
	return state, nil
}

func (s *WizardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rdb.Del(ctx, stateKey(id), lockKey(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete wizard session", err)
	}
	return nil
}

func (s *WizardStore) AcquireSubmitLock(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, lockKey(id), "1", submitLockTTL).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire submit lock", err)
	}
	return ok, nil
}

func (s *WizardStore) ReleaseSubmitLock(ctx context.Context, id uuid.UUID) error {
	if err := s.rdb.Del(ctx, lockKey(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to release submit lock", err)
	}
	return nil
}
