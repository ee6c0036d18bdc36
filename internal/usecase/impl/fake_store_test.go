package impl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/domain/service"
)

// fakeStore is an in-memory store with per-statement atomicity: each
// repository call locks, applies and unlocks, so goroutines interleave
// between statements the way concurrent transactions do against Postgres.
// It enforces the same unique constraints as the real schema, in particular
// the unique device uuid, which is what turns a lost first-contact insert
// race into ErrDuplicateDevice.
type fakeStore struct {
	mu sync.Mutex

	nextAccountID int64
	nextDeviceID  int64
	accounts      map[int64]*entity.Account
	preferences   map[int64]*entity.Preference
	devicesByUUID map[string]*entity.Device

	likeEvents   map[string]map[int64]time.Time
	likeCounters map[string]int64

	// deviceLookupGate, when set, runs after a missed uuid lookup and before
	// the miss is returned, letting tests line up racing registrations.
	deviceLookupGate func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:      make(map[int64]*entity.Account),
		preferences:   make(map[int64]*entity.Preference),
		devicesByUUID: make(map[string]*entity.Device),
		likeEvents:    make(map[string]map[int64]time.Time),
		likeCounters:  make(map[string]int64),
	}
}

func likeKeyString(key entity.LikeKey) string {
	return fmt.Sprintf("%s/%d/%s", key.MFD, key.ProductType, key.ProductID)
}

// fakeTx journals undo closures for every write so a failed transaction can
// discard exactly its own rows, leaving concurrent committed writes alone.
type fakeTx struct {
	store *fakeStore
	undo  []func()
}

func (tx *fakeTx) rollback() {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()

	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
}

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tx := &fakeTx{store: m.store}
	if err := fn(&fakeFactory{tx: tx}); err != nil {
		tx.rollback()

		return err
	}

	return nil
}

type fakeFactory struct {
	tx *fakeTx
}

func (f *fakeFactory) Accounts() repository.AccountRepository {
	return &fakeAccountRepo{store: f.tx.store, tx: f.tx}
}

func (f *fakeFactory) Devices() repository.DeviceRepository {
	return &fakeDeviceRepo{store: f.tx.store, tx: f.tx}
}

func (f *fakeFactory) Topics() repository.TopicRepository { return nil }

func (f *fakeFactory) Likes() repository.LikeRepository {
	return &fakeLikeRepo{store: f.tx.store, tx: f.tx}
}

type fakeAccountRepo struct {
	store *fakeStore
	tx    *fakeTx
}

func (r *fakeAccountRepo) onUndo(fn func()) {
	if r.tx != nil {
		r.tx.undo = append(r.tx.undo, fn)
	}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAccountID++
	account.ID = s.nextAccountID
	clone := *account
	s.accounts[account.ID] = &clone

	id := account.ID
	r.onUndo(func() { delete(s.accounts, id) })

	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	clone := *account

	return &clone, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email != nil && *account.Email == email {
			clone := *account

			return &clone, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) UpdateProfile(_ context.Context, account *entity.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.accounts[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	prev := *stored
	id := account.ID
	r.onUndo(func() { s.accounts[id] = &prev })

	stored.Email = account.Email
	stored.Name = account.Name
	stored.SignUpType = account.SignUpType

	return nil
}

func (r *fakeAccountRepo) CreatePreference(_ context.Context, pref *entity.Preference) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *pref
	s.preferences[pref.AccountID] = &clone

	accountID := pref.AccountID
	r.onUndo(func() { delete(s.preferences, accountID) })

	return nil
}

func (r *fakeAccountRepo) FindPreference(_ context.Context, accountID int64) (*entity.Preference, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, ok := s.preferences[accountID]
	if !ok {
		return nil, repository.ErrPreferenceNotFound
	}
	clone := *pref

	return &clone, nil
}

func (r *fakeAccountRepo) PatchPreference(_ context.Context, accountID int64, patch *entity.PreferencePatch) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, ok := s.preferences[accountID]
	if !ok {
		return repository.ErrPreferenceNotFound
	}
	prev := *pref
	r.onUndo(func() { s.preferences[accountID] = &prev })

	if patch.Lang != nil {
		pref.Lang = *patch.Lang
	}
	if patch.Domain != nil {
		pref.Domain = *patch.Domain
	}
	if patch.TopicSelection != nil {
		pref.TopicSelection = *patch.TopicSelection
	}

	return nil
}

type fakeDeviceRepo struct {
	store *fakeStore
	tx    *fakeTx
}

func (r *fakeDeviceRepo) onUndo(fn func()) {
	if r.tx != nil {
		r.tx.undo = append(r.tx.undo, fn)
	}
}

func (r *fakeDeviceRepo) Create(_ context.Context, device *entity.Device) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.devicesByUUID[device.UUID]; exists {
		return repository.ErrDuplicateDevice
	}

	s.nextDeviceID++
	device.ID = s.nextDeviceID
	clone := *device
	s.devicesByUUID[device.UUID] = &clone

	uuid := device.UUID
	r.onUndo(func() { delete(s.devicesByUUID, uuid) })

	return nil
}

func (r *fakeDeviceRepo) FindByUUID(_ context.Context, deviceUUID string) (*entity.Device, error) {
	s := r.store
	s.mu.Lock()
	device, ok := s.devicesByUUID[deviceUUID]
	var clone entity.Device
	if ok {
		clone = *device
	}
	s.mu.Unlock()

	if !ok {
		if s.deviceLookupGate != nil {
			s.deviceLookupGate()
		}

		return nil, repository.ErrDeviceNotFound
	}

	return &clone, nil
}

func (r *fakeDeviceRepo) FindByRefreshToken(_ context.Context, refreshToken, deviceUUID string) (*entity.Device, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devicesByUUID[deviceUUID]
	if !ok || device.RefreshToken != refreshToken {
		return nil, repository.ErrDeviceNotFound
	}
	clone := *device

	return &clone, nil
}

func (r *fakeDeviceRepo) UpdateProfile(_ context.Context, device *entity.Device) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.devicesByUUID[device.UUID]
	if !ok {
		return repository.ErrDeviceNotFound
	}
	prev := *stored
	uuid := device.UUID
	r.onUndo(func() { s.devicesByUUID[uuid] = &prev })

	stored.AccountID = device.AccountID
	stored.Manufacturer = device.Manufacturer
	stored.Model = device.Model
	stored.OS = device.OS
	stored.OSVersion = device.OSVersion
	stored.IsVirtual = device.IsVirtual
	stored.AppVersion = device.AppVersion
	stored.LastIP = device.LastIP
	stored.PushToken = device.PushToken
	stored.LastSeenAt = time.Now()

	return nil
}

func (r *fakeDeviceRepo) RotateTokens(_ context.Context, accountID int64, deviceUUID, accessToken, refreshToken string, refreshExpiresAt time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devicesByUUID[deviceUUID]
	if !ok || device.AccountID == nil || *device.AccountID != accountID {
		return repository.ErrDeviceNotFound
	}
	prev := *device
	r.onUndo(func() { s.devicesByUUID[deviceUUID] = &prev })

	device.AccessToken = accessToken
	device.RefreshToken = refreshToken
	expiry := refreshExpiresAt
	device.RefreshTokenExpiresAt = &expiry

	return nil
}

func (r *fakeDeviceRepo) ListPushTokens(_ context.Context, _ *int64) ([]string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var tokens []string
	for _, device := range s.devicesByUUID {
		if device.PushToken != "" {
			tokens = append(tokens, device.PushToken)
		}
	}

	return tokens, nil
}

func (r *fakeDeviceRepo) ClearPushTokens(_ context.Context, tokens []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stale := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		stale[token] = struct{}{}
	}
	for _, device := range s.devicesByUUID {
		if _, ok := stale[device.PushToken]; ok {
			device.PushToken = ""
		}
	}

	return nil
}

type fakeLikeRepo struct {
	store *fakeStore
	tx    *fakeTx
}

func (r *fakeLikeRepo) onUndo(fn func()) {
	if r.tx != nil {
		r.tx.undo = append(r.tx.undo, fn)
	}
}

func (r *fakeLikeRepo) FindEvent(_ context.Context, accountID int64, key entity.LikeKey) (*entity.LikeEvent, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if at, ok := s.likeEvents[likeKeyString(key)][accountID]; ok {
		return &entity.LikeEvent{AccountID: accountID, Key: key, Timestamp: at}, nil
	}

	return nil, repository.ErrLikeEventNotFound
}

func (r *fakeLikeRepo) CreateEvent(_ context.Context, event *entity.LikeEvent) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	k := likeKeyString(event.Key)
	if _, ok := s.likeEvents[k][event.AccountID]; ok {
		return repository.ErrDuplicateLikeEvent
	}
	if s.likeEvents[k] == nil {
		s.likeEvents[k] = make(map[int64]time.Time)
	}
	s.likeEvents[k][event.AccountID] = event.Timestamp

	accountID := event.AccountID
	r.onUndo(func() { delete(s.likeEvents[k], accountID) })

	return nil
}

func (r *fakeLikeRepo) DeleteEvent(_ context.Context, accountID int64, key entity.LikeKey) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	k := likeKeyString(key)
	at, ok := s.likeEvents[k][accountID]
	if !ok {
		return repository.ErrLikeEventNotFound
	}
	delete(s.likeEvents[k], accountID)
	r.onUndo(func() { s.likeEvents[k][accountID] = at })

	return nil
}

func (r *fakeLikeRepo) IncrementCounter(_ context.Context, key entity.LikeKey) (int64, error) {
	return r.adjustCounter(key, 1, 1)
}

func (r *fakeLikeRepo) DecrementCounter(_ context.Context, key entity.LikeKey) (int64, error) {
	return r.adjustCounter(key, -1, 0)
}

func (r *fakeLikeRepo) adjustCounter(key entity.LikeKey, delta, initial int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	k := likeKeyString(key)
	prev, existed := s.likeCounters[k]
	r.onUndo(func() {
		if existed {
			s.likeCounters[k] = prev
		} else {
			delete(s.likeCounters, k)
		}
	})

	if !existed {
		s.likeCounters[k] = initial
	} else {
		s.likeCounters[k] = prev + delta
	}

	return s.likeCounters[k], nil
}

func (r *fakeLikeRepo) GetTotal(_ context.Context, key entity.LikeKey) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.likeCounters[likeKeyString(key)], nil
}

func (r *fakeLikeRepo) GetStatuses(_ context.Context, accountID int64, mfd string, productType int, productIDs []string) ([]*entity.LikeStatus, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]*entity.LikeStatus, 0, len(productIDs))
	for _, id := range productIDs {
		key := entity.LikeKey{MFD: mfd, ProductType: productType, ProductID: id}
		k := likeKeyString(key)
		status := &entity.LikeStatus{Key: key, Total: s.likeCounters[k]}
		if at, ok := s.likeEvents[k][accountID]; ok {
			likedAt := at
			status.Liked = true
			status.LikedAt = &likedAt
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// fakeTokenService hands out unique, recognizable credentials without
// touching real signing keys.
type fakeTokenService struct {
	counter atomic.Int64
}

func (f *fakeTokenService) IssueAccessToken(accountID int64, deviceUUID string) (string, error) {
	return fmt.Sprintf("access-%d-%s-%d", accountID, deviceUUID, f.counter.Add(1)), nil
}

func (f *fakeTokenService) VerifyAccessToken(string) (*service.AccessClaims, error) {
	return nil, service.ErrTokenInvalid
}

func (f *fakeTokenService) NewRefreshToken() (string, time.Time) {
	return fmt.Sprintf("refresh-%d", f.counter.Add(1)), time.Now().Add(30 * 24 * time.Hour)
}

func (f *fakeTokenService) AccessTokenTTL() time.Duration {
	return 3 * time.Hour
}
