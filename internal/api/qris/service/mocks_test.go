package qrisService

import (
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	qrisRepository "github.com/muhamyusuf/uas-paw-kelompok-6/internal/api/qris/repository"
	"github.com/muhamyusuf/uas-paw-kelompok-6/internal/entity"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/redis"
	"github.com/muhamyusuf/uas-paw-kelompok-6/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"golang.org/x/net/context"
)

type mockQrisStore struct {
	mock.Mock
}

func (m *mockQrisStore) CreateQris(ctx context.Context, qris entity.Qris) error {
	return m.Called(ctx, qris).Error(0)
}

func (m *mockQrisStore) GetQrisByID(ctx context.Context, id string) (entity.Qris, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Qris), args.Error(1)
}

func (m *mockQrisStore) GetQrisByStaticString(ctx context.Context, staticQRIS string) (entity.Qris, error) {
	args := m.Called(ctx, staticQRIS)
	return args.Get(0).(entity.Qris), args.Error(1)
}

func (m *mockQrisStore) GetLatestQris(ctx context.Context) (entity.Qris, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.Qris), args.Error(1)
}

func (m *mockQrisStore) GetAllQris(ctx context.Context) ([]entity.Qris, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Qris), args.Error(1)
}

func (m *mockQrisStore) UpdateDynamicQris(ctx context.Context, id string, dynamicQRIS string) error {
	return m.Called(ctx, id, dynamicQRIS).Error(0)
}

func (m *mockQrisStore) DeleteQris(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type fakeRepository struct {
	store     *mockQrisStore
	commitErr error
	commits   int
}

func (r *fakeRepository) NewClient(tx bool) (qrisRepository.Client, error) {
	return qrisRepository.Client{
		Qris: r.store,
		Commit: func() error {
			r.commits++
			return r.commitErr
		},
		Rollback: func() error { return nil },
	}, nil
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) UploadFile(folder string, file *multipart.FileHeader) (string, error) {
	args := m.Called(folder, file)
	return args.String(0), args.Error(1)
}

func (m *mockS3) UploadBytes(key string, contentType string, data []byte) (string, error) {
	args := m.Called(key, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *mockS3) PresignUrl(fileUrl string) (string, error) {
	args := m.Called(fileUrl)
	return args.String(0), args.Error(1)
}

func (m *mockS3) DeleteFile(fileUrl string) error {
	return m.Called(fileUrl).Error(0)
}

type mockRedis struct {
	mock.Mock
}

func (m *mockRedis) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *mockRedis) GetJSON(ctx context.Context, key string, dest interface{}) error {
	return m.Called(ctx, key, dest).Error(0)
}

func (m *mockRedis) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedis) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRedis) GetInt(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// memoryRedis keeps values in a map, encoded the same way the real client
// encodes them.
type memoryRedis struct {
	mu       sync.Mutex
	values   map[string][]byte
	counters map[string]int64
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string][]byte{}, counters: map[string]int64{}}
}

func (m *memoryRedis) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	payload, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = payload
	return nil
}

func (m *memoryRedis) GetJSON(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	payload, ok := m.values[key]
	m.mu.Unlock()
	if !ok {
		return redis.ErrCacheMiss
	}
	return jsoniter.Unmarshal(payload, dest)
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return m.counters[key], nil
}

func (m *memoryRedis) GetInt(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key], nil
}

type fixture struct {
	svc   IQrisService
	repo  *fakeRepository
	store *mockQrisStore
	s3    *mockS3
	redis *mockRedis
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := &mockQrisStore{}
	repo := &fakeRepository{store: store}
	s3Client := &mockS3{}
	redisClient := &mockRedis{}

	t.Cleanup(func() {
		store.AssertExpectations(t)
		s3Client.AssertExpectations(t)
		redisClient.AssertExpectations(t)
	})

	return fixture{
		svc:   NewQrisService(logger, repo, s3Client, redisClient, utils.New(), 10*time.Minute),
		repo:  repo,
		store: store,
		s3:    s3Client,
		redis: redisClient,
	}
}

func (f fixture) expectGeneration(generation int64) {
	f.redis.On("GetInt", mock.Anything, LatestQrisGenerationKey).Return(generation, nil)
}

func (f fixture) expectInvalidate() {
	f.redis.On("Incr", mock.Anything, LatestQrisGenerationKey).Return(int64(1), nil)
	f.redis.On("Delete", mock.Anything, LatestQrisCacheKey).Return(nil)
}

func keyWithPrefix(prefix string) interface{} {
	return mock.MatchedBy(func(key string) bool {
		return len(key) > len(prefix) && key[:len(prefix)] == prefix
	})
}

func feePtr(feeType entity.FeeType) *entity.FeeType {
	return &feeType
}

func floatPtr(v float64) *float64 {
	return &v
}
