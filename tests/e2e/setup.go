//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"experience-booking/cmd/bootstrap"
	"experience-booking/cmd/bootstrap/components"
	"experience-booking/internal/infra/db"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/shared"
	"experience-booking/tests/common/authtest"
	"experience-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container
	redisContainerOnce    sync.Once
	redisTestContainer    testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// ------------------------------------------------------------
// Per-process environment
// ------------------------------------------------------------
type environment struct {
	pool     *pgxpool.Pool
	router   *gin.Engine
	cfg      config.Config
	notifier *RecordingNotifier
}

func setupE2EEnvironment(t *testing.T) environment {
	postgresInfo, redisInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	gateway := nethttptest.NewServer(http.HandlerFunc(fakeGatewayLookup))
	t.Cleanup(gateway.Close)

	notifier := &RecordingNotifier{}
	router, cfg, app := buildE2EApp(pool, createTestConfig(dbConfig, redisInfo, gateway.URL), notifier)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port(),
		"redis_addr", redisInfo.Addr())

	return environment{pool: pool, router: router, cfg: cfg, notifier: notifier}
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startContainers(t *testing.T) (ContainerInfo, ContainerInfo) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)
	startRedisContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to resolve postgres container address")

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve redis container address")

	return postgresInfo, redisInfo
}

// ------------------------------------------------------------
// Database
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// one database per test process
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		var waitTime time.Duration
		if attempts > 0 {
			waitTime = time.Duration(500+attempts*500) * time.Millisecond
			waitTime = min(waitTime, 3*time.Second)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Kolkata",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")
	require.NotNil(t, pool, "database pool is nil")

	err = applyMigrations(t, dbConfig)
	require.NoError(t, err, "migration failed")

	return pool, dbConfig
}

func applyMigrations(t *testing.T, dbConfig config.DBConfig) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, _, err := db.Connect(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	migrationFiles := []string{
		"migrations/001_initial_schema.sql",
	}

	for _, file := range migrationFiles {
		// go test runs from the package directory
		var (
			sqlContent []byte
			readErr    error
		)
		candidates := []string{
			file,
			filepath.Join("..", file),
			filepath.Join("..", "..", file),
			filepath.Join("..", "..", "..", file),
		}
		for _, cand := range candidates {
			sqlContent, readErr = os.ReadFile(cand)
			if readErr == nil {
				file = cand
				break
			}
		}
		if readErr != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, readErr)
		}

		if _, err = pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}

		slog.Info("migration applied", "file", file)
	}

	return nil
}

// ------------------------------------------------------------
// Application
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, testCfg config.Config, notifier *RecordingNotifier) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testCfg }),
	)

	// messaging is asserted on, not delivered
	testNotifyModule := fx.Module("testnotify",
		fx.Provide(func() shared.Notifier { return notifier }),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		testNotifyModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

func createTestConfig(dbConfig config.DBConfig, redisInfo ContainerInfo, gatewayURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Redis.Addr = redisInfo.Addr()
	testConfig.Payment.BaseURL = gatewayURL
	testConfig.Payment.SecretKey = "test-secret-key"
	testConfig.Payment.Timeout = 5 * time.Second
	return testConfig
}

// ------------------------------------------------------------
// Payment gateway stand-in
// ------------------------------------------------------------

// Tokens encode the outcome: "paid:<minor units>" completes with that
// amount, "cancel" is a purchaser cancellation, anything else is pending.
func PaidToken(minor int64) string {
	return "paid:" + strconv.FormatInt(minor, 10)
}

const CancelledToken = "cancel"

func fakeGatewayLookup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pidx string `json:"pidx"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasPrefix(req.Pidx, "paid:"):
		amount, _ := strconv.ParseInt(strings.TrimPrefix(req.Pidx, "paid:"), 10, 64)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"pidx":           req.Pidx,
			"total_amount":   amount,
			"status":         "Completed",
			"transaction_id": "txn_" + req.Pidx[len("paid:"):],
		})
	case req.Pidx == CancelledToken:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"pidx": req.Pidx, "status": "User canceled"})
	default:
		_ = json.NewEncoder(w).Encode(map[string]any{"pidx": req.Pidx, "status": "Pending"})
	}
}

// ------------------------------------------------------------
// Notifier that records instead of delivering
// ------------------------------------------------------------
type RecordingNotifier struct {
	mu        sync.Mutex
	templates []shared.TemplateMessage
	emails    []shared.Email
}

func (n *RecordingNotifier) SendTemplateMessage(_ context.Context, msg shared.TemplateMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.templates = append(n.templates, msg)
	return nil
}

func (n *RecordingNotifier) SendEmail(_ context.Context, email shared.Email) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, email)
	return nil
}

func (n *RecordingNotifier) Templates() []shared.TemplateMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shared.TemplateMessage(nil), n.templates...)
}

func (n *RecordingNotifier) Emails() []shared.Email {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shared.Email(nil), n.emails...)
}

func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.templates = nil
	n.emails = nil
}

// ------------------------------------------------------------
// Container startup
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate postgres container", "error", err.Error())
				}
			}
		})
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 60)
		require.NoError(t, err, "failed to start redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite for e2e packages
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	DB       *pgxpool.Pool
	Config   config.Config
	Notifier *RecordingNotifier
	JWT      *authtest.JWTHelper
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	env := setupE2EEnvironment(t)
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
	s.Notifier = env.notifier
	s.JWT = authtest.NewJWTHelper(env.cfg.JWT)
	require.NotNil(t, s.DB, "database setup failed")
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "failed to reset database state")
	s.Notifier.Reset()
}
