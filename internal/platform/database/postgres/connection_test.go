package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
)

type stubConfig struct {
	dsn          string
	maxOpenConns int
	maxIdleConns int
}

func (c *stubConfig) DSN() string                       { return c.dsn }
func (c *stubConfig) RedactedURL() string               { return "postgres://localhost:5432/testdb" }
func (c *stubConfig) GetMaxOpenConns() int              { return c.maxOpenConns }
func (c *stubConfig) GetMaxIdleConns() int              { return c.maxIdleConns }
func (c *stubConfig) GetConnMaxLifetime() time.Duration { return time.Minute }
func (c *stubConfig) GetConnMaxIdleTime() time.Duration { return time.Minute }

type PostgresConnectionTestSuite struct {
	suite.Suite
	mockConfig *stubConfig
}

func (s *PostgresConnectionTestSuite) SetupTest() {
	s.mockConfig = &stubConfig{
		dsn:          "host=127.0.0.1 port=1 user=probe password=probe dbname=testdb sslmode=disable connect_timeout=1",
		maxOpenConns: 3,
		maxIdleConns: 1,
	}
}

func (s *PostgresConnectionTestSuite) TestNew_AppliesPoolLimits() {
	db, err := New(s.mockConfig)
	s.Require().NoError(err)
	defer func() { _ = db.Close() }()

	s.Equal(3, db.Stats().MaxOpenConnections)
	s.Equal(0, db.Stats().OpenConnections, "New must not dial")
}

func (s *PostgresConnectionTestSuite) TestValidate_UnreachableServer() {
	db, err := New(s.mockConfig)
	s.Require().NoError(err)
	defer func() { _ = db.Close() }()

	err = db.Validate(context.Background(), 500*time.Millisecond)

	s.ErrorIs(err, ErrValidationFailed)
	s.Contains(err.Error(), "acquire")
}

func (s *PostgresConnectionTestSuite) TestValidate_DefaultTimeout() {
	db, mock := s.newMockDB()
	mock.ExpectPing().WillDelayFor(1500 * time.Millisecond)

	start := time.Now()
	err := db.Validate(context.Background(), 0)

	s.ErrorIs(err, ErrValidationFailed)
	s.Less(time.Since(start), 1400*time.Millisecond)
}

func (s *PostgresConnectionTestSuite) TestValidate_CancelledContext() {
	db, _ := s.newMockDB()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := db.Validate(ctx, time.Second)

	s.ErrorIs(err, ErrValidationFailed)
	s.ErrorIs(err, context.Canceled)
}

func (s *PostgresConnectionTestSuite) TestClose() {
	db, mock := s.newMockDB()
	mock.ExpectClose()

	s.NoError(db.Close())
	s.NoError(mock.ExpectationsWereMet())
}

func (s *PostgresConnectionTestSuite) newMockDB() (*DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = mockDB.Close() })

	return &DB{DB: mockDB, config: s.mockConfig}, mock
}

func (s *PostgresConnectionTestSuite) TestValidate_Success() {
	db, mock := s.newMockDB()

	mock.ExpectPing()
	err := db.Validate(context.Background(), time.Second)

	s.Assert().NoError(err)
	s.Assert().NoError(mock.ExpectationsWereMet())
}

func (s *PostgresConnectionTestSuite) TestValidate_PingError() {
	db, mock := s.newMockDB()

	mock.ExpectPing().WillReturnError(errors.New("server closed the connection unexpectedly"))
	err := db.Validate(context.Background(), time.Second)

	s.Assert().ErrorIs(err, ErrValidationFailed)
	s.Assert().Contains(err.Error(), "server closed the connection")
}

func (s *PostgresConnectionTestSuite) TestValidate_BoundedByTimeout() {
	db, mock := s.newMockDB()

	mock.ExpectPing().WillDelayFor(2 * time.Second)

	start := time.Now()
	err := db.Validate(context.Background(), 50*time.Millisecond)

	s.Assert().ErrorIs(err, ErrValidationFailed)
	s.Assert().Less(time.Since(start), time.Second)
}

func (s *PostgresConnectionTestSuite) TestDescribe_Success() {
	db, mock := s.newMockDB()

	mock.ExpectQuery("SHOW server_version").
		WillReturnRows(sqlmock.NewRows([]string{"server_version"}).AddRow("16.2"))
	mock.ExpectQuery("SHOW max_connections").
		WillReturnRows(sqlmock.NewRows([]string{"max_connections"}).AddRow("100"))
	mock.ExpectQuery("SHOW default_transaction_isolation").
		WillReturnRows(sqlmock.NewRows([]string{"default_transaction_isolation"}).AddRow("read committed"))

	info, err := db.Describe(context.Background())

	s.Require().NoError(err)
	s.Assert().Equal(ProductName, info["database"])
	s.Assert().Equal("16.2", info["version"])
	s.Assert().Equal(DriverName, info["driver"])
	s.Assert().Equal("postgres://localhost:5432/testdb", info["url"])
	s.Assert().Equal("100", info["maxConnections"])
	s.Assert().Equal("read committed", info["isolationLevel"])
	s.Assert().Contains(info, "pool")
	s.Assert().NoError(mock.ExpectationsWereMet())
}

func (s *PostgresConnectionTestSuite) TestDescribe_SettingsUnavailable() {
	db, mock := s.newMockDB()

	mock.ExpectQuery("SHOW server_version").
		WillReturnRows(sqlmock.NewRows([]string{"server_version"}).AddRow("15.4"))
	mock.ExpectQuery("SHOW max_connections").WillReturnError(errors.New("permission denied"))
	mock.ExpectQuery("SHOW default_transaction_isolation").WillReturnError(errors.New("permission denied"))

	info, err := db.Describe(context.Background())

	s.Require().NoError(err)
	s.Assert().Equal("15.4", info["version"])
	s.Assert().NotContains(info, "maxConnections")
	s.Assert().NotContains(info, "isolationLevel")
}

func (s *PostgresConnectionTestSuite) TestDescribe_VersionError() {
	db, mock := s.newMockDB()

	mock.ExpectQuery("SHOW server_version").WillReturnError(errors.New("connection reset by peer"))

	info, err := db.Describe(context.Background())

	s.Assert().Error(err)
	s.Assert().Nil(info)
}

func TestPostgresConnectionTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresConnectionTestSuite))
}
