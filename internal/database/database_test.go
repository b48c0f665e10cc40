package database

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/models"
	"github.com/killallgit/podcaster-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		wantErr bool
	}{
		{
			name: "in-memory sqlite",
			cfg:  config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
		},
		{
			name: "file sqlite creates its directory",
			cfg:  config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "nested", "podcaster.db")},
		},
		{
			name: "empty driver defaults to sqlite",
			cfg:  config.DatabaseConfig{Path: ":memory:"},
		},
		{
			name:    "unknown driver",
			cfg:     config.DatabaseConfig{Driver: "mongo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(""))
	assert.Equal(t, "data.db?_foreign_keys=on", sqliteDSN("data.db"))
	assert.Equal(t, "file:data.db?cache=shared&_foreign_keys=on", sqliteDSN("file:data.db?cache=shared"))
}

func TestDB_HealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		setupConn func() *DB
		wantErr   bool
	}{
		{
			name: "healthy connection",
			setupConn: func() *DB {
				conn, err := Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { conn.Close() })
				return conn
			},
		},
		{
			name: "closed connection",
			setupConn: func() *DB {
				conn, err := Initialize(":memory:", false)
				require.NoError(t, err)
				require.NoError(t, conn.Close())
				return conn
			},
			wantErr: true,
		},
		{
			name:      "nil connection",
			setupConn: func() *DB { return nil },
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setupConn().HealthCheck()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDB_Migrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Migrate())

	for _, table := range []string{"users", "categories", "podcasts"} {
		var count int64
		err := conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "table %s should exist", table)
	}
}

func TestDB_Constraints(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.Migrate())

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, conn.Create(&user).Error)
	category := models.Category{CategoryName: "Tech", Slug: "tech"}
	require.NoError(t, conn.Create(&category).Error)

	newPodcast := func(title string) *models.Podcast {
		return &models.Podcast{
			Title:       title,
			Description: "d",
			CategoryID:  category.ID,
			UserID:      user.ID,
			FrontImage:  "uploads/a.png",
			AudioFile:   "uploads/a.mp3",
		}
	}

	t.Run("duplicate title is translated", func(t *testing.T) {
		require.NoError(t, conn.Create(newPodcast("Episode 1")).Error)
		err := conn.Create(newPodcast("Episode 1")).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("dangling category is rejected", func(t *testing.T) {
		p := newPodcast("Orphan")
		p.CategoryID = uuid.New()
		err := conn.Create(p).Error
		assert.Error(t, err)
	})

	t.Run("failed transaction rolls back", func(t *testing.T) {
		var before int64
		conn.Model(&models.Podcast{}).Count(&before)

		err := conn.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(newPodcast("Rolled back")).Error; err != nil {
				return err
			}
			return gorm.ErrInvalidTransaction
		})
		assert.Error(t, err)

		var after int64
		conn.Model(&models.Podcast{}).Count(&after)
		assert.Equal(t, before, after)
	})
}
