package stats

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	"github.com/edusphere/edusphere-backend/pkg/types"
)

func setupStatsTestDB(t *testing.T) *db.Client {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{`
CREATE TABLE IF NOT EXISTS colleges (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL DEFAULT '',
  code TEXT NOT NULL UNIQUE,
  status TEXT NOT NULL DEFAULT 'PENDING',
  is_locked INTEGER NOT NULL DEFAULT 0,
  approval_status TEXT NOT NULL DEFAULT 'PENDING',
  college_type TEXT NOT NULL DEFAULT 'Government',
  address TEXT NOT NULL DEFAULT '',
  country TEXT NOT NULL DEFAULT '',
  state TEXT NOT NULL DEFAULT '',
  district TEXT NOT NULL DEFAULT '',
  principal_name TEXT NOT NULL DEFAULT '',
  principal_phone TEXT NOT NULL DEFAULT '',
  remarks TEXT,
  submitted_at DATETIME,
  verified_by TEXT,
  verified_at DATETIME,
  approved_at DATETIME,
  valid_until DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS students (
  id TEXT PRIMARY KEY,
  phone TEXT NOT NULL UNIQUE,
  otp_hash TEXT,
  otp_expires_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS placement_details (
  id TEXT PRIMARY KEY,
  college_id TEXT NOT NULL UNIQUE,
  placement_percentage REAL NOT NULL DEFAULT 0,
  avg_package TEXT NOT NULL DEFAULT '0',
  max_package TEXT NOT NULL DEFAULT '0',
  companies_visited TEXT NOT NULL DEFAULT '{}',
  proof_url TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}

	return db.NewFromConn(conn)
}

func seedStatsCollege(t *testing.T, client *db.Client, status enums.CollegeStatus, avgPackage string) {
	t.Helper()

	college := &models.College{
		ID:     uuid.New(),
		Name:   "College " + uuid.NewString()[:8],
		Email:  uuid.NewString() + "@college.gov.in",
		Code:   uuid.NewString()[:12],
		Status: status,
	}
	require.NoError(t, client.DB().Create(college).Error)

	if avgPackage == "" {
		return
	}
	avg, err := types.NewPackageAmount(avgPackage)
	require.NoError(t, err)
	require.NoError(t, client.DB().Create(&models.PlacementDetail{
		ID:         uuid.New(),
		CollegeID:  college.ID,
		AvgPackage: avg,
		MaxPackage: avg,
	}).Error)
}

func TestSummaryAggregates(t *testing.T) {
	client := setupStatsTestDB(t)
	svc, err := NewService(NewRepository(client))
	require.NoError(t, err)

	seedStatsCollege(t, client, enums.CollegeStatusApproved, "4.5")
	seedStatsCollege(t, client, enums.CollegeStatusApproved, "7.5")
	seedStatsCollege(t, client, enums.CollegeStatusPending, "100")
	require.NoError(t, client.DB().Create(&models.Student{ID: uuid.New(), Phone: "9000000021"}).Error)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalColleges)
	assert.Equal(t, int64(2), summary.ApprovedColleges)
	assert.Equal(t, int64(1), summary.TotalStudents)
	assert.Equal(t, "6", summary.AvgPackage)
}

func TestSummaryNoPlacementData(t *testing.T) {
	client := setupStatsTestDB(t)
	svc, err := NewService(NewRepository(client))
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalColleges)
	assert.Equal(t, "0", summary.AvgPackage)
}
