package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fadilmartias/placement-portal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_Postgres_FindByEmailAndRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "skills", "industry"}).
		AddRow("c1", "TechCorp Solutions", "hr@techcorp.com", "password123", "company", nil, "Technology")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."email" = $1 AND "users"."role" = $2 ORDER BY "users"."id" LIMIT $3`)).
		WithArgs("hr@techcorp.com", model.RoleCompany, 1).
		WillReturnRows(rows)

	u, err := repo.FindByEmailAndRole(context.Background(), "hr@techcorp.com", model.RoleCompany)
	require.NoError(t, err)
	assert.Equal(t, "c1", u.ID)
	assert.Nil(t, u.Skills)
	require.NotNil(t, u.Industry)
	assert.Equal(t, "Technology", *u.Industry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Postgres_UpdateResume(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "resume"=\$1 WHERE .*"id" = \$2`).
		WithArgs("s1_cv.pdf", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateResume(context.Background(), "s1", "s1_cv.pdf"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Postgres_QuotesCamelCaseColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "applications" WHERE "applications"."studentId" = $1`)).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driveId", "studentId", "status"}).
			AddRow("app-1", "d1", "s1", "Applied"))

	apps, err := repo.FindByStudentID(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "d1", apps[0].DriveID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
