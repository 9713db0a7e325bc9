package repositoryImp

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmkeep/entities"
	"farmkeep/pkg/reminder/repository"
)

func newRepo(t *testing.T) repository.ReminderRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Reminder{}))
	return New(db)
}

func pending(user uint, msg string, due time.Time) *entities.Reminder {
	return &entities.Reminder{
		UserID:  user,
		CropID:  1,
		Kind:    entities.KindWatering,
		Email:   "farmer@example.com",
		Message: msg,
		DueDate: due,
		Status:  entities.ReminderPending,
	}
}

func TestUniqueIndexRejectsDuplicates(t *testing.T) {
	repo := newRepo(t)
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(pending(1, "Water your Rice", due)))
	err := repo.Create(pending(1, "Water your Rice", due))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// different owner, message or date are all fine
	assert.NoError(t, repo.Create(pending(2, "Water your Rice", due)))
	assert.NoError(t, repo.Create(pending(1, "Harvest your Rice", due)))
	assert.NoError(t, repo.Create(pending(1, "Water your Rice", due.AddDate(0, 0, 1))))
}

func TestClaimIsExclusive(t *testing.T) {
	repo := newRepo(t)
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r := pending(1, "Water your Rice", due)
	require.NoError(t, repo.Create(r))

	ok, err := repo.Claim(r.ReminderID)
	require.NoError(t, err)
	assert.True(t, ok)

	// second claim loses
	ok, err = repo.Claim(r.ReminderID)
	require.NoError(t, err)
	assert.False(t, ok)

	// release puts it back in play
	require.NoError(t, repo.Release(r.ReminderID))
	ok, err = repo.Claim(r.ReminderID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.MarkDone(r.ReminderID))
	got, err := repo.FindByID(r.ReminderID)
	require.NoError(t, err)
	assert.Equal(t, entities.ReminderDone, got.Status)

	// done rows cannot be claimed
	ok, err = repo.Claim(r.ReminderID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindDueWindow(t *testing.T) {
	repo := newRepo(t)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(pending(1, "Water your Rice", today)))
	require.NoError(t, repo.Create(pending(1, "Water your Maize", today.AddDate(0, 0, -1))))
	require.NoError(t, repo.Create(pending(1, "Water your Beans", today.AddDate(0, 0, 1))))
	done := pending(1, "Harvest your Rice", today)
	done.Status = entities.ReminderDone
	require.NoError(t, repo.Create(done))

	due, err := repo.FindDue(today, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Water your Rice", due[0].Message)
}

func TestDeleteByCrop(t *testing.T) {
	repo := newRepo(t)
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	a := pending(1, "Water your Rice", due)
	b := pending(1, "Water your Beans", due)
	b.CropID = 2
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	require.NoError(t, repo.DeleteByCrop(1))
	left, err := repo.FindByUser(1)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, uint(2), left[0].CropID)
}
