package repositoryImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmkeep/entities"
	"farmkeep/pkg/contact/repository"
)

func newRepo(t *testing.T) repository.ContactRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Contact{}))
	return New(db)
}

func TestContactLifecycle(t *testing.T) {
	repo := newRepo(t)

	m := &entities.Contact{FullName: "Nimal Perera", Email: "nimal@example.com", Message: "The reminder mails stopped arriving.", Status: "new"}
	require.NoError(t, repo.Create(m))

	require.NoError(t, repo.PatchStatus(m.ContactID, "replied"))
	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "replied", all[0].Status)

	require.NoError(t, repo.Delete(m.ContactID))
	all, err = repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
