package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-api/internal/domain"
)

func TestStaffList_OnlyStaffAndRedacted(t *testing.T) {
	repo := newMemUserRepo()
	require.NoError(t, repo.Create(&domain.User{ID: "1", Email: "a@x.com", Name: "A", Role: "staff", PasswordHash: "h1"}))
	require.NoError(t, repo.Create(&domain.User{ID: "2", Email: "b@x.com", Name: "B", Role: "admin", PasswordHash: "h2"}))
	require.NoError(t, repo.Create(&domain.User{ID: "3", Email: "c@x.com", Name: "C", Role: "staff", PasswordHash: "h3"}))

	svc := NewStaffService(repo, nil, 30*time.Second)
	out, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 2)
	ids := []string{out[0].ID, out[1].ID}
	assert.ElementsMatch(t, []string{"1", "3"}, ids)
}

func TestAdminListAndBan(t *testing.T) {
	repo := newMemUserRepo()
	require.NoError(t, repo.Create(&domain.User{ID: "1", Email: "a@x.com", Name: "A", Role: "staff"}))
	require.NoError(t, repo.Create(&domain.User{ID: "2", Email: "b@x.com", Name: "B", Role: "admin"}))

	svc := NewAdminService(repo)
	page, err := svc.ListUsers("", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	require.NoError(t, svc.BanUser("1"))
	err = svc.BanUser("missing")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 404, de.Code)
}
