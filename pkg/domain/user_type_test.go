package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "paynet/pkg/domain-errors"
)

func TestParseUserType(t *testing.T) {
	for in, want := range map[string]UserType{
		"md":                 UserTypeMasterDistributor,
		"master_distributor": UserTypeMasterDistributor,
		"distributor":        UserTypeDistributor,
		"user":               UserTypeRetailer,
		"retailer":           UserTypeRetailer,
	} {
		got, err := ParseUserType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUserType("admin")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestUserTypeMessages(t *testing.T) {
	assert.Equal(t, "master distributor not found", UserTypeMasterDistributor.NotFoundMessage())
	assert.Equal(t, "retailer not found", UserTypeRetailer.NotFoundMessage())
	assert.Equal(t, "md", UserTypeMasterDistributor.PathSegment())
	assert.Equal(t, "user", UserTypeRetailer.PathSegment())
	assert.Equal(t, "distributor", UserTypeDistributor.PathSegment())
}

func TestAdminExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, Admin{ExpiresAt: now}.Expired(now))
	assert.True(t, Admin{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.False(t, Admin{ExpiresAt: now.Add(time.Second)}.Expired(now))
}
