package profile_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/profile"
	testpkg "github.com/khanesh/khanesh/internal/testing"
)

func validInput() profile.Input {
	return profile.Input{
		Name:       "پیش‌فرض",
		ArtistName: "هنرمند نمونه",
		ArtistURL:  "https://example.com/artist",
		SourceName: "منبع",
		SourceURL:  "https://example.com/source",
		FileSuffix: "hrm",
		IsDefault:  true,
	}
}

func TestAdd(t *testing.T) {
	t.Run("CreatesProfile", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		p, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)
		assert.Equal(t, "پیش‌فرض", p.Name)
		assert.Equal(t, "hrm", p.FileSuffix)
		assert.True(t, p.IsDefault)
	})

	t.Run("DefaultClearsSiblings", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		first, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Name = "دوم"
		second, err := svc.Add(context.Background(), userID, in)
		require.NoError(t, err)
		assert.True(t, second.IsDefault)

		reloaded, err := db.RecitationProfile.Get(context.Background(), first.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.IsDefault)
	})

	t.Run("DuplicateNamePerUser", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		_, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)

		_, err = svc.Add(context.Background(), userID, validInput())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		// Same name on a different user is fine.
		_, err = svc.Add(context.Background(), uuid.New(), validInput())
		assert.NoError(t, err)
	})

	t.Run("NameReusableAfterDelete", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		p, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)
		require.NoError(t, svc.Delete(context.Background(), userID, p.ID))

		_, err = svc.Add(context.Background(), userID, validInput())
		assert.NoError(t, err)
	})

	t.Run("Validation", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		tests := []struct {
			name    string
			mutate  func(*profile.Input)
			wantErr string
		}{
			{
				name:    "EmptyName",
				mutate:  func(in *profile.Input) { in.Name = "  " },
				wantErr: "name is required",
			},
			{
				name:    "ShortArtistName",
				mutate:  func(in *profile.Input) { in.ArtistName = "اب" },
				wantErr: "at least 3 characters",
			},
			{
				name:    "LatinArtistName",
				mutate:  func(in *profile.Input) { in.ArtistName = "John Doe" },
				wantErr: "Persian letters",
			},
			{
				name:    "RelativeArtistURL",
				mutate:  func(in *profile.Input) { in.ArtistURL = "/artist" },
				wantErr: "absolute http(s) url",
			},
			{
				name:    "BadSourceURLScheme",
				mutate:  func(in *profile.Input) { in.SourceURL = "ftp://example.com" },
				wantErr: "absolute http(s) url",
			},
			{
				name:    "SuffixTooShort",
				mutate:  func(in *profile.Input) { in.FileSuffix = "a" },
				wantErr: "2-4 characters",
			},
			{
				name:    "SuffixTooLong",
				mutate:  func(in *profile.Input) { in.FileSuffix = "abcde" },
				wantErr: "2-4 characters",
			},
			{
				name:    "SuffixUppercase",
				mutate:  func(in *profile.Input) { in.FileSuffix = "HRM" },
				wantErr: "lowercase",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := validInput()
				tt.mutate(&in)
				_, err := svc.Add(context.Background(), userID, in)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestResolveDefault(t *testing.T) {
	t.Run("ReturnsDefault", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		created, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)

		p, err := svc.ResolveDefault(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, p.ID)
	})

	t.Run("NoDefault", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)

		_, err := svc.ResolveDefault(context.Background(), uuid.New())
		assert.ErrorIs(t, err, profile.ErrNoDefaultProfile)
	})

	t.Run("NonDefaultProfilesIgnored", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		in := validInput()
		in.IsDefault = false
		_, err := svc.Add(context.Background(), userID, in)
		require.NoError(t, err)

		_, err = svc.ResolveDefault(context.Background(), userID)
		assert.ErrorIs(t, err, profile.ErrNoDefaultProfile)
	})
}

func TestList(t *testing.T) {
	db := testpkg.NewTestDB(t)
	svc := profile.NewService(db)
	userID := uuid.New()

	for _, name := range []string{"اول", "دوم", "سوم"} {
		in := validInput()
		in.Name = name
		in.IsDefault = false
		_, err := svc.Add(context.Background(), userID, in)
		require.NoError(t, err)
	}

	// Another user's profile must not leak into the listing.
	testpkg.NewProfile(t, db)

	profiles, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, profiles, 3)
}

func TestUpdate(t *testing.T) {
	t.Run("UpdatesOwnProfile", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		p, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Name = "نام تازه"
		in.FileSuffix = "nv"
		updated, err := svc.Update(context.Background(), userID, p.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "نام تازه", updated.Name)
		assert.Equal(t, "nv", updated.FileSuffix)
	})

	t.Run("KeepingOwnNameIsNotACollision", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		p, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), userID, p.ID, validInput())
		assert.NoError(t, err)
	})

	t.Run("ForeignProfile", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)

		other := testpkg.NewProfile(t, db)

		_, err := svc.Update(context.Background(), uuid.New(), other.ID, validInput())
		assert.ErrorIs(t, err, profile.ErrNotFound)
	})

	t.Run("BecomingDefaultClearsSiblings", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		first, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Name = "دوم"
		in.IsDefault = false
		second, err := svc.Add(context.Background(), userID, in)
		require.NoError(t, err)

		in.IsDefault = true
		_, err = svc.Update(context.Background(), userID, second.ID, in)
		require.NoError(t, err)

		reloaded, err := db.RecitationProfile.Get(context.Background(), first.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.IsDefault)
	})
}

func TestDelete(t *testing.T) {
	t.Run("DeletesOwnProfile", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)
		userID := uuid.New()

		p, err := svc.Add(context.Background(), userID, validInput())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), userID, p.ID))

		profiles, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("ForeignProfileIsSilentlyIgnored", func(t *testing.T) {
		db := testpkg.NewTestDB(t)
		svc := profile.NewService(db)

		other := testpkg.NewProfile(t, db)

		require.NoError(t, svc.Delete(context.Background(), uuid.New(), other.ID))

		// Still there.
		_, err := db.RecitationProfile.Get(context.Background(), other.ID)
		assert.NoError(t, err)
	})
}
