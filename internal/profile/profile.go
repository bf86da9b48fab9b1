// Package profile manages per-user recitation profiles.
//
// A profile carries the artist and source attribution stamped onto every
// recitation a user uploads, plus the file suffix used when naming placed
// files. Exactly one profile per user may be the default; placement refuses
// to run without one.
package profile

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
)

// ErrNoDefaultProfile is returned when a user has no default profile.
var ErrNoDefaultProfile = errors.New("no default recitation profile")

// ErrNotFound is returned when a profile does not exist or belongs to
// another user.
var ErrNotFound = errors.New("profile not found")

// File suffix length bounds.
const (
	minSuffixLen = 2
	maxSuffixLen = 4
	minArtistLen = 3
)

// Input holds the caller-supplied fields of a profile.
type Input struct {
	Name       string
	ArtistName string
	ArtistURL  string
	SourceName string
	SourceURL  string
	FileSuffix string
	IsDefault  bool
}

// Service manages recitation profiles.
type Service struct {
	db     *generated.Client
	logger zerolog.Logger
}

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new profile service.
func NewService(db *generated.Client, opts ...Option) *Service {
	s := &Service{
		db:     db,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveDefault returns the user's default profile.
func (s *Service) ResolveDefault(ctx context.Context, userID uuid.UUID) (*generated.RecitationProfile, error) {
	p, err := s.db.RecitationProfile.Query().
		Where(
			recitationprofile.UserIDEQ(userID),
			recitationprofile.IsDefaultEQ(true),
		).
		First(ctx)
	if err != nil {
		if generated.IsNotFound(err) {
			return nil, ErrNoDefaultProfile
		}
		return nil, fmt.Errorf("failed to query default profile: %w", err)
	}
	return p, nil
}

// List returns all profiles owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*generated.RecitationProfile, error) {
	profiles, err := s.db.RecitationProfile.Query().
		Where(recitationprofile.UserIDEQ(userID)).
		Order(generated.Desc(recitationprofile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Add creates a profile for the user. Making it the default clears the
// default flag on the user's other profiles.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, in Input) (*generated.RecitationProfile, error) {
	in = normalize(in)
	if err := s.validateInput(ctx, userID, in, nil); err != nil {
		return nil, err
	}

	if in.IsDefault {
		if err := s.clearDefaults(ctx, userID); err != nil {
			return nil, err
		}
	}

	p, err := s.db.RecitationProfile.Create().
		SetUserID(userID).
		SetName(in.Name).
		SetArtistName(in.ArtistName).
		SetArtistURL(in.ArtistURL).
		SetSourceName(in.SourceName).
		SetSourceURL(in.SourceURL).
		SetFileSuffix(in.FileSuffix).
		SetIsDefault(in.IsDefault).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("profile", p.Name).
		Bool("default", p.IsDefault).
		Msg("profile created")
	return p, nil
}

// Update modifies a profile the user owns.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, id ulid.ULID, in Input) (*generated.RecitationProfile, error) {
	existing, err := s.db.RecitationProfile.Query().
		Where(
			recitationprofile.IDEQ(id),
			recitationprofile.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if generated.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	in = normalize(in)
	if err := s.validateInput(ctx, userID, in, &existing.ID); err != nil {
		return nil, err
	}

	if in.IsDefault && !existing.IsDefault {
		if err := s.clearDefaults(ctx, userID); err != nil {
			return nil, err
		}
	}

	p, err := existing.Update().
		SetName(in.Name).
		SetArtistName(in.ArtistName).
		SetArtistURL(in.ArtistURL).
		SetSourceName(in.SourceName).
		SetSourceURL(in.SourceURL).
		SetFileSuffix(in.FileSuffix).
		SetIsDefault(in.IsDefault).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("profile", p.Name).
		Msg("profile updated")
	return p, nil
}

// Delete removes a profile the user owns. Deleting a profile that does not
// exist, or that belongs to someone else, is not an error.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID, id ulid.ULID) error {
	n, err := s.db.RecitationProfile.Delete().
		Where(
			recitationprofile.IDEQ(id),
			recitationprofile.UserIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if n > 0 {
		s.logger.Info().
			Str("user_id", userID.String()).
			Str("profile_id", id.String()).
			Msg("profile deleted")
	}
	return nil
}

// clearDefaults removes the default flag from all of the user's profiles.
func (s *Service) clearDefaults(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.RecitationProfile.Update().
		Where(
			recitationprofile.UserIDEQ(userID),
			recitationprofile.IsDefaultEQ(true),
		).
		SetIsDefault(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear default profiles: %w", err)
	}
	return nil
}

func normalize(in Input) Input {
	in.Name = strings.TrimSpace(in.Name)
	in.ArtistName = strings.TrimSpace(in.ArtistName)
	in.ArtistURL = strings.TrimSpace(in.ArtistURL)
	in.SourceName = strings.TrimSpace(in.SourceName)
	in.SourceURL = strings.TrimSpace(in.SourceURL)
	in.FileSuffix = strings.TrimSpace(in.FileSuffix)
	return in
}

// validateInput checks the profile fields. When updating, excludeID is the
// profile being updated so it doesn't collide with its own name.
func (s *Service) validateInput(ctx context.Context, userID uuid.UUID, in Input, excludeID *ulid.ULID) error {
	var errs []error

	if in.Name == "" {
		errs = append(errs, errors.New("name is required"))
	} else {
		taken, err := s.nameTaken(ctx, userID, in.Name, excludeID)
		if err != nil {
			return err
		}
		if taken {
			errs = append(errs, fmt.Errorf("a profile named %q already exists", in.Name))
		}
	}

	if err := ValidateAttribution(in.ArtistName, in.ArtistURL, in.SourceURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateSuffix(in.FileSuffix); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ValidateAttribution checks the attribution fields shared between profiles
// and recitation metadata edits.
func ValidateAttribution(artistName, artistURL, sourceURL string) error {
	var errs []error
	if err := validateArtistName(artistName); err != nil {
		errs = append(errs, err)
	}
	if err := validateOptionalURL("artist url", artistURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateOptionalURL("source url", sourceURL); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *Service) nameTaken(ctx context.Context, userID uuid.UUID, name string, excludeID *ulid.ULID) (bool, error) {
	q := s.db.RecitationProfile.Query().
		Where(
			recitationprofile.UserIDEQ(userID),
			recitationprofile.NameEQ(name),
		)
	if excludeID != nil {
		q = q.Where(recitationprofile.IDNEQ(*excludeID))
	}
	taken, err := q.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check profile name: %w", err)
	}
	return taken, nil
}

// validateArtistName requires a Persian artist name. Published recitations
// appear on a Persian-language site, so the attribution must render there.
func validateArtistName(name string) error {
	if len([]rune(name)) < minArtistLen {
		return fmt.Errorf("artist name must be at least %d characters", minArtistLen)
	}
	for _, r := range name {
		if !persianRune(r) {
			return fmt.Errorf("artist name must use Persian letters, got %q", r)
		}
	}
	return nil
}

// persianRune reports whether r may appear in an artist name: Arabic-block
// letters, space, or zero-width non-joiner.
func persianRune(r rune) bool {
	if r == ' ' || r == '‌' {
		return true
	}
	return r >= 0x0600 && r <= 0x06FF
}

func validateOptionalURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an absolute http(s) url", field)
	}
	return nil
}

func validateSuffix(suffix string) error {
	if len(suffix) < minSuffixLen || len(suffix) > maxSuffixLen {
		return fmt.Errorf("file suffix must be %d-%d characters", minSuffixLen, maxSuffixLen)
	}
	for _, r := range suffix {
		if r < 'a' || r > 'z' {
			return errors.New("file suffix must use lowercase a-z only")
		}
	}
	return nil
}
