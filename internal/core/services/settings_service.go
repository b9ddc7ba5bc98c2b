package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	maxLastUpdatedLength     = 64
	maxPreloginMessageLength = 2000
)

// settingsService implements SettingsSvcFacade over the settings and snapshot stores.
type settingsService struct {
	BaseService
	settingRepo  portsrepo.SettingRepositoryFacade
	snapshotRepo portsrepo.SnapshotRepositoryFacade
	accountRepo  portsrepo.AccountReader
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingRepo portsrepo.SettingRepositoryFacade, snapshotRepo portsrepo.SnapshotRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingRepo:  settingRepo,
		snapshotRepo: snapshotRepo,
		accountRepo:  accountRepo,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSetting returns nil when the key has never been written.
func (s *settingsService) GetSetting(ctx context.Context, key domain.SettingKey) (*string, error) {
	if !key.Known() {
		return nil, fmt.Errorf("%w: unknown setting %q", apperrors.ErrValidation, key)
	}
	setting, err := s.settingRepo.FindSetting(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to read setting", slog.String("key", string(key)))
		return nil, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return &setting.Value, nil
}

func (s *settingsService) SetSetting(ctx context.Context, actor domain.Identity, key domain.SettingKey, value string) error {
	if err := s.RequireAdmin(ctx, actor, "set setting"); err != nil {
		return err
	}

	normalized, err := normalizeSetting(key, value)
	if err != nil {
		return err
	}

	if err := s.settingRepo.UpsertSetting(ctx, domain.Setting{Key: key, Value: normalized}); err != nil {
		s.LogError(ctx, err, "Failed to save setting", slog.String("key", string(key)))
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	s.LogInfo(ctx, "Setting saved", slog.String("key", string(key)), slog.Int64("actor_id", actor.AccountID))
	return nil
}

// normalizeSetting validates a value for key and returns the form to store.
func normalizeSetting(key domain.SettingKey, value string) (string, error) {
	switch key {
	case domain.SettingLastUpdated:
		value = strings.TrimSpace(value)
		if value == "" {
			return "", fmt.Errorf("%w: last_updated must not be empty", apperrors.ErrValidation)
		}
		if utf8.RuneCountInString(value) > maxLastUpdatedLength {
			return "", fmt.Errorf("%w: last_updated must be at most %d characters", apperrors.ErrValidation, maxLastUpdatedLength)
		}
		return value, nil
	case domain.SettingSharePrice:
		price, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("%w: share_price must be a number", apperrors.ErrValidation)
		}
		return price.String(), nil
	case domain.SettingPreloginMessage:
		if utf8.RuneCountInString(value) > maxPreloginMessageLength {
			return "", fmt.Errorf("%w: message must be at most %d characters", apperrors.ErrValidation, maxPreloginMessageLength)
		}
		return value, nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", apperrors.ErrValidation, key)
	}
}

func (s *settingsService) GetPublicStats(ctx context.Context) (*domain.PublicStats, error) {
	stats := &domain.PublicStats{}

	price, err := s.GetSetting(ctx, domain.SettingSharePrice)
	if err != nil {
		return nil, err
	}
	if price != nil {
		d, err := decimal.NewFromString(*price)
		if err != nil {
			// values are validated on write
			s.LogWarn(ctx, "Stored share price is not a number", slog.String("value", *price))
		} else {
			stats.SharePrice = &d
		}
	}

	stats.LastUpdated, err = s.GetSetting(ctx, domain.SettingLastUpdated)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetPreloginMessage returns the raw message and its rendered HTML.
func (s *settingsService) GetPreloginMessage(ctx context.Context) (*domain.PreloginMessage, error) {
	msg, err := s.GetSetting(ctx, domain.SettingPreloginMessage)
	if err != nil {
		return nil, err
	}
	res := &domain.PreloginMessage{Message: msg}
	if msg != nil {
		res.HTML, err = utils.RenderMarkdown(*msg)
		if err != nil {
			s.LogError(ctx, err, "Failed to render prelogin message")
			return nil, err
		}
	}
	return res, nil
}

// GetYearlySnapshot returns zero values when no row exists.
func (s *settingsService) GetYearlySnapshot(ctx context.Context, accountID int64, year int) (*domain.YearlySnapshot, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	snap, err := s.snapshotRepo.FindSnapshot(ctx, accountID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.YearlySnapshot{AccountID: accountID, Year: year}, nil
		}
		s.LogError(ctx, err, "Failed to read yearly snapshot", slog.Int64("account_id", accountID), slog.Int("year", year))
		return nil, fmt.Errorf("failed to read yearly snapshot: %w", err)
	}
	return snap, nil
}

func (s *settingsService) ListYearlySnapshots(ctx context.Context, accountID int64) ([]domain.YearlySnapshot, error) {
	snaps, err := s.snapshotRepo.ListSnapshots(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list yearly snapshots", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to list yearly snapshots: %w", err)
	}
	if snaps == nil {
		return []domain.YearlySnapshot{}, nil
	}
	return snaps, nil
}

// SetYearlySnapshot applies a partial upsert; omitted fields keep their stored values.
func (s *settingsService) SetYearlySnapshot(ctx context.Context, actor domain.Identity, update domain.SnapshotUpdate) (*domain.YearlySnapshot, error) {
	if err := s.RequireAdmin(ctx, actor, "set yearly snapshot"); err != nil {
		return nil, err
	}
	if err := validateYear(update.Year); err != nil {
		return nil, err
	}
	if update.Empty() {
		return nil, fmt.Errorf("%w: deposits_cents or ending_balance_cents is required", apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, update.AccountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account for snapshot", slog.Int64("account_id", update.AccountID))
		}
		return nil, err
	}

	snap, err := s.snapshotRepo.UpsertSnapshot(ctx, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to save yearly snapshot", slog.Int64("account_id", update.AccountID), slog.Int("year", update.Year))
		return nil, fmt.Errorf("failed to save yearly snapshot: %w", err)
	}
	s.LogInfo(ctx, "Yearly snapshot saved", slog.Int64("account_id", update.AccountID), slog.Int("year", update.Year))
	return snap, nil
}

func validateYear(year int) error {
	if year < domain.MinSnapshotYear || year > domain.MaxSnapshotYear {
		return fmt.Errorf("%w: year must be between %d and %d", apperrors.ErrValidation, domain.MinSnapshotYear, domain.MaxSnapshotYear)
	}
	return nil
}
