package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bleck-backend/internal/auth"
	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CredentialRepository persists platform tokens. Tokens are encrypted on write and decrypted on read.
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Upsert creates or replaces the credential keyed on (user_id, platform, account_id).
// Implemented as a single-statement UPSERT; concurrent writers resolve as last writer wins.
func (r *CredentialRepository) Upsert(ctx context.Context, token *models.PlatformToken) error {
	encAccess, err := auth.EncryptToken(token.AccessToken)
	if err != nil {
		return fmt.Errorf("encrypt access token: %w", err)
	}
	encRefresh, err := auth.EncryptOptional(token.RefreshToken)
	if err != nil {
		return fmt.Errorf("encrypt refresh token: %w", err)
	}

	row := *token
	row.AccessToken = encAccess
	row.RefreshToken = encRefresh
	row.UpdatedAt = time.Now().UTC()

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}, {Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "refresh_token", "expires_at", "scope", "meta", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return translateError("upsert platform token", err)
	}

	token.CreatedAt = row.CreatedAt
	token.UpdatedAt = row.UpdatedAt
	return nil
}

// Get returns the credential for an exact (user, platform, account) triple
func (r *CredentialRepository) Get(ctx context.Context, userID uuid.UUID, platform, accountID string) (*models.PlatformToken, error) {
	var token models.PlatformToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ? AND account_id = ?", userID, platform, accountID).
		First(&token).Error
	if err != nil {
		return nil, translateError("get platform token", err)
	}
	return decrypt(&token)
}

// GetLatest returns the most recently written credential of a user for a platform.
// Expired rows are returned as well; callers decide whether to refresh.
func (r *CredentialRepository) GetLatest(ctx context.Context, userID uuid.UUID, platform string) (*models.PlatformToken, error) {
	var token models.PlatformToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform).
		Order("updated_at DESC").
		First(&token).Error
	if err != nil {
		return nil, translateError("get latest platform token", err)
	}
	return decrypt(&token)
}

// ListByUser returns every credential of a user without decrypting tokens.
// The token fields of the returned rows are cleared.
func (r *CredentialRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PlatformToken, error) {
	var tokens []models.PlatformToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("platform ASC, updated_at DESC").
		Find(&tokens).Error
	if err != nil {
		return nil, translateError("list platform tokens", err)
	}
	for i := range tokens {
		tokens[i].AccessToken = ""
		tokens[i].RefreshToken = ""
	}
	return tokens, nil
}

// Delete removes the credentials of a user for a platform. An empty accountID removes every account.
func (r *CredentialRepository) Delete(ctx context.Context, userID uuid.UUID, platform, accountID string) error {
	query := r.db.WithContext(ctx).Where("user_id = ? AND platform = ?", userID, platform)
	if accountID != "" {
		query = query.Where("account_id = ?", accountID)
	}
	result := query.Delete(&models.PlatformToken{})
	if result.Error != nil {
		return translateError("delete platform token", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCredentialNotFound
	}
	return nil
}

func decrypt(token *models.PlatformToken) (*models.PlatformToken, error) {
	access, err := auth.DecryptToken(token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("decrypt access token: %w", err)
	}
	refresh, err := auth.DecryptOptional(token.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("decrypt refresh token: %w", err)
	}
	token.AccessToken = access
	token.RefreshToken = refresh
	return token, nil
}

func translateError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrCredentialNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: postgres %s (%s): %w", op, pgErr.Code, pgErr.Message, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
