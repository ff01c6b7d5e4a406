package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bleck-backend/internal/client"
	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/logger"
	"bleck-backend/internal/platform"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ListCampaignsRequest selects the ad account whose campaigns are listed
type ListCampaignsRequest struct {
	AdAccountID string `form:"ad_account_id" json:"ad_account_id" validate:"omitempty,ad_account_id"`
}

// CampaignStatusRequest is the body of POST /campaigns/:id/status
type CampaignStatusRequest struct {
	CampaignID  string `json:"-" validate:"required,max=128"`
	AdAccountID string `json:"ad_account_id" validate:"omitempty,ad_account_id"`
	Status      string `json:"status" validate:"required,oneof=ACTIVE PAUSED"`
}

// RenameCampaignRequest is the body of POST /campaigns/:id/rename
type RenameCampaignRequest struct {
	CampaignID  string `json:"-" validate:"required,max=128"`
	AdAccountID string `json:"ad_account_id" validate:"omitempty,ad_account_id"`
	Name        string `json:"name" validate:"required,max=400"`
}

// DailyBudgetRequest is the body of POST /campaigns/:id/budget. DailyBudget is in minor currency units.
type DailyBudgetRequest struct {
	CampaignID  string `json:"-" validate:"required,max=128"`
	AdAccountID string `json:"ad_account_id" validate:"omitempty,ad_account_id"`
	DailyBudget int64  `json:"dailyBudget" validate:"required,gt=0"`
}

// AccountStatusRequest is the body of POST /accounts/:id/status
type AccountStatusRequest struct {
	AccountID string `json:"-" validate:"required,max=128"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE PAUSED"`
}

// AdsService runs the shared route sequence: validate, resolve the platform client,
// obtain a valid token, make exactly one platform call
type AdsService struct {
	tokens    TokenServiceInterface
	clients   ClientResolver
	validator *validator.Validate
}

// NewAdsService creates a new ads service
func NewAdsService(tokens TokenServiceInterface, clients ClientResolver, validator *validator.Validate) *AdsService {
	return &AdsService{
		tokens:    tokens,
		clients:   clients,
		validator: validator,
	}
}

// NewValidator returns a validator that reports JSON field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("ad_account_id", func(fl validator.FieldLevel) bool {
		return client.ValidAdAccountID(fl.Field().String())
	})
	return v
}

// ListAccounts lists the accounts visible to the connected user
func (s *AdsService) ListAccounts(ctx context.Context, userID uuid.UUID, platformID string) ([]client.Account, error) {
	c, cred, err := s.prepare(ctx, userID, platformID, client.OpListAccounts, nil)
	if err != nil {
		return nil, err
	}
	accounts, err := c.ListAccounts(ctx, cred.AccessToken)
	if err != nil {
		return nil, s.callError(ctx, c.Platform(), client.OpListAccounts, err)
	}
	return accounts, nil
}

// ListCampaigns lists the campaigns of an ad account
func (s *AdsService) ListCampaigns(ctx context.Context, userID uuid.UUID, platformID string, req ListCampaignsRequest) ([]client.Campaign, error) {
	req.AdAccountID = strings.TrimSpace(req.AdAccountID)
	c, cred, err := s.prepare(ctx, userID, platformID, client.OpListCampaigns, &req, withAdAccount(req.AdAccountID))
	if err != nil {
		return nil, err
	}
	campaigns, err := c.ListCampaigns(ctx, cred.AccessToken, adAccountFor(c.Platform(), req.AdAccountID, cred))
	if err != nil {
		return nil, s.callError(ctx, c.Platform(), client.OpListCampaigns, err)
	}
	return campaigns, nil
}

// SetCampaignStatus sets a campaign to ACTIVE or PAUSED
func (s *AdsService) SetCampaignStatus(ctx context.Context, userID uuid.UUID, platformID string, req CampaignStatusRequest) (*client.MutationResult, error) {
	c, cred, err := s.prepare(ctx, userID, platformID, client.OpSetCampaignStatus, &req)
	if err != nil {
		return nil, err
	}
	res, err := c.SetCampaignStatus(ctx, cred.AccessToken, client.CampaignMutation{
		AdAccountID: adAccountFor(c.Platform(), req.AdAccountID, cred),
		CampaignID:  req.CampaignID,
		Status:      req.Status,
	})
	if err != nil {
		return nil, s.callError(ctx, c.Platform(), client.OpSetCampaignStatus, err)
	}
	return res, nil
}

// RenameCampaign changes a campaign name
func (s *AdsService) RenameCampaign(ctx context.Context, userID uuid.UUID, platformID string, req RenameCampaignRequest) (*client.MutationResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	c, cred, err := s.prepare(ctx, userID, platformID, client.OpRenameCampaign, &req)
	if err != nil {
		return nil, err
	}
	res, err := c.RenameCampaign(ctx, cred.AccessToken, client.CampaignMutation{
		AdAccountID: adAccountFor(c.Platform(), req.AdAccountID, cred),
		CampaignID:  req.CampaignID,
		Name:        req.Name,
	})
	if err != nil {
		return nil, s.callError(ctx, c.Platform(), client.OpRenameCampaign, err)
	}
	return res, nil
}

// SetDailyBudget sets a campaign daily budget
func (s *AdsService) SetDailyBudget(ctx context.Context, userID uuid.UUID, platformID string, req DailyBudgetRequest) (*client.MutationResult, error) {
	c, cred, err := s.prepare(ctx, userID, platformID, client.OpSetDailyBudget, &req)
	if err != nil {
		return nil, err
	}
	res, err := c.SetDailyBudget(ctx, cred.AccessToken, client.CampaignMutation{
		AdAccountID: adAccountFor(c.Platform(), req.AdAccountID, cred),
		CampaignID:  req.CampaignID,
		DailyBudget: req.DailyBudget,
	})
	if err != nil {
		return nil, s.callError(ctx, c.Platform(), client.OpSetDailyBudget, err)
	}
	return res, nil
}

// SetAccountStatus changes an ad account status. No supported platform offers this, so it is
// answered with ErrOperationNotSupported before the credential is read.
func (s *AdsService) SetAccountStatus(ctx context.Context, userID uuid.UUID, platformID string, req AccountStatusRequest) (*client.MutationResult, error) {
	c, cred, err := s.prepare(ctx, userID, platformID, client.OpSetAccountStatus, &req)
	if err != nil {
		return nil, err
	}
	res, err := c.SetAccountStatus(ctx, cred.AccessToken, req.AccountID, req.Status)
	if err != nil {
		return nil, s.callError(ctx, c.Platform(), client.OpSetAccountStatus, err)
	}
	return res, nil
}

type prepareOption func(p platform.Platform) error

// withAdAccount requires an explicit ad account on platforms where the credential is not scoped to one
func withAdAccount(adAccountID string) prepareOption {
	return func(p platform.Platform) error {
		if adAccountID == "" && p != platform.TikTok {
			return apperrors.ErrAdAccountIDMissing
		}
		return nil
	}
}

// prepare resolves the client, checks it offers op, validates the request and obtains a valid token,
// in that order. Nothing is sent to a platform before all four succeed, except a token refresh.
func (s *AdsService) prepare(ctx context.Context, userID uuid.UUID, platformID string, op client.Operation, req interface{}, opts ...prepareOption) (client.AdsClient, *models.PlatformToken, error) {
	if userID == uuid.Nil {
		return nil, nil, apperrors.ErrUserIDMissing
	}
	p, err := platform.Parse(platformID)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.clients.Get(p)
	if err != nil {
		return nil, nil, err
	}
	if !c.Supports(op) {
		return nil, nil, apperrors.ErrOperationNotSupported
	}
	if req != nil {
		if err := s.validate(req); err != nil {
			return nil, nil, err
		}
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, nil, err
		}
	}

	cred, err := s.tokens.ValidToken(ctx, userID, p)
	if err != nil {
		return nil, nil, err
	}
	return c, cred, nil
}

func (s *AdsService) validate(req interface{}) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "ad_account_id" {
			return apperrors.ErrAdAccountIDInvalid
		}
		return apperrors.NewValidationError(fe.Field(), validationMessage(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

// callError turns a platform rejection of the token itself into ErrReconnectRequired
func (s *AdsService) callError(ctx context.Context, p platform.Platform, operation client.Operation, err error) error {
	if apperrors.IsTokenInvalid(err) {
		logger.FromContext(ctx).WithFields(map[string]interface{}{
			"platform":  p,
			"operation": operation,
		}).WithError(err).Warn("Platform rejected the access token")
		return fmt.Errorf("%w: %v", apperrors.ErrReconnectRequired, err)
	}
	return err
}

// adAccountFor defaults the ad account of a TikTok call to the advertiser the credential was issued for
func adAccountFor(p platform.Platform, requested string, cred *models.PlatformToken) string {
	if requested != "" || p != platform.TikTok {
		return requested
	}
	return cred.AccountID
}
