package port

import (
	"context"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
)

// CampaignUseCase is the primary port for campaign management and
// delivery. It is consumed by the HTTP adapter.
type CampaignUseCase interface {
	// ListCampaigns drains the legacy collection, then returns the most
	// recently updated campaigns with per-status counts.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, domain.CampaignStats, error)
	// GetCampaign returns one campaign or ErrNotFound.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// CreateCampaign validates in and stores a new campaign.
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (*domain.Campaign, error)
	// UpdateCampaign merges in over the stored campaign, validates the
	// result and writes it back.
	UpdateCampaign(ctx context.Context, id string, in domain.CampaignInput) (*domain.Campaign, error)
	// DeleteCampaign removes a campaign or returns ErrNotFound.
	DeleteCampaign(ctx context.Context, id string) error
	// SendNow delivers a push campaign to every collected token and
	// records the outcome. When the campaign was deleted while sending the
	// delivery result is still returned alongside ErrNotFound.
	SendNow(ctx context.Context, id string) (*domain.SendResult, error)
	// MigrateLegacy drains the legacy collection and returns how many
	// legacy records were processed.
	MigrateLegacy(ctx context.Context) (int, error)
}

// TokenUseCase lets signed-in users manage their own push tokens.
type TokenUseCase interface {
	RegisterToken(ctx context.Context, actor domain.Actor, req TokenRegistration) error
	UnregisterToken(ctx context.Context, actor domain.Actor, token string) error
}

// TokenRegistration is the body of a token registration request. UserID
// is optional and must match the caller when set.
type TokenRegistration struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
	UserID   string `json:"userId"`
}

// Authorizer turns bearer credentials into actors.
type Authorizer interface {
	// Authenticate verifies the credential. It returns ErrUnauthenticated
	// when it is missing or invalid.
	Authenticate(ctx context.Context, credential string) (domain.Actor, error)
	// RequireAdmin authenticates and then requires the admin role,
	// returning ErrForbidden otherwise.
	RequireAdmin(ctx context.Context, credential string) (domain.Actor, error)
}
