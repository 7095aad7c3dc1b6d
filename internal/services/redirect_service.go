// Package services – RedirectService
//
// This file implements RedirectService, the orchestrator behind the public
// redirect endpoint. For one inbound click it validates the campaign, loads
// the team's sellers with their contacts, builds the rotation wheel, selects
// the target seller and contact from the ledger counts, formats the WhatsApp
// deep link, and appends the click to the ledger.
//
// The resolution is stateless: no cursor is stored anywhere. The ledger row
// counts are re-read on every request, so weight and contact edits apply on
// the very next click, and concurrent processes need no coordination. The
// final ledger append is best-effort and asynchronous: once the destination
// has been computed the user must be redirected, even if bookkeeping fails.
//
// Observability: Resolve is OpenTelemetry-instrumented; spans carry the
// campaign slug and selection outcome.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
	"github.com/lucasr0ck/leadflow2-sub000/internal/wheel"
	"github.com/lucasr0ck/leadflow2-sub000/internal/whatsapp"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// clickAppendFailures counts ledger appends that failed after the redirect
// decision was already made. These are swallowed by design, so the counter is
// the only place they surface besides logs.
var clickAppendFailures = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "leadflow_click_append_failures_total",
	Help: "Total number of click ledger appends that failed.",
})

func init() {
	prometheus.MustRegister(clickAppendFailures)
}

// RedirectStore defines the persistence contract required by RedirectService:
// three reads that feed the selection and the single append-only write.
type RedirectStore interface {
	// GetCampaignBySlug fetches a campaign by public slug, active or not.
	GetCampaignBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Campaign, error)

	// ListTeamSellers returns the team's sellers with contacts preloaded,
	// in stable rotation order.
	ListTeamSellers(ctx context.Context, db *gorm.DB, teamID string) ([]domain.Seller, error)

	// CountClicks returns the campaign's total ledger row count.
	CountClicks(ctx context.Context, db *gorm.DB, campaignID string) (int64, error)

	// CountSellerClicks returns the ledger row count scoped to one seller
	// within the campaign.
	CountSellerClicks(ctx context.Context, db *gorm.DB, campaignID, sellerID string) (int64, error)

	// CreateClick appends one ledger row.
	CreateClick(ctx context.Context, db *gorm.DB, campaignID, sellerID string) (*domain.Click, error)
}

// Redirect is the outcome of one resolved click: where the visitor goes and
// which seller/contact drew the lead.
type Redirect struct {
	CampaignID string `json:"campaign_id"`
	SellerID   string `json:"seller_id"`
	SellerName string `json:"seller_name"`
	ContactID  string `json:"contact_id"`
	Phone      string `json:"phone"`
	URL        string `json:"url"`
}

// RedirectService resolves inbound clicks to WhatsApp destinations.
type RedirectService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store is the persistence contract used by this service.
	Store RedirectStore

	// AppendTimeout bounds the asynchronous ledger append. The append runs
	// on a detached context so response cancellation cannot abort it.
	AppendTimeout time.Duration

	pending sync.WaitGroup
}

// NewRedirectService constructs a RedirectService with a sane append timeout.
func NewRedirectService(db *gorm.DB, store RedirectStore) *RedirectService {
	return &RedirectService{
		DB:            db,
		Store:         store,
		AppendTimeout: 5 * time.Second,
	}
}

// Resolve computes the destination for one click on the campaign identified
// by slug.
//
// Sequence: campaign lookup → seller load → wheel build → campaign count →
// seller pick → seller count → contact pick → URL format → async ledger
// append. Every read failure before the pick is fatal to the request (no
// guessed defaults); the trailing append is fire-and-forget.
//
// Two concurrent calls may read the same count and return the same seller.
// That double-draw is accepted: each successful append advances the count the
// next request reads, so the distribution converges to the configured weights.
func (s *RedirectService) Resolve(ctx context.Context, slug string) (*Redirect, error) {
	tr := otel.Tracer("services/RedirectService")
	ctx, span := tr.Start(ctx, "Resolve",
		trace.WithAttributes(attribute.String("campaign.slug", slug)),
	)
	defer span.End()

	if slug == "" {
		return nil, ErrSlugRequired
	}

	campaign, err := s.Store.GetCampaignBySlug(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if !campaign.IsActive {
		return nil, ErrCampaignInactive
	}

	sellers, err := s.Store.ListTeamSellers(ctx, s.DB, campaign.TeamID)
	if err != nil {
		return nil, err
	}
	if len(sellers) == 0 {
		return nil, ErrNoSellersConfigured
	}

	w, err := wheel.Build(sellers)
	if err != nil {
		if errors.Is(err, wheel.ErrNoEligibleSellers) {
			return nil, ErrNoEligibleSellers
		}
		return nil, err
	}

	campaignClicks, err := s.Store.CountClicks(ctx, s.DB, campaign.ID)
	if err != nil {
		return nil, err
	}
	seller := w.SellerAt(campaignClicks)

	sellerClicks, err := s.Store.CountSellerClicks(ctx, s.DB, campaign.ID, seller.ID)
	if err != nil {
		return nil, err
	}
	contact := wheel.PickContact(seller.Contacts, sellerClicks)

	span.SetAttributes(
		attribute.String("redirect.seller_id", seller.ID),
		attribute.String("redirect.contact_id", contact.ID),
		attribute.Int64("redirect.campaign_clicks", campaignClicks),
	)

	s.recordClick(campaign.ID, seller.ID)

	return &Redirect{
		CampaignID: campaign.ID,
		SellerID:   seller.ID,
		SellerName: seller.Name,
		ContactID:  contact.ID,
		Phone:      whatsapp.DigitsOnly(contact.Phone),
		URL:        whatsapp.Link(contact.Phone, campaign.Greeting),
	}, nil
}

// recordClick appends the ledger row in the background. Failure is logged and
// counted, never propagated: by this point the redirect decision has been
// made and must not be reverted or delayed by a bookkeeping write.
func (s *RedirectService) recordClick(campaignID, sellerID string) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		timeout := s.AppendTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := s.Store.CreateClick(ctx, s.DB, campaignID, sellerID); err != nil {
			clickAppendFailures.Inc()
			log.Error().
				Err(err).
				Str("campaign_id", campaignID).
				Str("seller_id", sellerID).
				Msg("click ledger append failed")
		}
	}()
}

// Wait blocks until all in-flight ledger appends have finished. Used by
// graceful shutdown and by tests that assert on ledger contents.
func (s *RedirectService) Wait() {
	s.pending.Wait()
}
