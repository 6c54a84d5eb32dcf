// Package identity models an external sign-in provider.
//
// Only a simulated Google provider exists: it waits a fixed delay and then
// hands back a synthetic identity without any network handshake.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/models"
)

// DefaultDelay is how long the simulated provider takes to answer.
const DefaultDelay = 1500 * time.Millisecond

// Identity is what a provider vouches for.
type Identity struct {
	Subject  string
	FullName string
	Email    string
	Provider models.AuthProvider
}

// Provider performs an external sign-in round trip.
type Provider interface {
	Name() models.AuthProvider
	Authenticate(ctx context.Context) (Identity, error)
}

type SimulatedProvider struct {
	delay time.Duration
}

// NewSimulatedProvider returns a Google stand-in answering after delay.
// A negative delay is treated as zero.
func NewSimulatedProvider(delay time.Duration) *SimulatedProvider {
	return &SimulatedProvider{delay: max(delay, 0)}
}

func (p *SimulatedProvider) Name() models.AuthProvider { return models.ProviderGoogle }

// Authenticate waits for the delay or ctx, whichever ends first.
func (p *SimulatedProvider) Authenticate(ctx context.Context) (Identity, error) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Identity{}, ctx.Err()
	case <-timer.C:
	}

	suffix, err := common.MakeRandHexString(6)
	if err != nil {
		return Identity{}, fmt.Errorf("generate identity: %w", err)
	}
	return Identity{
		Subject:  "google_" + suffix,
		FullName: "Google User",
		Email:    fmt.Sprintf("google.user.%s@gmail.com", suffix),
		Provider: models.ProviderGoogle,
	}, nil
}
