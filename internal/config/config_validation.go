// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged [StructuredConfig] can serve requests.
// Payment gateway and places keys are optional; their routes report 503
// while unset.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.Origin == "" || cfg.API.Org == "" || cfg.API.Site == "" || cfg.API.Token == "" {
		return ErrInvalidAPIConfigs
	}
	if u, err := url.Parse(cfg.API.Origin); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: origin %q must include scheme and host", ErrInvalidAPIConfigs, cfg.API.Origin)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 || cfg.API.Timeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Stripe.WebhookTolerance < 0 {
		return ErrInvalidStripeConfigs
	}

	return nil
}
