// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// Provider loads process-wide settings.
type Provider interface {
	Load(ctx context.Context) (*Settings, error)
}

type envProvider struct{}

// NewProvider creates a settings provider backed by the process environment.
func NewProvider() Provider {
	return &envProvider{}
}

// Load reads settings from the environment.
func (p *envProvider) Load(ctx context.Context) (*Settings, error) {
	return load(ctx)
}
