package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
)

// Registry resolves named source profiles from an ini file
// ($HOME/.salesatlas.ini unless overridden).
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.SourceProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the profile file at path.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile file: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.SourceProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.SourceProfile{}, fmt.Errorf("profile %s not found", name)
	}

	profile := domain.SourceProfile{
		Name:            name,
		SpreadsheetID:   section.Key("spreadsheet_id").String(),
		CredentialsFile: section.Key("credentials_file").String(),
		Currency:        section.Key("currency").String(),
	}
	if profile.Currency == "" {
		profile.Currency = domain.DefaultCurrency
	}
	return profile, nil
}
