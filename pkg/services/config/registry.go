// Package config loads the application settings and the database connection
// profiles.
package config

import (
	"context"
	"fmt"
	"os/user"

	"gopkg.in/ini.v1"
)

// DefaultProfilePath resolves $HOME/.fournilcfg, falling back to the working
// directory when the current user cannot be resolved (static binaries in
// minimal containers).
func DefaultProfilePath() string {
	usr, err := user.Current()
	if err != nil || usr.HomeDir == "" {
		return ".fournilcfg"
	}
	return fmt.Sprintf("%s/.fournilcfg", usr.HomeDir)
}

// Registry reads named connection profiles from an ini file
// (~/.fournilcfg by default), one section per environment:
//
//	[prod]
//	dsn = postgres://fournil:...@db:5432/fournil?sslmode=require
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetDSN(ctx context.Context, profile string) (string, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
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

func (cr *cfgRegistry) GetDSN(_ context.Context, profile string) (string, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return "", fmt.Errorf("profile %s not found", profile)
	}

	dsn := section.Key("dsn").String()
	if dsn == "" {
		return "", fmt.Errorf("profile %s has no dsn", profile)
	}
	return dsn, nil
}
