package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Profile carries the operator identity and directory defaults for one named
// section of the rc file. SEC's fair-access policy expects requests to
// identify their sender, so UserAgent should include a contact address.
type Profile struct {
	Name      string
	UserAgent string
	DataDir   string
	ChartsDir string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// DefaultProfilePath is ~/.secthingrc.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".secthingrc"
	}
	return filepath.Join(home, ".secthingrc")
}

// NewRegistry loads an ini rc file. A missing file yields an empty registry
// so first runs work with built-in defaults.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("load profile file %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section := r.cfg.Section(name)
	p := &Profile{
		Name:      name,
		UserAgent: section.Key("user_agent").MustString("SECthingv2 research tool (set user_agent in ~/.secthingrc)"),
		DataDir:   section.Key("data_dir").MustString("data"),
		ChartsDir: section.Key("charts_dir").MustString("charts"),
	}
	return p, nil
}
