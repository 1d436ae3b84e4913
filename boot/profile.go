package boot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/ovm/locator"
)

// ProfileName is the optional startup profile consulted by LoadProfile.
const ProfileName = "ovm.yaml"

// Profile is the optional ovm.yaml startup profile. It carries app metadata
// and the list of default services to register at Init.
type Profile struct {
	App      AppInfo  `yaml:"app"`
	Services []string `yaml:"services,omitempty"`
}

// AppInfo contains application metadata.
type AppInfo struct {
	Name    string `yaml:"name,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// Flags maps the profile's service list onto Init flags. An absent list
// means "everything" (DefaultFlags); an empty list means "nothing".
func (p *Profile) Flags() (Flags, error) {
	if p.Services == nil {
		return DefaultFlags, nil
	}
	var flags Flags
	for _, name := range p.Services {
		switch name {
		case "navigator":
			flags |= WithNavigator
		case "dialogs":
			flags |= WithDialogs
		case "messenger":
			flags |= WithMessenger
		default:
			return 0, fmt.Errorf("boot: unknown service %q in profile", name)
		}
	}
	return flags, nil
}

// LoadProfile reads ovm.yaml from dir if present. A missing file is not an
// error and yields an empty profile.
func LoadProfile(dir string) (*Profile, error) {
	path := filepath.Join(dir, ProfileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("boot: failed to read %s: %w", ProfileName, err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a profile from raw YAML.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("boot: failed to parse %s: %w", ProfileName, err)
	}
	return &p, nil
}

// InitFromProfile loads the startup profile from dir and runs Init with the
// flags it selects. The usual Init rules apply unchanged.
func InitFromProfile(dir string) (*locator.Locator, error) {
	p, err := LoadProfile(dir)
	if err != nil {
		return nil, err
	}
	flags, err := p.Flags()
	if err != nil {
		return nil, err
	}
	return Init(nil, flags)
}
