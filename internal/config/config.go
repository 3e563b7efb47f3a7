package config

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment keys.
const (
	EnvFolderSuffix     = "DEFAULT_FOLDER_SUFFIX"
	EnvHostsFile        = "HOSTS_FILE_PATH"
	EnvHostIP           = "HOMESTEAD_HOST_IP"
	EnvManifest         = "HOMESTEAD_FILE_PATH"
	EnvSitesPath        = "HOMESTEAD_SITES_PATH"
	EnvBoxPath          = "HOMESTEAD_BOX_PATH"
	EnvProvisionCommand = "HOMESTEAD_PROVISION_COMMAND"
	EnvProvisionStrict  = "HOMESTEAD_PROVISION_STRICT"
	EnvDomainExtension  = "DEFAULT_DOMAIN_EXTENSION"
)

const (
	DefaultEnvFile   = ".env"
	DefaultHostsFile = "/etc/hosts"
	DefaultHostIP    = "192.168.10.10"
)

// ErrMissingSetting marks a required setting that is unset.
var ErrMissingSetting = errors.New("missing setting")

// Config is resolved once at startup and passed to every component.
type Config struct {
	FolderSuffix     string
	HostsFile        string
	HostIP           string
	ManifestPath     string
	SitesPath        string
	BoxPath          string
	ProvisionCommand string
	ProvisionStrict  bool
	DomainExtension  string
}

// Load reads envFile into the process environment (existing variables win)
// and resolves the configuration from it. A missing envFile is only an
// error when explicit is set.
func Load(envFile string, explicit bool) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, errors.Wrapf(err, "load env file %s", envFile)
			}
		}
	}

	v := viper.New()
	for _, key := range []string{
		EnvFolderSuffix, EnvHostsFile, EnvHostIP, EnvManifest, EnvSitesPath,
		EnvBoxPath, EnvProvisionCommand, EnvProvisionStrict, EnvDomainExtension,
	} {
		if err := v.BindEnv(key, key); err != nil {
			return Config{}, errors.Wrapf(err, "bind %s", key)
		}
	}
	v.SetDefault(EnvHostsFile, DefaultHostsFile)
	v.SetDefault(EnvHostIP, DefaultHostIP)

	return Config{
		FolderSuffix:     v.GetString(EnvFolderSuffix),
		HostsFile:        v.GetString(EnvHostsFile),
		HostIP:           v.GetString(EnvHostIP),
		ManifestPath:     v.GetString(EnvManifest),
		SitesPath:        v.GetString(EnvSitesPath),
		BoxPath:          v.GetString(EnvBoxPath),
		ProvisionCommand: v.GetString(EnvProvisionCommand),
		ProvisionStrict:  v.GetBool(EnvProvisionStrict),
		DomainExtension:  v.GetString(EnvDomainExtension),
	}, nil
}

// Validate reports the first required setting that is empty.
func (c Config) Validate() error {
	required := []struct {
		key, val string
	}{
		{EnvHostsFile, c.HostsFile},
		{EnvHostIP, c.HostIP},
		{EnvManifest, c.ManifestPath},
	}
	if c.ProvisionCommand == "" {
		required = append(required, struct{ key, val string }{EnvBoxPath, c.BoxPath})
	}
	for _, r := range required {
		if r.val == "" {
			return errors.Mark(errors.Newf("%s is not set", r.key), ErrMissingSetting)
		}
	}
	return nil
}
