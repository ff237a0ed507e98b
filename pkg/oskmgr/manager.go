// Package oskmgr wires together an object storage client chain from a
// viper configuration. Importers embed an OskManager instead of
// assembling transports, retry policies, and loggers by hand.
package oskmgr

import (
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/objstoreresearch/osk/pkg/awss3"
	"github.com/objstoreresearch/osk/pkg/objstore"
)

type OskManager struct {
	Client *objstore.Client
	Logger objstore.Logger
	Cfg    *viper.Viper
}

// NewManager builds a manager from userCfg. Recognized options:
// "config-file" (string) and "logger" (objstore.Logger). Everything else
// comes from the configuration file, with sensible defaults for a plain
// AWS environment.
func NewManager(userCfg map[string]interface{}) (*OskManager, error) {
	var err error
	mgr := &OskManager{}

	if cfgPathRaw, ok := userCfg["config-file"]; ok {
		if cfgPath, ok := cfgPathRaw.(string); ok {
			err = mgr.initConfig(&cfgPath)
		} else {
			return nil, errors.New("option 'config-file' must be of type string")
		}
	} else {
		err = mgr.initConfig(nil)
	}
	if err != nil {
		return nil, err
	}

	if loggerRaw, ok := userCfg["logger"]; ok {
		if logger, ok := loggerRaw.(objstore.Logger); ok {
			mgr.Logger = logger
		} else {
			return nil, errors.New("option 'logger' must satisfy objstore.Logger")
		}
	} else {
		mgr.Logger = logrus.New()
	}

	if err := mgr.initClient(); err != nil {
		return nil, err
	}

	return mgr, nil
}

func (self *OskManager) initConfig(cfgPath *string) error {
	// This is a private viper context just for osk (so as not to
	// conflict with the importer's usage).
	self.Cfg = viper.New()

	self.Cfg.SetDefault("service.region", "us-west-2")
	self.Cfg.BindEnv("service.region", "AWS_DEFAULT_REGION")
	self.Cfg.SetDefault("service.endpoint", "")
	self.Cfg.SetDefault("service.project", "")

	self.Cfg.SetDefault("retry.enabled", true)
	self.Cfg.SetDefault("retry.maxFailures", 3)
	self.Cfg.SetDefault("retry.maxDuration", "")
	self.Cfg.SetDefault("backoff.initialDelay", "250ms")
	self.Cfg.SetDefault("backoff.maxDelay", "32s")

	self.Cfg.SetDefault("logging.requests", false)

	if cfgPath != nil {
		// Use config file from the flag.
		self.Cfg.SetConfigFile(*cfgPath)
		if err := self.Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "Failed to load config")
		}
		return nil
	}

	// Default search path is ./osk.* then ~/.osk.*; a missing file just
	// means defaults apply.
	home, err := homedir.Dir()
	if err != nil {
		return errors.Wrap(err, "Failed to resolve home directory")
	}
	self.Cfg.AddConfigPath(".")
	self.Cfg.AddConfigPath(home)
	self.Cfg.SetConfigName("osk")
	if err := self.Cfg.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "Failed to load config")
		}
	}
	return nil
}

func (self *OskManager) initClient() error {
	opts := &objstore.ClientOptions{
		ProjectID: self.Cfg.GetString("service.project"),
		Region:    self.Cfg.GetString("service.region"),
		Endpoint:  self.Cfg.GetString("service.endpoint"),
	}

	raw, err := awss3.NewClient(opts)
	if err != nil {
		return errors.Wrap(err, "Failed to initialize S3 transport")
	}

	var clientOpts []objstore.ClientOption
	if !self.Cfg.GetBool("retry.enabled") {
		clientOpts = append(clientOpts, objstore.WithoutRetry())
	} else {
		clientOpts = append(clientOpts, objstore.WithRetryPolicy(self.retryPolicy()))
		initial, err := time.ParseDuration(self.Cfg.GetString("backoff.initialDelay"))
		if err != nil {
			return errors.Wrap(err, "Invalid backoff.initialDelay")
		}
		max, err := time.ParseDuration(self.Cfg.GetString("backoff.maxDelay"))
		if err != nil {
			return errors.Wrap(err, "Invalid backoff.maxDelay")
		}
		clientOpts = append(clientOpts,
			objstore.WithBackoffPolicy(objstore.NewExponentialBackoffPolicy(initial, max)))
	}
	if self.Cfg.GetBool("logging.requests") {
		clientOpts = append(clientOpts,
			objstore.WithLogger(self.Logger.WithField("module", "objstore")))
	}

	self.Client = objstore.NewClient(raw, clientOpts...)
	return nil
}

func (self *OskManager) retryPolicy() objstore.RetryPolicy {
	// A configured time budget takes precedence over the failure count.
	if raw := self.Cfg.GetString("retry.maxDuration"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return objstore.NewLimitedTimeRetryPolicy(d)
		}
		self.Logger.Warnf("Ignoring invalid retry.maxDuration: %v", raw)
	}
	return objstore.NewLimitedErrorCountRetryPolicy(self.Cfg.GetInt("retry.maxFailures"))
}
