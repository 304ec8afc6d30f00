package options

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/carconnectivity/connector-skoda/internal/skoda/apidebug"
	"github.com/carconnectivity/connector-skoda/pkg/log"
)

// InspectOptions aggregates the flags of the skoda-inspect command.
type InspectOptions struct {
	Log *log.Options

	// ShowExtraKeys escalates unexpected-key reports to INFO. Unset, the
	// value comes from the environment.
	ShowExtraKeys bool

	showExtraKeysSet bool
}

func NewInspectOptions() *InspectOptions {
	return &InspectOptions{
		Log: log.NewOptions(),
	}
}

func (o *InspectOptions) AddFlags(fs *pflag.FlagSet) {
	o.Log.AddFlags(fs)
	fs.BoolVar(&o.ShowExtraKeys, "show-extra-keys", false,
		"Report unexpected API keys at INFO instead of DEBUG (overrides CARCONNECTIVITY_SHOW_EXTRA_KEYS)")
}

func (o *InspectOptions) Complete(fs *pflag.FlagSet) {
	o.showExtraKeysSet = fs.Changed("show-extra-keys")
}

func (o *InspectOptions) Validate() error {
	if errs := o.Log.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid log options: %v", errs)
	}
	return nil
}

// Config resolves the API debug configuration: the command line flag wins,
// otherwise the environment decides.
func (o *InspectOptions) Config() *apidebug.Config {
	cfg := apidebug.LoadConfig()
	if o.showExtraKeysSet {
		cfg.ShowExtraKeys = o.ShowExtraKeys
	}
	return cfg
}
