package levlog

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ThresholdEnv names the environment variable read by ConfigureFromEnv.
const ThresholdEnv = "LEVLOG_THRESHOLD"

var getenv = os.Getenv // to facilitate testing

// ConfigureFromEnv sets the threshold of d from $LEVLOG_THRESHOLD, e.g.
// LEVLOG_THRESHOLD=debug. An unset or blank variable leaves d unchanged.
func ConfigureFromEnv(d *Dispatcher) error {
	v := strings.TrimSpace(getenv(ThresholdEnv))
	if v == "" {
		return nil
	}
	if err := d.SetThresholdName(v); err != nil {
		return errors.Wrap(err, ThresholdEnv)
	}
	return nil
}
