package levlog

import (
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDispatcherHasThresholdError(t *testing.T) {
	defer reset()
	reset()

	assert.Equal(t, ErrorLevel, Default().Threshold())
}

func TestDefaultFatalDeliversAboveThreshold(t *testing.T) {
	defer reset()
	spy := newSpy("com.example.spy")
	RegisterAll(spy)
	SetThreshold(ErrorLevel)

	Fatal("Fatal")

	assert.Equal(t, call{"FATAL", "Fatal"}, spy.last())
}

func TestDefaultDebugIgnoredBelowThreshold(t *testing.T) {
	defer reset()
	spy := newSpy("com.example.spy")
	RegisterAll(spy)
	SetThreshold(ErrorLevel)

	Debug("Debug")

	assert.Equal(t, call{}, spy.last())
}

func TestDefaultHelpersUseFixedSeverities(t *testing.T) {
	defer reset()
	spy := newSpy("spy")
	RegisterAll(spy)
	require.NoError(t, SetThresholdName("info"))

	Info("i")
	Debug("d")
	Warn("w")
	Error("e")
	Fatal("f")
	Infof("%s", "i")
	Debugf("%s", "d")
	Warnf("%s", "w")
	Errorf("%s", "e")
	Fatalf("%s", "f")
	Write(WarnLevel, "direct")

	want := []call{
		{"INFO", "i"}, {"DEBUG", "d"}, {"WARN", "w"}, {"ERROR", "e"}, {"FATAL", "f"},
		{"INFO", "i"}, {"DEBUG", "d"}, {"WARN", "w"}, {"ERROR", "e"}, {"FATAL", "f"},
		{"WARN", "direct"},
	}
	assert.Equal(t, want, spy.calls)
}

func TestDefaultRegistrationHelpers(t *testing.T) {
	defer reset()
	spy := newSpy("spy")

	RegisterForErrorLevels(spy)
	assert.False(t, HasDestinations(WarnLevel))
	assert.True(t, HasDestinations(ErrorLevel))
	assert.True(t, HasDestinations(FatalLevel))

	Register(WarnLevel, spy)
	assert.True(t, HasDestinations(WarnLevel))

	Unregister(WarnLevel, spy)
	assert.False(t, HasDestinations(WarnLevel))

	RegisterAll(spy)
	UnregisterAll(spy)
	for _, s := range Severities {
		assert.False(t, HasDestinations(s), "severity %s", s)
	}
}

func TestConfigureFromEnvSetsThreshold(t *testing.T) {
	defer reset()
	getenv = func(k string) string {
		if k == ThresholdEnv {
			return "debug"
		}
		return ""
	}
	d := New()

	require.NoError(t, ConfigureFromEnv(d))

	assert.Equal(t, DebugLevel, d.Threshold())
}

func TestConfigureFromEnvIgnoresUnsetVariable(t *testing.T) {
	defer reset()
	getenv = func(string) string { return "  " }
	d := New()

	require.NoError(t, ConfigureFromEnv(d))

	assert.Equal(t, ErrorLevel, d.Threshold())
}

func TestConfigureFromEnvReturnsErrorWhenInvalid(t *testing.T) {
	defer reset()
	getenv = func(string) string { return "loud" }
	d := New()

	err := ConfigureFromEnv(d)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ThresholdEnv)
	assert.Equal(t, ErrorLevel, d.Threshold())
}

func TestCaptureStandardLogRedirectsToDispatcher(t *testing.T) {
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	}()
	d := New()
	spy := newSpy("spy")
	d.Register(WarnLevel, spy)
	d.SetThreshold(InfoLevel)

	CaptureStandardLog(d, WarnLevel)
	log.Printf("standard %d", 42)

	assert.Equal(t, []call{{"WARN", "standard 42"}}, spy.calls)
}

func TestCaptureStandardLogRespectsThreshold(t *testing.T) {
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	}()
	d := New()
	spy := newSpy("spy")
	d.RegisterAll(spy)

	CaptureStandardLog(d, InfoLevel)
	log.Print("quiet")

	assert.Zero(t, spy.count())
}
