package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	enabled  bool
	statErr  error
	enables  int
	disables int
}

func (service *recordingService) GetConfigDir() (string, error) { return "", nil }

func (service *recordingService) EnableAutostart(string, string) error {
	service.enables++
	service.enabled = true
	return nil
}

func (service *recordingService) DisableAutostart(string) error {
	service.disables++
	service.enabled = false
	return nil
}

func (service *recordingService) AutostartEnabled(string) (bool, error) {
	return service.enabled, service.statErr
}

func TestSyncAutostartOnlyActsOnChange(t *testing.T) {
	service := &recordingService{}

	require.NoError(t, SyncAutostart(service, DefaultAppName, false))
	assert.Zero(t, service.enables+service.disables)

	require.NoError(t, SyncAutostart(service, DefaultAppName, true))
	require.NoError(t, SyncAutostart(service, DefaultAppName, true))
	assert.Equal(t, 1, service.enables)

	require.NoError(t, SyncAutostart(service, DefaultAppName, false))
	assert.Equal(t, 1, service.disables)
}

func TestSyncAutostartReportsStatusError(t *testing.T) {
	service := &recordingService{statErr: errors.New("denied")}

	err := SyncAutostart(service, DefaultAppName, true)

	assert.ErrorContains(t, err, "denied")
	assert.Zero(t, service.enables)
}

func TestSlugName(t *testing.T) {
	assert.Equal(t, "focus-track", slugName(" Focus Track "))
	assert.Equal(t, DefaultAppName, slugName(""))
}
