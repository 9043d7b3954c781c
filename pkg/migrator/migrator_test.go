package migrator

import (
	"fmt"
	"sync"
	"testing"

	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/stub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/migrations"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func newStub(t *testing.T, version int, dirty bool) *stub.Stub {
	t.Helper()
	driver, err := stub.WithInstance(nil, &stub.Config{})
	require.NoError(t, err)
	s := driver.(*stub.Stub)
	s.CurrentVersion = version
	s.IsDirty = dirty
	return s
}

func TestUpWithDriver_FreshDatabase(t *testing.T) {
	s := newStub(t, database.NilVersion, false)
	log := &recordingLogger{}

	err := UpWithDriver(s, "stub", migrations.FS, log)

	require.NoError(t, err)
	assert.Equal(t, 1, s.CurrentVersion)
	assert.False(t, s.IsDirty)
	require.Len(t, s.MigrationSequence, 1)
	assert.Contains(t, s.MigrationSequence[0], "parking_spots")
	assert.Empty(t, log.warns)
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "Migrations applied")
}

func TestUpWithDriver_NoChangeIsSuccess(t *testing.T) {
	s := newStub(t, 1, false)
	log := &recordingLogger{}

	err := UpWithDriver(s, "stub", migrations.FS, log)

	require.NoError(t, err)
	assert.Equal(t, 1, s.CurrentVersion)
	assert.Empty(t, s.MigrationSequence)
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "up to date (version=1)")
}

func TestUpWithDriver_ForcesDirtyVersion(t *testing.T) {
	s := newStub(t, 1, true)
	log := &recordingLogger{}

	err := UpWithDriver(s, "stub", migrations.FS, log)

	require.NoError(t, err)
	assert.Equal(t, 1, s.CurrentVersion)
	assert.False(t, s.IsDirty)
	assert.Empty(t, s.MigrationSequence)
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "dirty database state at version 1")
}
