package gate_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/gutendex/explorer/pkg/gate"
	"github.com/gutendex/explorer/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	fallbacks []string
	attached  []gate.Module
	failOn    string
}

func (r *recordingRenderer) ShowFallback(_ context.Context, notice string) error {
	r.fallbacks = append(r.fallbacks, notice)
	return nil
}

func (r *recordingRenderer) Attach(_ context.Context, m gate.Module) error {
	if m.Name == r.failOn {
		return errors.New("attach failed")
	}
	r.attached = append(r.attached, m)
	return nil
}

func TestBootstrapper_Run(t *testing.T) {
	t.Parallel()

	t.Run("admitted browser attaches modules in order", func(t *testing.T) {
		t.Parallel()
		r := &recordingRenderer{}
		d, err := gate.NewBootstrapper(nil).Run(context.Background(), chrome70UA, r)
		require.NoError(t, err)

		assert.True(t, d.Admitted())
		assert.Empty(t, r.fallbacks)
		require.Len(t, r.attached, 2)
		assert.Equal(t, gate.ModuleGetResults, r.attached[0].Name)
		assert.Equal(t, gate.ModuleIndex, r.attached[1].Name)
	})

	t.Run("outdated browser gets the fallback once", func(t *testing.T) {
		t.Parallel()
		r := &recordingRenderer{}
		d, err := gate.NewBootstrapper(nil).Run(context.Background(), chrome49UA, r)
		require.NoError(t, err)

		assert.Equal(t, gate.StateRejected, d.State)
		assert.Equal(t, []string{gate.FallbackNotice}, r.fallbacks)
		assert.Empty(t, r.attached)
	})

	t.Run("unrecognized user agent gets the fallback", func(t *testing.T) {
		t.Parallel()
		r := &recordingRenderer{}
		d, err := gate.NewBootstrapper(nil).Run(context.Background(), "", r)
		require.NoError(t, err)

		assert.Error(t, d.Err)
		assert.Equal(t, []string{"Please use the latest version of Firefox, Safari, or Chrome to view this page."}, r.fallbacks)
		assert.Empty(t, r.attached)
	})

	t.Run("custom modules", func(t *testing.T) {
		t.Parallel()
		r := &recordingRenderer{}
		mods := gate.Modules("/assets/", "a", "b", "c")
		boot := gate.NewBootstrapper(gate.New(), gate.WithModules(mods...))
		_, err := boot.Run(context.Background(), chrome70UA, r)
		require.NoError(t, err)
		assert.Equal(t, mods, r.attached)
		assert.Equal(t, mods, boot.Modules())
	})

	t.Run("renderer failure", func(t *testing.T) {
		t.Parallel()
		r := &recordingRenderer{failOn: gate.ModuleIndex}
		d, err := gate.NewBootstrapper(nil).Run(context.Background(), chrome70UA, r)
		require.ErrorIs(t, err, gate.ErrRender)
		assert.True(t, d.Admitted())
		assert.Len(t, r.attached, 1)
	})

	t.Run("nil renderer", func(t *testing.T) {
		t.Parallel()
		d, err := gate.NewBootstrapper(nil).Run(context.Background(), chrome70UA, nil)
		require.ErrorIs(t, err, gate.ErrNilRenderer)
		assert.Equal(t, gate.StatePending, d.State)
	})
}

func TestBootstrapper_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	_, err := gate.NewBootstrapper(nil, gate.WithLogger(log)).Run(context.Background(), chrome49UA, &recordingRenderer{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "browser gate decided")
	assert.Contains(t, out, `"browser":"chrome/49"`)
	assert.Contains(t, out, `"state":"rejected"`)
}
