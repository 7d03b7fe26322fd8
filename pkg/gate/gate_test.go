package gate_test

import (
	"testing"

	"github.com/gutendex/explorer/pkg/admission"
	"github.com/gutendex/explorer/pkg/gate"
	"github.com/gutendex/explorer/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chrome70UA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.77 Safari/537.36"
	chrome49UA = "Mozilla/5.0 (Windows NT 6.1; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/49.0.2623.112 Safari/537.36"
	ie11UA     = "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko"
	tridentUA  = "Mozilla/5.0 (Windows NT 6.3; Trident/7.0; Touch) like Gecko"
	edge16UA   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36 Edge/16.16299"
)

func TestGate_Decide(t *testing.T) {
	t.Parallel()
	g := gate.New()

	tests := []struct {
		name     string
		ua       string
		state    gate.State
		identity useragent.Identity
		parseErr bool
	}{
		{
			name:     "supported Chrome",
			ua:       chrome70UA,
			state:    gate.StateAdmitted,
			identity: useragent.Identity{Name: "chrome", Version: 70},
		},
		{
			name:     "outdated Chrome",
			ua:       chrome49UA,
			state:    gate.StateRejected,
			identity: useragent.Identity{Name: "chrome", Version: 49},
		},
		{
			name:     "Internet Explorer is not allowlisted",
			ua:       ie11UA,
			state:    gate.StateRejected,
			identity: useragent.Identity{Name: "internet explorer", Version: 11},
		},
		{
			name:     "legacy Edge reported as outdated opera",
			ua:       edge16UA,
			state:    gate.StateRejected,
			identity: useragent.Identity{Name: "opera", Version: 16},
		},
		{name: "empty", ua: "", state: gate.StateRejected, parseErr: true},
		{name: "garbage", ua: "%%% not a browser %%%", state: gate.StateRejected, parseErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := g.Decide(tc.ua)
			assert.Equal(t, tc.state, d.State)
			assert.Equal(t, tc.state == gate.StateAdmitted, d.Admitted())
			if tc.parseErr {
				assert.ErrorIs(t, d.Err, useragent.ErrUnsupportedBrowser)
				return
			}
			require.NoError(t, d.Err)
			assert.Equal(t, tc.identity, d.Identity)
		})
	}
}

func TestGate_Decide_UnversionedTrident(t *testing.T) {
	t.Parallel()

	d := gate.New().Decide(tridentUA)
	assert.Equal(t, gate.StateRejected, d.State)
	assert.NoError(t, d.Err)
	assert.False(t, d.Identity.HasVersion())

	permissive := gate.New(gate.WithPolicy(admission.New(admission.Requirement{Name: "internet explorer"})))
	assert.False(t, permissive.Decide(tridentUA).Admitted(), "NaN never meets a threshold")
	assert.True(t, permissive.Decide(ie11UA).Admitted())
}

func TestGate_Decide_Idempotent(t *testing.T) {
	t.Parallel()
	g := gate.New()

	for _, ua := range []string{chrome70UA, chrome49UA, ie11UA, tridentUA, edge16UA, "", "junk"} {
		first := g.Decide(ua)
		second := g.Decide(ua)
		assert.Equal(t, first.State, second.State, ua)
	}
}

func TestGate_Options(t *testing.T) {
	t.Parallel()

	g := gate.New(
		gate.WithParser(useragent.New(useragent.WithRules(useragent.TridentRule(), useragent.ProductRule()))),
		gate.WithPolicy(admission.New(admission.Requirement{Name: "chrome", MinVersion: 58})),
	)
	d := g.Decide(edge16UA)
	assert.True(t, d.Admitted())
	assert.Equal(t, useragent.Identity{Name: "chrome", Version: 58}, d.Identity)

	assert.NotPanics(t, func() { gate.New(gate.WithParser(nil)).Decide(chrome70UA) })
}

func TestDefaultModules(t *testing.T) {
	t.Parallel()

	mods := gate.DefaultModules()
	require.Len(t, mods, 2)
	assert.Equal(t, "/static/scripts/api-explorer/get-results.js", mods[0].Path())
	assert.Equal(t, "/static/scripts/api-explorer/index.js", mods[1].Path())
}
