// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminURL(t *testing.T) {
	got, err := AdminURL("https://santa.example/", xmasData)
	require.NoError(t, err)

	want := "https://santa.example/?data=" + strings.TrimSuffix(xmasData, "==") + "%3D%3D&admin=true"
	assert.Equal(t, want, got)

	// A bare host gets the root path, as a browser would print it
	got, err = AdminURL("https://santa.example", "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://santa.example/?data=abc&admin=true", got)
}

func TestParticipantURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		data string
		user string
		want string
	}{
		{
			"name is encoded twice",
			"https://santa.example/app", "abc+/=", "Zoë & Co",
			"https://santa.example/app?data=abc%2B%2F%3D&user=Zo%25C3%25AB%2520%2526%2520Co",
		},
		{
			"existing query is kept",
			"https://santa.example/app?lang=fr", "abc", "a*b~c'(x)!",
			"https://santa.example/app?lang=fr&data=abc&user=a*b%7Ec%27%28x%29%21",
		},
		{
			"existing data is replaced in place",
			"https://santa.example/?data=old&lang=de&data=older", "new", "Bob",
			"https://santa.example/?data=new&lang=de&user=Bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParticipantURL(tt.base, tt.data, tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildURL_InvalidBase(t *testing.T) {
	for _, base := range []string{"", "not a url", "/relative/path", "://missing-scheme"} {
		_, err := AdminURL(base, "abc")
		assert.ErrorIs(t, err, ErrInvalidBaseURL, "base %q", base)
	}
}

func TestParseParams_RoundTrip(t *testing.T) {
	names := []string{"Bob", "Zoë & Co", "a+b", "100% elf", "🎅 Santa", "x=y&z"}

	for _, name := range names {
		link, err := ParticipantURL("https://santa.example/", noelData, name)
		require.NoError(t, err)

		query := link[strings.Index(link, "?"):]
		params, err := ParseParams(query)
		require.NoError(t, err)

		assert.Equal(t, noelData, params.Data)
		assert.Equal(t, name, params.User)
		assert.Empty(t, params.Admin)

		mode, err := params.Mode()
		require.NoError(t, err)
		assert.Equal(t, ModeParticipant, mode)
	}
}

func TestParseParams_Admin(t *testing.T) {
	link, err := AdminURL("https://santa.example/", xmasData)
	require.NoError(t, err)

	params, err := ParseParams(link[strings.Index(link, "?")+1:])
	require.NoError(t, err)
	assert.Equal(t, xmasData, params.Data)
	assert.Equal(t, "true", params.Admin)

	mode, err := params.Mode()
	require.NoError(t, err)
	assert.Equal(t, ModeAdmin, mode)
}

func TestParseParams_BadUserEncoding(t *testing.T) {
	_, err := ParseParams("data=abc&user=%25E0%25A4%25A")
	assert.Error(t, err)
}

func TestParamsMode(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    Mode
		wantErr error
	}{
		{"no data", Params{User: "Bob"}, ModeNone, nil},
		{"participant wins over admin", Params{Data: "d", User: "Bob", Admin: "true"}, ModeParticipant, nil},
		{"admin", Params{Data: "d", Admin: "true"}, ModeAdmin, nil},
		{"data only", Params{Data: "d"}, ModeNone, ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Mode()
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
