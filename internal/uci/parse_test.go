package uci

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/ostbo/uci-engine-sdk-go/internal/errors"
)

func TestParseOptionLine_Spin(t *testing.T) {
	desc, err := ParseOptionLine("option name Contempt type spin default 24 min -100 max 100")

	require.NoError(t, err)
	require.NotNil(t, desc)
	require.Equal(t, "Contempt", desc.Name)
	require.Equal(t, OptionInt, desc.Type)
	require.Equal(t, 24, desc.Default)
	require.Equal(t, -100, desc.Min)
	require.Equal(t, 100, desc.Max)
}

func TestParseOptionLine_Check(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantDefault bool
	}{
		{
			name:        "false default",
			line:        "option name Ponder type check default false",
			wantDefault: false,
		},
		{
			name:        "true default",
			line:        "option name UCI_AnalyseMode type check default true",
			wantDefault: true,
		},
		{
			name:        "malformed default parses as false",
			line:        "option name Ponder type check default banana",
			wantDefault: false,
		},
		{
			name:        "case-sensitive true token",
			line:        "option name Ponder type check default True",
			wantDefault: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseOptionLine(tt.line)

			require.NoError(t, err)
			require.NotNil(t, desc)
			require.Equal(t, OptionBool, desc.Type)
			require.Equal(t, tt.wantDefault, desc.Default)
		})
	}
}

func TestParseOptionLine_Combo(t *testing.T) {
	desc, err := ParseOptionLine(
		"option name Analysis Contempt type combo default Both var Off var White var Black var Both",
	)

	require.NoError(t, err)
	require.NotNil(t, desc)
	require.Equal(t, "Analysis Contempt", desc.Name)
	require.Equal(t, OptionEnum, desc.Type)
	require.Equal(t, "Both", desc.Default)
	require.Equal(t, map[string]string{
		"off":   "Off",
		"white": "White",
		"black": "Black",
		"both":  "Both",
	}, desc.Values)
}

func TestParseOptionLine_String(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantName    string
		wantDefault string
	}{
		{
			name:        "plain default",
			line:        "option name SyzygyPath type string default <empty>",
			wantName:    "SyzygyPath",
			wantDefault: "<empty>",
		},
		{
			name:        "empty default",
			line:        "option name Debug Log File type string default",
			wantName:    "Debug Log File",
			wantDefault: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseOptionLine(tt.line)

			require.NoError(t, err)
			require.NotNil(t, desc)
			require.Equal(t, tt.wantName, desc.Name)
			require.Equal(t, OptionString, desc.Type)
			require.Equal(t, tt.wantDefault, desc.Default)
		})
	}
}

func TestParseOptionLine_ButtonWithDefaultKeyword(t *testing.T) {
	desc, err := ParseOptionLine("option name Clear Hash type button default")

	require.NoError(t, err)
	require.NotNil(t, desc)
	require.Equal(t, "Clear Hash", desc.Name)
	require.Equal(t, OptionAction, desc.Type)
	require.Nil(t, desc.Default)
}

func TestParseOptionLine_NonMatchingLines(t *testing.T) {
	lines := []string{
		"id name Stockfish 16",
		"id author the Stockfish developers",
		"uciok",
		"readyok",
		"info depth 10 score cp 30",
		"bestmove e2e4",
		"",
		"option name Clear Hash type button", // no default keyword
		"garbage",
	}

	for _, line := range lines {
		desc, err := ParseOptionLine(line)

		require.NoError(t, err, "line %q", line)
		require.Nil(t, desc, "line %q", line)
	}
}

func TestParseOptionLine_MalformedSpin(t *testing.T) {
	desc, err := ParseOptionLine("option name Contempt type spin default abc min -100 max 100")

	require.Nil(t, desc)
	require.Error(t, err)

	var malformed *sdkerrors.MalformedOptionError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Line, "Contempt")
}

func TestParseOptionLine_SpinMissingBounds(t *testing.T) {
	desc, err := ParseOptionLine("option name Threads type spin default 1")

	require.Nil(t, desc)

	var malformed *sdkerrors.MalformedOptionError
	require.ErrorAs(t, err, &malformed)
}

func TestParseOptionLine_UnsupportedType(t *testing.T) {
	desc, err := ParseOptionLine("option name Weird type filename default x")

	require.Nil(t, desc)

	var malformed *sdkerrors.MalformedOptionError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Reason, "filename")
}

func TestParseOptionLine_Deterministic(t *testing.T) {
	line := "option name Hash type spin default 16 min 1 max 33554432"

	first, err := ParseOptionLine(line)
	require.NoError(t, err)

	second, err := ParseOptionLine(line)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
