package model

import "testing"

func TestPlaybackState_IsActive(t *testing.T) {
	tests := []struct {
		state    PlaybackState
		expected bool
	}{
		{PlaybackStateIdle, false},
		{PlaybackStateLoading, true},
		{PlaybackStatePlaying, true},
		{PlaybackStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("PlaybackState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestPlaybackState_IsFinished(t *testing.T) {
	tests := []struct {
		state    PlaybackState
		expected bool
	}{
		{PlaybackStateIdle, false},
		{PlaybackStateLoading, false},
		{PlaybackStatePlaying, false},
		{PlaybackStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("PlaybackState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestPlaybackState_String(t *testing.T) {
	if PlaybackStatePlaying.String() != "Playing" {
		t.Errorf("PlaybackState.String() = %s, expected Playing", PlaybackStatePlaying.String())
	}
	if CatalogStatusError.String() != "Error" {
		t.Errorf("CatalogStatus.String() = %s, expected Error", CatalogStatusError.String())
	}
}
