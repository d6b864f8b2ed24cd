package web

import "testing"

func Test_updateScore_Validate(t *testing.T) {
	tests := []struct {
		name    string
		score   updateScore
		wantErr bool
	}{
		{
			name:    "regulation win",
			score:   updateScore{Team1Score: 3, Team2Score: 1, Result: "REG"},
			wantErr: false,
		},
		{
			name:    "overtime win",
			score:   updateScore{Team1Score: 2, Team2Score: 3, Result: "OT"},
			wantErr: false,
		},
		{
			name:    "shootout win",
			score:   updateScore{Team1Score: 4, Team2Score: 3, Result: "SO"},
			wantErr: false,
		},
		{
			name:    "tie",
			score:   updateScore{Team1Score: 2, Team2Score: 2, Result: "REG"},
			wantErr: true,
		},
		{
			name:    "negative score",
			score:   updateScore{Team1Score: -1, Team2Score: 2, Result: "REG"},
			wantErr: true,
		},
		{
			name:    "unknown result type",
			score:   updateScore{Team1Score: 3, Team2Score: 1, Result: "PEN"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.score.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_setOverride_Validate(t *testing.T) {
	tests := []struct {
		name     string
		override setOverride
		wantErr  bool
	}{
		{
			name:     "valid",
			override: setOverride{Code: "A1", TeamCode: "CAN"},
			wantErr:  false,
		},
		{
			name:     "lowercase team is normalized",
			override: setOverride{Code: "seed1", TeamCode: "can"},
			wantErr:  false,
		},
		{
			name:     "empty code",
			override: setOverride{Code: "  ", TeamCode: "CAN"},
			wantErr:  true,
		},
		{
			name:     "placeholder as team",
			override: setOverride{Code: "A1", TeamCode: "W(57)"},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.override.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
