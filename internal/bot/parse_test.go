package bot

import (
	"testing"
	"time"
)

func TestParseDateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "first archive day",
			args: "16 6 1995",
			want: time.Date(1995, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "extra whitespace",
			args: "  4   7   2022 ",
			want: time.Date(2022, 7, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "too few parts",
			args:    "16 6",
			wantErr: true,
		},
		{
			name:    "non-numeric day",
			args:    "sixteen 6 1995",
			wantErr: true,
		},
		{
			name:    "non-numeric month",
			args:    "16 June 1995",
			wantErr: true,
		},
		{
			name:    "non-numeric year",
			args:    "16 6 MCMXCV",
			wantErr: true,
		},
		{
			name:    "day overflows the month",
			args:    "31 2 2000",
			wantErr: true,
		},
		{
			name:    "month out of range",
			args:    "1 13 2000",
			wantErr: true,
		},
		{
			name:    "empty",
			args:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateArgs(%q) = %s, want %s", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseCountArg(t *testing.T) {
	tests := []struct {
		name    string
		args    string
		want    int
		wantErr bool
	}{
		{
			name: "empty defaults to one",
			args: "",
			want: 1,
		},
		{
			name: "explicit count",
			args: "5",
			want: 5,
		},
		{
			name: "upper bound",
			args: "10",
			want: 10,
		},
		{
			name:    "zero",
			args:    "0",
			wantErr: true,
		},
		{
			name:    "negative",
			args:    "-3",
			wantErr: true,
		},
		{
			name:    "above the cap",
			args:    "11",
			wantErr: true,
		},
		{
			name:    "not a number",
			args:    "many",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCountArg(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCountArg(%q) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
