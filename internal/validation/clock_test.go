package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTime(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		isEndTime bool
		wantErr   bool
	}{
		{name: "midnight start", in: "00:00"},
		{name: "quarter past", in: "09:15"},
		{name: "closing 24:00", in: "24:00", isEndTime: true},
		{name: "24:00 as start", in: "24:00", wantErr: true},
		{name: "24:15 never", in: "24:15", isEndTime: true, wantErr: true},
		{name: "off grid minute", in: "10:07", isEndTime: true, wantErr: true},
		{name: "hour too big", in: "25:00", isEndTime: true, wantErr: true},
		{name: "minute too big", in: "10:60", wantErr: true},
		{name: "single digit hour", in: "9:00", wantErr: true},
		{name: "no colon", in: "0900", wantErr: true},
		{name: "two colons", in: "09:00:00", wantErr: true},
		{name: "letters", in: "ab:cd", wantErr: true},
		{name: "signed", in: "+9:00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidTime(tt.in, tt.isEndTime)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestValidTimeInRange(t *testing.T) {
	tests := []struct {
		name                         string
		start, end, opening, closing string
		wantErr                      bool
	}{
		{name: "inside hours", start: "09:00", end: "10:00", opening: "08:00", closing: "22:00"},
		{name: "start after end", start: "10:00", end: "09:00", opening: "08:00", closing: "22:00", wantErr: true},
		{name: "same hour ordered", start: "09:15", end: "09:45", opening: "08:00", closing: "22:00"},
		{name: "same hour equal", start: "09:15", end: "09:15", opening: "08:00", closing: "22:00", wantErr: true},
		{name: "before opening minute", start: "08:00", end: "09:00", opening: "08:30", closing: "22:00", wantErr: true},
		{name: "exactly at opening", start: "08:30", end: "09:00", opening: "08:30", closing: "22:00"},
		{name: "after closing minute", start: "21:00", end: "22:45", opening: "08:00", closing: "22:30", wantErr: true},
		{name: "ends at closing", start: "21:00", end: "24:00", opening: "08:00", closing: "24:00"},
		{name: "before opening hour", start: "07:00", end: "09:00", opening: "08:00", closing: "22:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidTimeInRange(tt.start, tt.end, tt.opening, tt.closing)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "01/15/2023"},
		{in: "12/31/1900"},
		{in: "02/31/2020"},
		{in: "00/10/2020", wantErr: true},
		{in: "13/10/2020", wantErr: true},
		{in: "01/00/2020", wantErr: true},
		{in: "01/32/2020", wantErr: true},
		{in: "01/10/1899", wantErr: true},
		{in: "01/10/2025", wantErr: true},
		{in: "1/10/2020", wantErr: true},
		{in: "01/10/20", wantErr: true},
		{in: "01-10-2020", wantErr: true},
		{in: "0a/10/2020", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{name: "strong", in: "Secret1!"},
		{name: "brackets count as special", in: "abcD3[]x"},
		{name: "too short", in: "Se1!", wantErr: "Password must be at least 8 characters long"},
		{name: "space", in: "Secret 1!", wantErr: "Password must not contain whitespace"},
		{name: "tab", in: "Secret1!\t", wantErr: "Password must not contain whitespace"},
		{name: "no upper", in: "secret1!", wantErr: "Password must contain an uppercase character, number, and special character"},
		{name: "no digit", in: "Secret!!", wantErr: "Password must contain an uppercase character, number, and special character"},
		{name: "no special", in: "Secret12", wantErr: "Password must contain an uppercase character, number, and special character"},
		{name: "invalid char", in: "Secret1!é", wantErr: "Password contains invalid characters"},
		{name: "backtick not special", in: "Secret1!`", wantErr: "Password contains invalid characters"},
		{name: "empty", in: "", wantErr: "Password not provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckPassword(tt.in)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}
