package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizeClass(t *testing.T) {
	tests := []struct {
		in      string
		want    SizeClass
		wantErr bool
	}{
		{"", Medium, false},
		{"short", Short, false},
		{"MEDIUM", Medium, false},
		{"long", Long, false},
		{"very_long", VeryLong, false},
		{"very-long", VeryLong, false},
		{" Very-Long ", VeryLong, false},
		{"huge", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSizeClass(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown size class")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnrichmentsFor(t *testing.T) {
	assert.Nil(t, enrichmentsFor(Short))
	assert.Nil(t, enrichmentsFor(Medium))
	assert.Equal(t, []Section{Methodology}, enrichmentsFor(Long))
	assert.Equal(t, []Section{Examples, Workflow, Considerations}, enrichmentsFor(VeryLong))
}
