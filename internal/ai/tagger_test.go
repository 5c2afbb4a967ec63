package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCampaignTags(t *testing.T) {
	tests := []struct {
		name     string
		campaign string
		message  string
		want     []string
	}{
		{
			name:     "vip keyword tags high value",
			campaign: "VIP sale",
			message:  "Exclusive deal for you",
			want:     []string{"High Value"},
		},
		{
			name:     "win-back keywords",
			campaign: "We miss you",
			message:  "Come back for 20% off",
			want:     []string{"Win-back"},
		},
		{
			name:     "multiple groups match independently",
			campaign: "New launch for VIP customers",
			message:  "Thank you for being with us",
			want:     []string{"High Value", "Product Launch", "Appreciation"},
		},
		{
			name:     "no keywords fall back to General",
			campaign: "Quarterly update",
			message:  "Here is our quarterly catalogue",
			want:     []string{"General"},
		},
		{
			name:     "re-engagement keywords",
			campaign: "Inactive shoppers",
			message:  "A re-engagement push",
			want:     []string{"Re-engagement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateCampaignTags(tt.campaign, tt.message))
		})
	}
}
