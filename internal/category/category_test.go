package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		mcc  int
		want Category
	}{
		{"fast food is dining", 5814, Dining},
		{"restaurants are dining", 5812, Dining},
		{"supermarkets are grocery", 5411, Grocery},
		{"service stations are petrol", 5541, Petrol},
		{"airlines are travel", 3000, Travel},
		{"cinemas are entertainment", 7832, Entertainment},
		{"bookstores are shopping", 5942, Shopping},
		{"commuter rail is transport", 4111, Transport},
		{"phone services are telecommunications", 4814, Telecommunications},
		{"schools are education", 8211, Education},
		{"utilities are electricity", 4900, Electricity},
		{"unknown mcc falls back to others", 5712, Others},
		{"zero falls back to others", 0, Others},
		{"negative falls back to others", -1, Others},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.mcc))
		})
	}
}

// 5499 appears in both the dining and grocery tables; dining is checked
// first, so dining must win.
func TestClassifyOverlapPrefersDining(t *testing.T) {
	assert.Equal(t, Dining, Classify(5499))
}

// 4829 appears in the telecommunications table; it is also a common card
// exclusion, but exclusions are a card concern, not a classification one.
func TestClassifyWireTransfers(t *testing.T) {
	assert.Equal(t, Telecommunications, Classify(4829))
}
