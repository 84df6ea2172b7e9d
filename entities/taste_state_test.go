package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestCalculateState(t *testing.T) {
	tests := []struct {
		name           string
		comment        string
		mediaIDs       []string
		recommendState int
		expected       int
	}{
		{"empty default", "", nil, RecommendDefault, StateDefault},
		{"empty recommend", "", nil, RecommendYes, StateRecommend},
		{"empty not recommend", "", nil, RecommendNo, StateNotRecommend},
		{"comment default", "tasty", nil, RecommendDefault, StateComment},
		{"comment recommend", "tasty", nil, RecommendYes, StateCommentAndRecommend},
		{"comment not recommend", "tasty", nil, RecommendNo, StateCommentAndNotRecommend},
		{"media default", "", []string{"m1"}, RecommendDefault, StateMedia},
		{"media recommend", "", []string{"m1"}, RecommendYes, StateMediaAndRecommend},
		{"media not recommend", "", []string{"m1"}, RecommendNo, StateMediaAndNotRecommend},
		{"comment and media default", "tasty", []string{"m1"}, RecommendDefault, StateCommentAndMedia},
		{"comment and media recommend", "tasty", []string{"m1"}, RecommendYes, StateCommentAndMediaAndRecommend},
		{"comment and media not recommend", "tasty", []string{"m1"}, RecommendNo, StateCommentAndMediaAndNotRecommend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taste := &Taste{
				Comment:        tt.comment,
				MediaIDs:       datatypes.JSONSlice[string](tt.mediaIDs),
				RecommendState: tt.recommendState,
			}
			assert.Equal(t, tt.expected, taste.CalculateState())
		})
	}
}

func TestCalculateStateIgnoresWhitespaceComment(t *testing.T) {
	taste := &Taste{Comment: "   \t ", RecommendState: RecommendYes}
	assert.Equal(t, StateRecommend, taste.CalculateState())
}

func TestCalculateStateIgnoresTagsAndMood(t *testing.T) {
	taste := &Taste{
		RecommendState: RecommendYes,
		Mood:           MoodMustTry,
		Tags:           datatypes.JSONSlice[string]{"spicy", "crispy"},
	}
	assert.Equal(t, StateRecommend, taste.CalculateState())
}

func TestCalculateStateIsDeterministic(t *testing.T) {
	taste := &Taste{
		Comment:        "worth it",
		MediaIDs:       datatypes.JSONSlice[string]{"m1", "m2"},
		RecommendState: RecommendYes,
	}
	first := taste.CalculateState()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, taste.CalculateState())
	}
}
