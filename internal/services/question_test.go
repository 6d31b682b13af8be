package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionAdd(t *testing.T) {
	db := openTestDB(t)
	s := NewQuestionService(db)

	t.Run("AssignsDenseOrderIndexes", func(t *testing.T) {
		for i, text := range []string{"first", "", "third"} {
			q, err := s.Add(QuestionInput{Text: text, Correct: "a"})
			require.NoError(t, err)
			assert.Equal(t, i+1, q.OrderIndex, "order follows call order regardless of content")
		}
	})

	t.Run("NormalizesCorrectLabel", func(t *testing.T) {
		q, err := s.Add(QuestionInput{Text: "q", Correct: "b"})
		require.NoError(t, err)
		assert.Equal(t, "B", q.Correct)
	})

	t.Run("DefaultsTimeTo60", func(t *testing.T) {
		q, err := s.Add(QuestionInput{Text: "q", Correct: "A"})
		require.NoError(t, err)
		assert.Equal(t, 60, q.PerQuestionTime)

		q, err = s.Add(QuestionInput{Text: "q", Correct: "A", PerQuestionTime: 15})
		require.NoError(t, err)
		assert.Equal(t, 15, q.PerQuestionTime)
	})

	t.Run("AcceptsGarbageFields", func(t *testing.T) {
		// The admin UI is trusted; nothing rejects an off-alphabet label.
		q, err := s.Add(QuestionInput{Correct: "z"})
		require.NoError(t, err)
		assert.Equal(t, "Z", q.Correct)
	})
}

func TestQuestionListOrdered(t *testing.T) {
	db := openTestDB(t)
	s := NewQuestionService(db)

	for _, text := range []string{"one", "two", "three"} {
		_, err := s.Add(QuestionInput{Text: text, Correct: "A"})
		require.NoError(t, err)
	}

	questions, err := s.List()
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "one", questions[0].Text)
	assert.Equal(t, "two", questions[1].Text)
	assert.Equal(t, "three", questions[2].Text)
}
