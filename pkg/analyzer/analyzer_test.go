package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Laurens, Laurens, Laurens, Ordina, Ordina, Assessment, Assessment"

func text(s string) *string {
	return &s
}

func TestHighestFrequency(t *testing.T) {
	a := New()

	got, err := a.HighestFrequency(text(sampleText))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestHighestFrequency_EmptyText(t *testing.T) {
	got, err := New().HighestFrequency(text(""))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestHighestFrequency_NoLetters(t *testing.T) {
	got, err := New().HighestFrequency(text("123 456 !!! ++ 7"))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestHighestFrequency_NilText(t *testing.T) {
	_, err := New().HighestFrequency(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "Input text is null. Null texts cannot be analyzed.", err.Error())
}

func TestHighestFrequency_CaseInsensitive(t *testing.T) {
	got, err := New().HighestFrequency(text("Go go GO gopher"))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestFrequencyForWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		word string
		want int
	}{
		{"full match", sampleText, "Laurens", 3},
		{"partial match", sampleText, "Lau", 0},
		{"inside longer word", "ordinary", "ordina", 0},
		{"case insensitive", "Test test TEST", "test", 3},
		{"mixed case word", "Test test TEST", "tEsT", 3},
		{"empty text", "", "Lau", 0},
		{"adjacent words", "ab ab", "ab", 2},
		{"concatenated", "abab", "ab", 0},
		{"punctuation bounds", "(ab),ab;ab.", "ab", 3},
		{"digits bound words", "java8Angular3kotlin java", "java", 2},
		{"underscore bounds words", "snake_case snake", "snake", 2},
		{"suffix only", "xab ab", "ab", 1},
		{"text edges", "kotlin", "kotlin", 1},
		{"never appears", "some other text", "kotlin", 0},
	}

	a := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := a.FrequencyForWord(text(tc.text), tc.word)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFrequencyForWord_InvalidWord(t *testing.T) {
	words := []string{"123456!!++^^", "", "two words", "java8", "!@#$!@#$", "café"}

	a := New()
	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			_, err := a.FrequencyForWord(text(sampleText), word)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidWord))
			assert.Equal(t, "Word "+word+" doesn't contain the required letters (a-z or A-Z).", err.Error())
		})
	}
}

func TestFrequencyForWord_NilText(t *testing.T) {
	_, err := New().FrequencyForWord(nil, "Lau")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "Input text is null. Null texts cannot be analyzed.", err.Error())
}

func TestFrequencyForWord_WordCheckedBeforeText(t *testing.T) {
	_, err := New().FrequencyForWord(nil, "123456!!++^^")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidWord))
}

func TestMostFrequentNWords(t *testing.T) {
	got, err := New().MostFrequentNWords(text("PYthon&Java!kotlin+java8Angular3kotlin angular"), 3)
	require.NoError(t, err)

	want := []WordFrequency{
		NewWordFrequency("angular", 2),
		NewWordFrequency("java", 2),
		NewWordFrequency("kotlin", 2),
	}
	assert.Equal(t, want, got)
}

func TestMostFrequentNWords_FrequencyFirst(t *testing.T) {
	got, err := New().MostFrequentNWords(text("test, test, test, mockmvc, mockmvc, ordina"), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "test", got[0].Word())
	assert.Equal(t, 3, got[0].Frequency())
	assert.Equal(t, "mockmvc", got[1].Word())
	assert.Equal(t, 2, got[1].Frequency())
}

func TestMostFrequentNWords_FewerWordsThanRequested(t *testing.T) {
	got, err := New().MostFrequentNWords(text(sampleText), 10)
	require.NoError(t, err)

	want := []WordFrequency{
		NewWordFrequency("laurens", 3),
		NewWordFrequency("assessment", 2),
		NewWordFrequency("ordina", 2),
	}
	assert.Equal(t, want, got)
}

func TestMostFrequentNWords_NonPositiveN(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		got, err := New().MostFrequentNWords(text(sampleText), n)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestMostFrequentNWords_EmptyText(t *testing.T) {
	got, err := New().MostFrequentNWords(text(""), 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMostFrequentNWords_NilText(t *testing.T) {
	_, err := New().MostFrequentNWords(nil, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestAnalysisError_As(t *testing.T) {
	_, err := New().FrequencyForWord(text("abc"), "1")

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr))
	assert.Equal(t, ErrInvalidWord, analysisErr.Kind)
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestAnalyzer_Idempotent(t *testing.T) {
	a := New()
	input := text("b a c b a b d")

	first, err := a.MostFrequentNWords(input, 4)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := a.MostFrequentNWords(input, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
