package analyzer

import (
	"reflect"
	"testing"
)

func TestAnalyzeEmptyText(t *testing.T) {
	result := New().Analyze("", 10)

	if result.TotalWords != 0 {
		t.Errorf("TotalWords = %d, want 0", result.TotalWords)
	}
	if result.UniqueWords != 0 {
		t.Errorf("UniqueWords = %d, want 0", result.UniqueWords)
	}
	if len(result.TopWords) != 0 {
		t.Errorf("TopWords = %v, want empty", result.TopWords)
	}
	if result.UniqueRatio() != 0 {
		t.Errorf("UniqueRatio() = %v, want 0", result.UniqueRatio())
	}
}

func TestAnalyzeCaseInsensitiveMerge(t *testing.T) {
	result := New().Analyze("Love love LOVE", 1)

	want := []WordCount{{Word: "love", Count: 3}}
	if !reflect.DeepEqual(result.TopWords, want) {
		t.Errorf("TopWords = %v, want %v", result.TopWords, want)
	}
	if result.TotalWords != 3 {
		t.Errorf("TotalWords = %d, want 3", result.TotalWords)
	}
	if result.UniqueWords != 1 {
		t.Errorf("UniqueWords = %d, want 1", result.UniqueWords)
	}
}

func TestAnalyzeTieBreakByFirstOccurrence(t *testing.T) {
	// "romeo" and "juliet" both occur twice; "romeo" appears first.
	text := "romeo juliet waiting romeo juliet waiting waiting"
	result := New().Analyze(text, 3)

	want := []WordCount{
		{Word: "waiting", Count: 3},
		{Word: "romeo", Count: 2},
		{Word: "juliet", Count: 2},
	}
	if !reflect.DeepEqual(result.TopWords, want) {
		t.Errorf("TopWords = %v, want %v", result.TopWords, want)
	}
}

func TestAnalyzeFiltersStopWordsAndShortWords(t *testing.T) {
	result := New().Analyze("that that that midnight midnight rain", 10)

	for _, wc := range result.TopWords {
		if wc.Word == "that" {
			t.Error("stop word 'that' should not appear in the table")
		}
		if wc.Word == "rain" {
			continue
		}
	}
	// Totals still count everything.
	if result.TotalWords != 6 {
		t.Errorf("TotalWords = %d, want 6", result.TotalWords)
	}

	result = New().Analyze("cat cat cat dog", 10)
	if len(result.TopWords) != 0 {
		t.Errorf("three-letter words should be filtered from the table, got %v", result.TopWords)
	}
	if result.TotalWords != 4 {
		t.Errorf("TotalWords = %d, want 4", result.TotalWords)
	}
}

func TestAnalyzeMaxWordsLimit(t *testing.T) {
	text := "alpha alpha alpha bravo bravo charlie delta echo"
	result := New().Analyze(text, 2)

	want := []WordCount{
		{Word: "alpha", Count: 3},
		{Word: "bravo", Count: 2},
	}
	if !reflect.DeepEqual(result.TopWords, want) {
		t.Errorf("TopWords = %v, want %v", result.TopWords, want)
	}
}

func TestFrequenciesSumToTotal(t *testing.T) {
	texts := []string{
		"We were both young when I first saw you",
		"Love love LOVE",
		"cause darling I'm a nightmare dressed like a daydream",
		"",
	}

	for _, text := range texts {
		freqs := Frequencies(text)
		sum := 0
		for _, count := range freqs {
			sum += count
		}
		total := New().Analyze(text, 10).TotalWords
		if sum != total {
			t.Errorf("text %q: frequency sum %d != total words %d", text, sum, total)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation delimits",
			text: "Romeo, take me somewhere!",
			want: []string{"romeo", "take", "me", "somewhere"},
		},
		{
			name: "apostrophes and hyphens kept inside words",
			text: "can't stop the state-of-the-art",
			want: []string{"can't", "stop", "the", "state-of-the-art"},
		},
		{
			name: "edge apostrophes trimmed",
			text: "'round midnight 'til dawn",
			want: []string{"round", "midnight", "til", "dawn"},
		},
		{
			name: "typographic apostrophe normalized",
			text: "don’t blame me",
			want: []string{"don't", "blame", "me"},
		},
		{
			name: "collapses whitespace runs",
			text: "love \t\n  story",
			want: []string{"love", "story"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}
