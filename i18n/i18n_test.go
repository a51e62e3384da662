package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNewMatchesLocale(t *testing.T) {
	cases := map[string]language.Tag{
		"":      language.English,
		"ko":    language.Korean,
		"ko-KR": language.Korean,
		"en-GB": language.English,
		"fr":    language.English,
		"???":   language.English,
	}
	for in, want := range cases {
		if got := New(in).Language(); got != want {
			t.Errorf("Expected %v for %q, got %v", want, in, got)
		}
	}
}

func TestTranslateAndFormat(t *testing.T) {
	en, ko := New("en"), New("ko")

	if got := en.T(Leaderboard); got != "Leaderboard" {
		t.Errorf("Expected Leaderboard, got %q", got)
	}
	if got := ko.T(Leaderboard); got != "리더보드" {
		t.Errorf("Expected 리더보드, got %q", got)
	}
	if got := en.T(StageLabel, 2, "Ledge"); got != "Stage 2: Ledge" {
		t.Errorf("Expected formatted stage label, got %q", got)
	}
	if got := ko.T(ClearTime, 12.5); got != "클리어 시간: 12.50초" {
		t.Errorf("Expected formatted Korean clear time, got %q", got)
	}
}

func TestTablesAreComplete(t *testing.T) {
	for k := range english {
		if _, ok := korean[k]; !ok {
			t.Errorf("Expected Korean entry for %q", k)
		}
	}
	for k := range korean {
		if _, ok := english[k]; !ok {
			t.Errorf("Expected English entry for %q", k)
		}
	}
	if len(Supported()) != 2 {
		t.Errorf("Expected 2 supported languages, got %d", len(Supported()))
	}
}
