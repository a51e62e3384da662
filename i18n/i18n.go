// Package i18n holds the English and Korean interface strings
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a translatable string
type Key string

const (
	Title        Key = "title"
	Stage        Key = "stage"
	StageLabel   Key = "stage_label" // Stage %d: %s
	Start        Key = "start"
	Pause        Key = "pause"
	Paused       Key = "paused"
	Resume       Key = "resume"
	Reset        Key = "reset"
	GoalMove     Key = "goal_move"
	ClearedLabel Key = "cleared_label" // Cleared in %.2fs

	Controls      Key = "controls"
	ControlsMove  Key = "controls_move"
	ControlsJump  Key = "controls_jump"
	ControlsPause Key = "controls_pause"
	ControlsReset Key = "controls_reset"
	ControlsGoal  Key = "controls_goal"
	ControlsSound Key = "controls_sound"
	ControlsQuit  Key = "controls_quit"

	Leaderboard        Key = "leaderboard"
	LeaderboardEmpty   Key = "leaderboard_empty"
	LeaderboardLoading Key = "leaderboard_loading"
	LeaderboardRow     Key = "leaderboard_row" // %d. %s %.2fs

	SoundTitle Key = "sound_settings_title"
	SoundBGM   Key = "sound_bgm"
	SoundSFX   Key = "sound_sfx"
	SoundNote  Key = "sound_note"
	On         Key = "on"
	Off        Key = "off"

	TutorialWelcome          Key = "tutorial_welcome"
	TutorialStart            Key = "tutorial_start"
	TutorialControlsTitle    Key = "tutorial_step_controls_title"
	TutorialControlsDesc     Key = "tutorial_step_controls_desc"
	TutorialLeaderboardTitle Key = "tutorial_step_leaderboard_title"
	TutorialLeaderboardDesc  Key = "tutorial_step_leaderboard_desc"
	TutorialSettingsTitle    Key = "tutorial_step_settings_title"
	TutorialSettingsDesc     Key = "tutorial_step_settings_desc"
	TutorialStartPosTitle    Key = "tutorial_step_startpos_title"
	TutorialStartPosDesc     Key = "tutorial_step_startpos_desc"
	TutorialNext             Key = "tutorial_next"
	TutorialPrev             Key = "tutorial_prev"
	TutorialFinish           Key = "tutorial_finish"

	DefaultName   Key = "prompt_default_name"
	ClearedPrompt Key = "stage_cleared_prompt" // %d stage, %.2f seconds
	ClearTime     Key = "alert_clear_time"     // %.2f seconds
	Saved         Key = "alert_saved"
	SaveFailed    Key = "alert_save_failed"
)

var english = map[Key]string{
	Title:        "Hell Escape",
	Stage:        "Stage",
	StageLabel:   "Stage %d: %s",
	Start:        "Start",
	Pause:        "Pause",
	Paused:       "PAUSED",
	Resume:       "Resume",
	Reset:        "Reset",
	GoalMove:     "Go to Goal",
	ClearedLabel: "Cleared in %.2fs",

	Controls:      "Controls",
	ControlsMove:  "Move",
	ControlsJump:  "Charge Jump",
	ControlsPause: "Pause",
	ControlsReset: "Reset",
	ControlsGoal:  "Go to Goal",
	ControlsSound: "BGM / SFX",
	ControlsQuit:  "Quit",

	Leaderboard:        "Leaderboard",
	LeaderboardEmpty:   "No rankings yet.",
	LeaderboardLoading: "Loading...",
	LeaderboardRow:     "%d. %s %.2fs",

	SoundTitle: "Sound Settings",
	SoundBGM:   "BGM",
	SoundSFX:   "SFX",
	SoundNote:  "Adjust background music and sound effects volume.",
	On:         "on",
	Off:        "off",

	TutorialWelcome:          "Welcome to Hell Escape!",
	TutorialStart:            "Press Enter to start the run.",
	TutorialControlsTitle:    "Controls",
	TutorialControlsDesc:     "Left/Right: Move, Hold Space: Charge jump, P or Esc: Pause",
	TutorialLeaderboardTitle: "Leaderboard",
	TutorialLeaderboardDesc:  "Save your clear time and compete with other players.",
	TutorialSettingsTitle:    "Settings (Sound)",
	TutorialSettingsDesc:     "Toggle BGM and SFX and adjust their volumes.",
	TutorialStartPosTitle:    "Start Position",
	TutorialStartPosDesc:     "Every run starts here. Reset starts a new run right away.",
	TutorialNext:             "Next",
	TutorialPrev:             "Prev",
	TutorialFinish:           "Start",

	DefaultName:   "Player",
	ClearedPrompt: "Stage %d Cleared! Time: %.2fs\nEnter your name to save to the leaderboard:",
	ClearTime:     "Clear time: %.2fs",
	Saved:         "Score saved",
	SaveFailed:    "Saving the score failed",
}

var korean = map[Key]string{
	Title:        "지옥 탈출",
	Stage:        "스테이지",
	StageLabel:   "스테이지 %d: %s",
	Start:        "시작",
	Pause:        "일시정지",
	Paused:       "일시정지됨",
	Resume:       "계속",
	Reset:        "초기화",
	GoalMove:     "골로 이동",
	ClearedLabel: "클리어 %.2f초",

	Controls:      "조작법",
	ControlsMove:  "이동",
	ControlsJump:  "점프 차징",
	ControlsPause: "일시정지",
	ControlsReset: "초기화",
	ControlsGoal:  "골로 이동",
	ControlsSound: "BGM / 효과음",
	ControlsQuit:  "종료",

	Leaderboard:        "리더보드",
	LeaderboardEmpty:   "아직 랭킹이 없습니다.",
	LeaderboardLoading: "불러오는 중...",
	LeaderboardRow:     "%d. %s %.2f초",

	SoundTitle: "사운드 설정",
	SoundBGM:   "BGM",
	SoundSFX:   "효과음",
	SoundNote:  "BGM과 효과음 볼륨을 조절합니다.",
	On:         "켜짐",
	Off:        "꺼짐",

	TutorialWelcome:          "지옥 탈출에 오신 것을 환영합니다!",
	TutorialStart:            "Enter를 눌러 게임을 시작하세요.",
	TutorialControlsTitle:    "조작법 소개",
	TutorialControlsDesc:     "← → : 이동, Space(꾹) : 점프 차징, P 또는 ESC : 일시정지",
	TutorialLeaderboardTitle: "리더보드 소개",
	TutorialLeaderboardDesc:  "클리어 시간을 저장하고 다른 플레이어와 경쟁하세요.",
	TutorialSettingsTitle:    "설정(사운드) 소개",
	TutorialSettingsDesc:     "BGM과 효과음을 켜고 끌 수 있으며 볼륨을 조절할 수 있습니다.",
	TutorialStartPosTitle:    "시작 위치 안내",
	TutorialStartPosDesc:     "게임 시작 시 플레이어는 이 위치에서 시작합니다. 리셋 시 자동으로 시작됩니다.",
	TutorialNext:             "다음",
	TutorialPrev:             "이전",
	TutorialFinish:           "시작하기",

	DefaultName:   "플레이어",
	ClearedPrompt: "스테이지 %d 클리어! 시간: %.2f초\n리더보드에 저장할 이름을 입력하세요:",
	ClearTime:     "클리어 시간: %.2f초",
	Saved:         "기록이 저장되었습니다",
	SaveFailed:    "기록 저장에 실패했습니다",
}

var (
	supported = []language.Tag{language.English, language.Korean}
	matcher   = language.NewMatcher(supported)
	cat       = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, table := range map[language.Tag]map[Key]string{language.English: english, language.Korean: korean} {
		for k, msg := range table {
			// Static table; SetString only fails on malformed tags
			_ = b.SetString(tag, string(k), msg)
		}
	}
	return b
}

// TutorialStep is one page of the onboarding walkthrough
type TutorialStep struct {
	Title Key
	Desc  Key
}

// TutorialSteps is the walkthrough in display order
var TutorialSteps = []TutorialStep{
	{TutorialWelcome, TutorialStart},
	{TutorialControlsTitle, TutorialControlsDesc},
	{TutorialLeaderboardTitle, TutorialLeaderboardDesc},
	{TutorialSettingsTitle, TutorialSettingsDesc},
	{TutorialStartPosTitle, TutorialStartPosDesc},
}

// Translator formats interface strings for one language
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New selects the closest supported language for locale, English when unmatched
func New(locale string) *Translator {
	tag := language.English
	if locale != "" {
		if t, err := language.Parse(locale); err == nil {
			_, idx, conf := matcher.Match(t)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// T returns the string for key formatted with args
func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Language returns the selected language
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Supported lists the available languages
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}
