package input

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// keyFile is the TOML shape of a keymap override
//
//	[keys]
//	F2 = "reset"
//	[runes]
//	space = "jump"
//	x = "none"
type keyFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections present in the data are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keyFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if f.Keys != nil {
		kt.Keys = make(map[tcell.Key]Action, len(f.Keys))
		for name, actionName := range f.Keys {
			k, ok := keyByName(name)
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", name, err)
			}
			kt.Keys[k] = a
		}
	}
	if f.Runes != nil {
		kt.Runes = make(map[rune]Action, len(f.Runes))
		for name, actionName := range f.Runes {
			r, err := resolveRune(name)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", name, err)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", name, err)
			}
			kt.Runes[r] = a
		}
	}
	return kt, nil
}

// LoadKeyTable merges the keymap file at path over the defaults
// A missing file yields the defaults; a malformed one is logged and ignored
func LoadKeyTable(path string) *KeyTable {
	base := DefaultKeyTable()
	if path == "" {
		return base
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[input] keymap %s: %v", path, err)
		}
		return base
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		log.Printf("[input] keymap %s: %v, using defaults", path, err)
		return base
	}
	log.Printf("[input] keymap %s loaded", path)
	return MergeKeyTable(base, override)
}

// keyByName matches tcell's key names ("Left", "F3", "Ctrl-G") case-insensitively
func keyByName(name string) (tcell.Key, bool) {
	name = strings.TrimSpace(name)
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
