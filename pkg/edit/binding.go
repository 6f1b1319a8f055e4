package edit

import (
	"fmt"

	"src.ked.sh/pkg/keymap"
	"src.ked.sh/pkg/trie"
	"src.ked.sh/pkg/ui"
)

var defaultMappings = map[Mode][]keymap.Binding[string]{
	Normal: {
		{Keys: "h", Value: "move-left"},
		{Keys: "j", Value: "move-down"},
		{Keys: "k", Value: "move-up"},
		{Keys: "l", Value: "move-right"},
		{Keys: "0", Value: "line-start"},
		{Keys: "$", Value: "line-end"},
		{Keys: "gg", Value: "buffer-start"},
		{Keys: "G", Value: "buffer-end"},

		{Keys: "i", Value: "insert"},
		{Keys: "I", Value: "insert-line-start"},
		{Keys: "a", Value: "append"},
		{Keys: "A", Value: "append-line-end"},
		{Keys: "o", Value: "open-below"},
		{Keys: "O", Value: "open-above"},
		{Keys: "cc", Value: "change-line"},
		{Keys: "dd", Value: "delete-line"},

		{Keys: "ZZ", Value: "write-quit"},
		{Keys: ":", Value: "command"},

		{Keys: "<space>h", Value: "focus-left"},
		{Keys: "<space>j", Value: "focus-down"},
		{Keys: "<space>k", Value: "focus-up"},
		{Keys: "<space>l", Value: "focus-right"},
		{Keys: "<space>v", Value: "split-vertical"},
		{Keys: "<space>s", Value: "split-horizontal"},
		{Keys: "<space>w", Value: "write"},
	},
	Insert: {
		{Keys: "jk", Value: "leave-insert"},
		{Keys: "<Esc>", Value: "leave-insert"},
	},
	Command: {
		{Keys: "<Esc>", Value: "leave-command"},
	},
}

// Builds the keymaps of all modes. User mappings are inserted first, so that
// they win over default mappings of the same sequence.
func buildKeymaps(user []Mapping) (map[Mode]*trie.Trie[ui.Key, Action], error) {
	keymaps := make(map[Mode]*trie.Trie[ui.Key, Action])
	for _, mode := range []Mode{Normal, Insert, Command} {
		var bindings []keymap.Binding[Action]
		add := func(keys, name string) error {
			a, err := lookupAction(name)
			if err != nil {
				return fmt.Errorf("%s mapping %q: %w", mode, keys, err)
			}
			bindings = append(bindings, keymap.Binding[Action]{Keys: keys, Value: a})
			return nil
		}
		for _, m := range user {
			if m.Mode != mode {
				continue
			}
			if err := add(m.Keys, m.Action); err != nil {
				return nil, err
			}
		}
		for _, b := range defaultMappings[mode] {
			if err := add(b.Keys, b.Value); err != nil {
				return nil, err
			}
		}
		t, err := keymap.Build(bindings)
		if err != nil {
			return nil, fmt.Errorf("%s mode: %w", mode, err)
		}
		keymaps[mode] = t
	}
	return keymaps, nil
}
