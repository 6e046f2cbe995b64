package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagBindingsFor string

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Print key-binding snippets for hosts and editors",
	Long: `Print ready-to-paste configuration snippets that bind the four
directional key chords to panehop for each supported surface.

Editor snippets cover both normal and terminal mode, so navigation works
the same from a buffer and from an embedded shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch flagBindingsFor {
		case "wezterm":
			fmt.Print(weztermBindings)
		case "kitty":
			fmt.Print(kittyBindings)
		case "tmux":
			fmt.Print(tmuxBindings)
		case "vim":
			fmt.Print(vimBindings)
		case "all":
			fmt.Print(weztermBindings, "\n", kittyBindings, "\n", tmuxBindings, "\n", vimBindings)
		default:
			return fmt.Errorf("unknown surface %q (supported: wezterm, kitty, tmux, vim, all)", flagBindingsFor)
		}
		return nil
	},
}

const weztermBindings = `-- wezterm.lua
local wezterm = require("wezterm")

config.keys = {
  { key = "h", mods = "CTRL", action = wezterm.action_callback(function()
      wezterm.background_child_process({ "panehop", "navigate", "left" })
    end) },
  { key = "j", mods = "CTRL", action = wezterm.action_callback(function()
      wezterm.background_child_process({ "panehop", "navigate", "down" })
    end) },
  { key = "k", mods = "CTRL", action = wezterm.action_callback(function()
      wezterm.background_child_process({ "panehop", "navigate", "up" })
    end) },
  { key = "l", mods = "CTRL", action = wezterm.action_callback(function()
      wezterm.background_child_process({ "panehop", "navigate", "right" })
    end) },
}
`

const kittyBindings = `# kitty.conf (requires: allow_remote_control yes)
map ctrl+h launch --type=background panehop navigate left
map ctrl+j launch --type=background panehop navigate down
map ctrl+k launch --type=background panehop navigate up
map ctrl+l launch --type=background panehop navigate right
`

const tmuxBindings = `# tmux.conf — bind the same chords inside tmux so focus re-enters the host
bind-key -n C-h run-shell "panehop navigate left"
bind-key -n C-j run-shell "panehop navigate down"
bind-key -n C-k run-shell "panehop navigate up"
bind-key -n C-l run-shell "panehop navigate right"
`

const vimBindings = `" vimrc / init.vim — normal and terminal mode
nnoremap <silent> <C-h> :call system('panehop navigate left')<CR>
nnoremap <silent> <C-j> :call system('panehop navigate down')<CR>
nnoremap <silent> <C-k> :call system('panehop navigate up')<CR>
nnoremap <silent> <C-l> :call system('panehop navigate right')<CR>
tnoremap <silent> <C-h> <C-\><C-n>:call system('panehop navigate left')<CR>
tnoremap <silent> <C-j> <C-\><C-n>:call system('panehop navigate down')<CR>
tnoremap <silent> <C-k> <C-\><C-n>:call system('panehop navigate up')<CR>
tnoremap <silent> <C-l> <C-\><C-n>:call system('panehop navigate right')<CR>
`

func init() {
	bindingsCmd.Flags().StringVar(&flagBindingsFor, "for", "all", "surface: wezterm, kitty, tmux, vim, all")
	rootCmd.AddCommand(bindingsCmd)
}
