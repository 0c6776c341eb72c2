package game_test

import (
	"testing"

	"github.com/plus3/tetrapit/game"
	"github.com/stretchr/testify/assert"
)

type scanCode int16

func TestKeymap(t *testing.T) {
	k := game.NewKeymap(map[scanCode]game.Action{
		37: game.ActionLeft,
		39: game.ActionRight,
		38: game.ActionRotate,
		40: game.ActionSoftDrop,
	})

	assert.Equal(t, 4, k.Len())
	assert.Equal(t, game.ActionLeft, k.Lookup(37))
	assert.Equal(t, game.ActionSoftDrop, k.Lookup(40))
	assert.Equal(t, game.ActionNone, k.Lookup(27))

	k.Bind(27, game.ActionQuit)
	assert.Equal(t, game.ActionQuit, k.Lookup(27))

	k.Bind(38, game.ActionLeft)
	assert.Equal(t, game.ActionLeft, k.Lookup(38))
	assert.Equal(t, 5, k.Len())

	k.Bind(38, game.ActionNone)
	assert.Equal(t, game.ActionNone, k.Lookup(38))
	assert.Equal(t, 4, k.Len())
}

func TestKeymapRunes(t *testing.T) {
	k := game.NewKeymap(map[rune]game.Action{'q': game.ActionQuit, 'h': game.ActionLeft})

	assert.Equal(t, game.ActionQuit, k.Lookup('q'))
	assert.Equal(t, game.ActionNone, k.Lookup('x'))
}
