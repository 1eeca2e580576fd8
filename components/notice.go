package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NoticeKind identifies why a blocking notice is showing.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeDeath
	NoticeLevelComplete
	NoticeSessionComplete
)

// NoticeData is a blocking banner. Gameplay is suspended while Active.
type NoticeData struct {
	Active     bool
	Kind       NoticeKind
	Text       string
	FramesLeft int // 0 = wait for confirm
	Alpha      float32
	Fade       *gween.Tween
}

var Notice = donburi.NewComponentType[NoticeData]()
