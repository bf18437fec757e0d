package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/safego"
)

// SetMsgSender sets the function used to deliver messages produced outside
// the update loop (file watcher notifications).
func (a *App) SetMsgSender(send func(tea.Msg)) {
	if send == nil {
		return
	}
	a.externalOnce.Do(func() {
		a.externalMsgs = make(chan tea.Msg, 64)
		a.externalSender = send
		safego.Go("app.msgpump", a.drainExternalMsgs)
	})
}

func (a *App) enqueueExternalMsg(msg tea.Msg) {
	if msg == nil || a.externalMsgs == nil {
		return
	}
	select {
	case a.externalMsgs <- msg:
	default:
		a.logExternalDrop()
	}
}

func (a *App) drainExternalMsgs() {
	for msg := range a.externalMsgs {
		if msg == nil {
			continue
		}
		a.externalSender(msg)
	}
}

func (a *App) logExternalDrop() {
	now := time.Now().UnixNano()
	last := a.externalDropLastLog.Load()
	if now-last < int64(time.Second) {
		return
	}
	if !a.externalDropLastLog.CompareAndSwap(last, now) {
		return
	}
	logging.Warn("External message queue full; dropping file change notifications")
}
