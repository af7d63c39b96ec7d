package app

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
)

// BrowserTimers is the TimerFactory for the browser build, backed by
// setTimeout/clearTimeout.
func BrowserTimers(delay time.Duration, fn func()) (cancel func()) {
	id := js.Global.Call("setTimeout", fn, int(delay/time.Millisecond))
	return func() {
		js.Global.Call("clearTimeout", id)
	}
}

// NativeTimers is the TimerFactory for native builds, backed by
// time.AfterFunc. Callers that need single-threaded delivery should wrap
// it and funnel the callback into their own loop.
func NativeTimers(delay time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(delay, fn)
	return func() {
		t.Stop()
	}
}
