//go:build debug

package main

import (
	"net/http"
	_ "net/http/pprof"
)

func applyTagsOverrides(act *action) {
	act.verbose = true

	go func() {
		addr := "127.0.0.1:6060"
		if err := http.ListenAndServe(addr, nil); err != nil {
			panic(err)
		}
	}()
}
