// Package main provides the cargo CLI: it runs voyage manifests against an
// in-memory fleet and reports on it.
package main

import (
	"github.com/labstack/gommon/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
