package main

import (
	"github.com/eleven-am/voice-confidence/internal/bootstrap"
)

func main() {
	bootstrap.Run()
}
