package ambientrand

import (
	"math/rand"
	"os"
)

func DrawOutcome() bool {
	return rand.Float64() < 0.8 // want "ambient math/rand call is forbidden, draw from an injected source"
}

func DrawDelay() int {
	return rand.Intn(4000) // want "ambient math/rand call is forbidden, draw from an injected source"
}

func BuildSource() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func BailOut() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}
