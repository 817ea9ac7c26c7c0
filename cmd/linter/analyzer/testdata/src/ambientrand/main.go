package ambientrand

import "os"

func main() {
	os.Exit(0) // allowed: os.Exit inside main
}
