package main

import "github.com/oshokin/ulp-wake/cmd/ulp-wake-reset/cmd"

func main() {
	cmd.Execute()
}
