package main

import "github.com/oshokin/ulp-wake/cmd/ulp-wake-token/cmd"

func main() {
	cmd.Execute()
}
