package main

import "github.com/oshokin/ulp-wake/cmd/ulp-wake-server/cmd"

func main() {
	cmd.Execute()
}
