package main

import "github.com/oshokin/ulp-wake/cmd/ulp-wake-checker/cmd"

func main() {
	cmd.Execute()
}
