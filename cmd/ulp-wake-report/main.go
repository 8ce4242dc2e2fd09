package main

import "github.com/oshokin/ulp-wake/cmd/ulp-wake-report/cmd"

func main() {
	cmd.Execute()
}
